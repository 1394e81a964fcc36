package db

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Writer is the write side of the store used to record an analysis.
type Writer interface {
	SaveJob(ctx context.Context, in JobInput) (uuid.UUID, error)
	SaveResume(ctx context.Context, in ResumeInput) (uuid.UUID, error)
	RecordKeywords(ctx context.Context, roleType string, weights map[string]float64) error
	SaveAnalysis(ctx context.Context, in AnalysisInput) (uuid.UUID, error)
}

var _ Writer = (*DB)(nil)

// InTx runs fn against a DB bound to a single transaction. The writes fn makes
// commit together when it returns nil and are rolled back otherwise. Calling
// InTx inside fn opens a savepoint.
func (db *DB) InTx(ctx context.Context, fn func(w Writer) error) error {
	tx, err := db.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback after Commit reports ErrTxClosed, which is expected.
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			_, _ = fmt.Fprintf(os.Stderr, "Rollback error: %v\n", rErr)
		}
	}()

	if err := fn(&DB{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
