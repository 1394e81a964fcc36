// Package history persists finished analyses and feeds the keyword library.
package history

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Writer is the store an analysis is recorded into. InTx commits the writes
// made through w together or not at all.
type Writer interface {
	InTx(ctx context.Context, fn func(w db.Writer) error) error
}

// Record stores the job, the resume and the analysis report, and adds the
// job's keywords to the library, all in one transaction. The keywords and
// weights are the ones the report was scored with. On success report.ID is set.
func Record(ctx context.Context, store Writer, req *types.AnalyzeRequest, report *types.AnalysisReport) (uuid.UUID, error) {
	weights := report.Match.JobWeights
	jobKeywords := make([]string, 0, len(weights))
	for kw := range weights {
		jobKeywords = append(jobKeywords, kw)
	}
	sort.Strings(jobKeywords)

	var id uuid.UUID
	err := store.InTx(ctx, func(w db.Writer) error {
		jobID, err := w.SaveJob(ctx, db.JobInput{
			Title:       req.JobTitle,
			Company:     req.Company,
			Description: req.JobDescription,
			RoleType:    req.RoleType,
			Keywords:    jobKeywords,
		})
		if err != nil {
			return fmt.Errorf("failed to record job: %w", err)
		}

		var resumeID *uuid.UUID
		if req.ResumeText != "" {
			rid, err := w.SaveResume(ctx, db.ResumeInput{
				Name:        req.ResumeName,
				ProfileType: req.RoleType,
				Content:     req.ResumeText,
				ContentHash: ingestion.ContentHash(req.ResumeText),
				FileName:    req.ResumeName,
			})
			if err != nil {
				return fmt.Errorf("failed to record resume: %w", err)
			}
			resumeID = &rid
		}

		if err := w.RecordKeywords(ctx, req.RoleType, weights); err != nil {
			return fmt.Errorf("failed to record keyword library: %w", err)
		}

		id, err = w.SaveAnalysis(ctx, db.AnalysisInput{
			ResumeID:        resumeID,
			JobID:           &jobID,
			ResumeName:      req.ResumeName,
			JobTitle:        req.JobTitle,
			Score:           report.Match.Score,
			ATSScore:        report.Compliance.Score,
			StyleScore:      report.Style.Score,
			OverallScore:    report.OverallScore,
			MissingKeywords: report.Match.Missing,
			Suggestions:     report.Suggestions,
			Report:          report,
		})
		if err != nil {
			return fmt.Errorf("failed to record analysis: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	report.ID = id.String()
	return id, nil
}
