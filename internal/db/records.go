package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveJob stores a job description and returns its ID.
func (db *DB) SaveJob(ctx context.Context, in JobInput) (uuid.UUID, error) {
	keywords := in.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job keywords: %w", err)
	}

	title := in.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled job"
	}

	var id uuid.UUID
	err = db.q.QueryRow(ctx,
		`INSERT INTO jobs (title, company, description, role_type, keywords)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		title, nullIfEmpty(in.Company), in.Description, nullIfEmpty(in.RoleType), keywordsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job: %w", err)
	}
	return id, nil
}

// SaveResume stores a resume and returns its ID. Saving the same content
// again returns the existing row and refreshes its name.
func (db *DB) SaveResume(ctx context.Context, in ResumeInput) (uuid.UUID, error) {
	if in.ContentHash == "" {
		return uuid.Nil, fmt.Errorf("failed to save resume: content hash is required")
	}
	name := in.Name
	if strings.TrimSpace(name) == "" {
		name = "Untitled resume"
	}

	var id uuid.UUID
	err := db.q.QueryRow(ctx,
		`INSERT INTO resumes (name, profile_type, content, content_hash, file_name)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (content_hash) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name, nullIfEmpty(in.ProfileType), in.Content, in.ContentHash, nullIfEmpty(in.FileName),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// RecordKeywords adds one sighting of each keyword to the library for
// roleType. The stored importance is the running mean of reported weights.
func (db *DB) RecordKeywords(ctx context.Context, roleType string, weights map[string]float64) error {
	if len(weights) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for kw, w := range weights {
		batch.Queue(
			`INSERT INTO keywords (keyword, role_type, frequency, importance_score)
			 VALUES ($1, $2, 1, $3)
			 ON CONFLICT (keyword, role_type) DO UPDATE SET
			   importance_score = (keywords.importance_score * keywords.frequency + EXCLUDED.importance_score) / (keywords.frequency + 1),
			   frequency = keywords.frequency + 1,
			   updated_at = NOW()`,
			kw, roleType, w,
		)
	}

	results := db.q.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range weights {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to record keywords: %w", err)
		}
	}
	return nil
}

// TopKeywords returns the most frequently seen keywords, across every role
// type when roleType is empty.
func (db *DB) TopKeywords(ctx context.Context, roleType string, limit int) ([]KeywordStat, error) {
	query := `SELECT keyword, role_type, frequency, importance_score, updated_at FROM keywords`
	args := []any{}
	if roleType != "" {
		query += ` WHERE role_type = $1`
		args = append(args, roleType)
	}
	query += fmt.Sprintf(` ORDER BY frequency DESC, importance_score DESC, keyword ASC LIMIT %d`, ClampLimit(limit))

	rows, err := db.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer rows.Close()

	stats := []KeywordStat{}
	for rows.Next() {
		var s KeywordStat
		if err := rows.Scan(&s.Keyword, &s.RoleType, &s.Frequency, &s.ImportanceScore, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keywords: %w", err)
	}
	return stats, nil
}

// SaveAnalysis records a finished analysis and returns its ID.
func (db *DB) SaveAnalysis(ctx context.Context, in AnalysisInput) (uuid.UUID, error) {
	missing := in.MissingKeywords
	if missing == nil {
		missing = []string{}
	}
	missingJSON, err := json.Marshal(missing)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing keywords: %w", err)
	}

	suggestionsJSON := []byte("[]")
	if in.Suggestions != nil {
		if suggestionsJSON, err = json.Marshal(in.Suggestions); err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal suggestions: %w", err)
		}
	}

	var reportJSON []byte
	if in.Report != nil {
		if reportJSON, err = json.Marshal(in.Report); err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
		}
	}

	var id uuid.UUID
	err = db.q.QueryRow(ctx,
		`INSERT INTO analysis_history
		   (resume_id, job_id, resume_name, job_title, score, ats_score, style_score, overall_score,
		    missing_keywords, suggestions, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		in.ResumeID, in.JobID, nullIfEmpty(in.ResumeName), nullIfEmpty(in.JobTitle),
		in.Score, in.ATSScore, in.StyleScore, in.OverallScore,
		missingJSON, suggestionsJSON, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis returns one stored analysis, or nil if it does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var (
		rec             AnalysisRecord
		resumeName      *string
		jobTitle        *string
		missingJSON     []byte
		suggestionsJSON []byte
		reportJSON      []byte
	)
	err := db.q.QueryRow(ctx,
		`SELECT id, resume_id, job_id, resume_name, job_title, score, ats_score, style_score,
		        overall_score, missing_keywords, suggestions, report, created_at
		 FROM analysis_history WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.ResumeID, &rec.JobID, &resumeName, &jobTitle, &rec.Score, &rec.ATSScore,
		&rec.StyleScore, &rec.OverallScore, &missingJSON, &suggestionsJSON, &reportJSON, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	rec.ResumeName = derefString(resumeName)
	rec.JobTitle = derefString(jobTitle)
	rec.Suggestions = suggestionsJSON
	rec.Report = reportJSON
	if err := json.Unmarshal(missingJSON, &rec.MissingKeywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal missing keywords: %w", err)
	}
	return &rec, nil
}

// ListAnalyses returns analysis summaries, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit, offset int) ([]AnalysisSummary, error) {
	if offset < 0 {
		offset = 0
	}
	rows, err := db.q.Query(ctx,
		`SELECT id, resume_name, job_title, score, ats_score, overall_score, created_at
		 FROM analysis_history
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		ClampLimit(limit), offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	out := []AnalysisSummary{}
	for rows.Next() {
		var (
			s          AnalysisSummary
			resumeName *string
			jobTitle   *string
		)
		if err := rows.Scan(&s.ID, &resumeName, &jobTitle, &s.Score, &s.ATSScore, &s.OverallScore, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		s.ResumeName = derefString(resumeName)
		s.JobTitle = derefString(jobTitle)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return out, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
