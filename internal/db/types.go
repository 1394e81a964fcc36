package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobInput is a job description to store.
type JobInput struct {
	Title       string
	Company     string
	Description string
	RoleType    string
	Keywords    []string
}

// ResumeInput is a resume to store. Resumes are deduplicated by content hash.
type ResumeInput struct {
	Name        string
	ProfileType string
	Content     string
	ContentHash string
	FileName    string
}

// KeywordStat is one entry of the keyword library.
type KeywordStat struct {
	Keyword         string    `json:"keyword"`
	RoleType        string    `json:"role_type,omitempty"`
	Frequency       int       `json:"frequency"`
	ImportanceScore float64   `json:"importance_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AnalysisInput is a finished analysis to record.
type AnalysisInput struct {
	ResumeID        *uuid.UUID
	JobID           *uuid.UUID
	ResumeName      string
	JobTitle        string
	Score           float64
	ATSScore        float64
	StyleScore      float64
	OverallScore    float64
	MissingKeywords []string
	Suggestions     any
	Report          any
}

// AnalysisSummary is a row of the analysis history list.
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	ResumeName   string    `json:"resume_name,omitempty"`
	JobTitle     string    `json:"job_title,omitempty"`
	Score        float64   `json:"score"`
	ATSScore     float64   `json:"ats_score"`
	OverallScore float64   `json:"overall_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalysisRecord is a stored analysis with its JSON payloads.
type AnalysisRecord struct {
	AnalysisSummary
	ResumeID        *uuid.UUID      `json:"resume_id,omitempty"`
	JobID           *uuid.UUID      `json:"job_id,omitempty"`
	StyleScore      float64         `json:"style_score"`
	MissingKeywords []string        `json:"missing_keywords"`
	Suggestions     json.RawMessage `json:"suggestions"`
	Report          json.RawMessage `json:"report,omitempty"`
}
