package types

import (
	"github.com/go-playground/validator/v10"
)

// MaxTextBytes bounds any single text field accepted by the transport adapters.
const MaxTextBytes = 200000

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// KeywordsRequest asks for the keywords of one text.
type KeywordsRequest struct {
	Text string `json:"text" validate:"max=200000"`
}

// MatchRequest compares a resume with a job description.
type MatchRequest struct {
	ResumeText     string `json:"resume_text" validate:"max=200000"`
	JobDescription string `json:"job_description" validate:"required,max=200000"`
}

// ResumeTextRequest carries a single resume for the compliance, style and parser endpoints.
type ResumeTextRequest struct {
	ResumeText string `json:"resume_text" validate:"max=200000"`
}

// SuggestionsRequest feeds previously computed findings to the suggestion engine.
type SuggestionsRequest struct {
	ResumeText       string   `json:"resume_text" validate:"max=200000"`
	MissingKeywords  []string `json:"missing_keywords" validate:"max=100,dive,max=100"`
	ComplianceIssues []Issue  `json:"compliance_issues" validate:"max=100"`
	StyleIssues      []Issue  `json:"style_issues" validate:"max=100"`
}

// AnalyzeRequest runs the full analysis and optionally stores it.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"max=200000"`
	JobDescription string `json:"job_description" validate:"required,max=200000"`
	JobTitle       string `json:"job_title,omitempty" validate:"max=255"`
	Company        string `json:"company,omitempty" validate:"max=255"`
	ResumeName     string `json:"resume_name,omitempty" validate:"max=255"`
	RoleType       string `json:"role_type,omitempty" validate:"omitempty,oneof='Full Stack' Frontend Backend Other"`
	Save           bool   `json:"save,omitempty"`
	CorrelationID  string `json:"correlation_id,omitempty" validate:"max=128"`
}

// AutoFixRequest selects automatic edits to apply to a resume.
type AutoFixRequest struct {
	ResumeText     string    `json:"resume_text" validate:"required,max=200000"`
	JobDescription string    `json:"job_description" validate:"max=200000"`
	Fixes          []FixKind `json:"fixes" validate:"required,min=1,dive,oneof=skills action_verbs quantify"`
}

// Validate validates the KeywordsRequest using the validator.
func (r *KeywordsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ResumeTextRequest using the validator.
func (r *ResumeTextRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SuggestionsRequest using the validator.
func (r *SuggestionsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AutoFixRequest using the validator.
func (r *AutoFixRequest) Validate() error {
	return validate.Struct(r)
}
