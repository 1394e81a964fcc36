package types

import "time"

// SoftSkillMatch records whether a soft skill asked for by the job shows up in the resume.
type SoftSkillMatch struct {
	Skill   string `json:"skill"`
	Present bool   `json:"present"`
}

// AnalysisReport bundles every engine result for one resume/job pair.
type AnalysisReport struct {
	ID           string             `json:"id,omitempty"`
	ResumeName   string             `json:"resume_name,omitempty"`
	JobTitle     string             `json:"job_title,omitempty"`
	OverallScore float64            `json:"overall_score"`
	Match        MatchResult        `json:"match_result"`
	Compliance   ComplianceReport   `json:"ats_result"`
	Style        StyleReport        `json:"grammar_result"`
	Suggestions  []Suggestion       `json:"suggestions"`
	Optimization OptimizationReport `json:"optimization"`
	SoftSkills   []SoftSkillMatch   `json:"soft_skills"`
	CanAutoFix   bool               `json:"can_auto_fix"`
	CreatedAt    time.Time          `json:"created_at"`
}
