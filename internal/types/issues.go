package types

// Severity grades how much an issue is expected to hurt a resume.
type Severity string

// Issue severities.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IssueKind identifies the rule that produced an issue.
type IssueKind string

// Compliance issue kinds.
const (
	KindTables       IssueKind = "tables"
	KindFormatting   IssueKind = "formatting"
	KindHeaders      IssueKind = "headers"
	KindSpecialChars IssueKind = "special_chars"
	KindContact      IssueKind = "contact"
	KindLength       IssueKind = "length"
	KindMetrics      IssueKind = "metrics"
)

// Style issue kinds.
const (
	KindWeakLanguage IssueKind = "weak_language"
	KindSpelling     IssueKind = "spelling"
	KindPassiveVoice IssueKind = "passive_voice"
	KindFirstPerson  IssueKind = "first_person"
	KindRepetition   IssueKind = "repetition"
)

// Issue is a single independent finding.
type Issue struct {
	Kind     IssueKind `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Fix      string    `json:"fix"`

	// Phrase is the offending text for style findings (weak phrase, typo, passive clause, pronoun, verb).
	Phrase string `json:"phrase,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// FilterBySeverity returns the issues with the given severity, preserving order.
func FilterBySeverity(issues []Issue, severity Severity) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// HasKind reports whether any issue has the given kind.
func HasKind(issues []Issue, kind IssueKind) bool {
	for _, issue := range issues {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}
