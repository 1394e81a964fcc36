package types

// Suggestion is a prioritized recommendation. Priority 1 is the most urgent.
type Suggestion struct {
	Priority int    `json:"priority"`
	Category string `json:"category"`
	Issue    string `json:"issue"`
	Fix      string `json:"fix"`
}

// ImpactStatement is an illustrative bullet built from a template, not tailored content.
type ImpactStatement struct {
	Keyword string `json:"keyword"`
	Example string `json:"example"`
	Tip     string `json:"tip"`
}

// HeaderSuggestion proposes an ATS-friendly name for an existing section header.
type HeaderSuggestion struct {
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

// Placement is one place a missing keyword could be worked into the resume.
type Placement struct {
	Section    string `json:"section"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example"`
}

// KeywordPlacement groups the placements proposed for one keyword.
type KeywordPlacement struct {
	Keyword    string      `json:"keyword"`
	Placements []Placement `json:"placements"`
}

// FormattingFix is a formatting change derived from a compliance issue.
type FormattingFix struct {
	Issue    string   `json:"issue"`
	Fix      string   `json:"fix"`
	Priority Severity `json:"priority"`
}

// ContentSuggestion targets a content area with example phrasing.
type ContentSuggestion struct {
	Area       string   `json:"area"`
	Suggestion string   `json:"suggestion"`
	Examples   []string `json:"examples"`
}

// OptimizationReport is the full optimizer output for one resume.
type OptimizationReport struct {
	PriorityFixes    []Suggestion        `json:"priority_fixes"`
	SectionHeaders   []HeaderSuggestion  `json:"section_headers"`
	KeywordPlacement []KeywordPlacement  `json:"keyword_placement"`
	Formatting       []FormattingFix     `json:"formatting"`
	Content          []ContentSuggestion `json:"content"`
	ImpactStatements []ImpactStatement   `json:"impact_statements"`
}
