package types

// KeywordContext points a missing keyword back to where the job description asks for it.
type KeywordContext struct {
	Keyword    string `json:"keyword"`
	Suggestion string `json:"suggestion"`
	Context    string `json:"context"`
}

// MatchResult compares a resume against a job description.
// Matched and Missing are disjoint subsets of the job's keywords. JobWeights
// holds the weight of every job keyword the score was computed from; it is
// not serialized.
type MatchResult struct {
	Score            float64            `json:"score"`
	Matched          []string           `json:"matched"`
	Missing          []string           `json:"missing"`
	Density          map[string]float64 `json:"density"`
	TotalJobKeywords int                `json:"total_job_keywords"`
	MatchedCount     int                `json:"matched_count"`
	Contexts         []KeywordContext   `json:"contexts,omitempty"`
	JobWeights       TermWeights        `json:"-"`
}

// ComplianceReport is the result of the ATS structure and formatting audit.
type ComplianceReport struct {
	Score              float64  `json:"score"`
	Rating             string   `json:"compatibility"`
	Issues             []Issue  `json:"issues"`
	TotalIssues        int      `json:"total_issues"`
	WordCount          int      `json:"word_count"`
	MetricCount        int      `json:"metric_count"`
	TableLineCount     int      `json:"table_line_count"`
	NonStandardHeaders []string `json:"non_standard_headers,omitempty"`
}

// StyleReport is the result of the writing-quality audit.
type StyleReport struct {
	Score                   float64  `json:"score"`
	Readability             float64  `json:"readability_score"`
	Issues                  []Issue  `json:"issues"`
	TotalIssues             int      `json:"total_issues"`
	ActionVerbCount         int      `json:"action_verb_count"`
	WeakPhraseCount         int      `json:"weak_phrase_count"`
	FirstPersonCount        int      `json:"first_person_count"`
	SentenceCount           int      `json:"sentence_count"`
	AverageWordsPerSentence float64  `json:"avg_words_per_sentence"`
	Suggestions             []string `json:"suggestions"`
}
