package types

// ContactInfo holds contact details found near the top of a resume.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is one block of the experience section.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Dates            string   `json:"dates,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// EducationEntry is one block of the education section.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ResumeMetrics lists the quantified achievements found in a resume.
type ResumeMetrics struct {
	Percentages []string `json:"percentages"`
	Numbers     []string `json:"numbers"`
	Currencies  []string `json:"currencies"`
}

// ParsedResume is the structured view of a plain-text resume.
type ParsedResume struct {
	Contact        ContactInfo       `json:"contact_info"`
	Sections       map[string]string `json:"sections"`
	Experience     []ExperienceEntry `json:"work_experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications"`
	Metrics        ResumeMetrics     `json:"metrics"`
	ActionVerbs    int               `json:"action_verbs"`
}

// FixKind selects one automatic text edit.
type FixKind string

// Supported automatic fixes.
const (
	FixSkills      FixKind = "skills"
	FixActionVerbs FixKind = "action_verbs"
	FixQuantify    FixKind = "quantify"
)

// FixResult is the outcome of applying automatic fixes to resume text.
type FixResult struct {
	OriginalText    string   `json:"original_text"`
	FixedText       string   `json:"fixed_text"`
	Applied         []string `json:"improvements_applied"`
	WordCountChange int      `json:"word_count_change"`
}
