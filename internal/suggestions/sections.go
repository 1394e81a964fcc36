package suggestions

import "strings"

// Sections records which conventional resume sections a text appears to contain.
type Sections struct {
	Summary        bool `json:"summary"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Skills         bool `json:"skills"`
	Certifications bool `json:"certifications"`
}

// IdentifySections looks for section vocabulary anywhere in text.
func IdentifySections(text string) Sections {
	lower := strings.ToLower(text)
	return Sections{
		Summary:        containsAny(lower, "summary", "objective", "profile"),
		Experience:     containsAny(lower, "experience", "employment", "work history"),
		Education:      strings.Contains(lower, "education"),
		Skills:         containsAny(lower, "skills", "technical", "competencies"),
		Certifications: containsAny(lower, "certification", "certificate", "license"),
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
