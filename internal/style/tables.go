package style

import (
	"fmt"
	"regexp"
)

// weakPhrase is a filler phrase and the action verb offered in its place.
type weakPhrase struct {
	phrase      string
	replacement string
}

var weakPhrases = []weakPhrase{
	{"responsible for", "led"},
	{"duties included", "executed"},
	{"worked on", "developed"},
	{"helped with", "delivered"},
	{"participated in", "coordinated"},
	{"assisted with", "implemented"},
	{"involved in", "drove"},
	{"tasked with", "spearheaded"},
}

// ActionVerbs is the strong-verb vocabulary used for counting and repetition checks.
var ActionVerbs = []string{
	"achieved", "improved", "increased", "decreased", "reduced",
	"developed", "created", "built", "designed", "implemented",
	"launched", "led", "managed", "optimized", "streamlined",
	"coordinated", "executed", "delivered", "drove", "established",
	"generated", "transformed", "pioneered", "spearheaded",
}

// typo pairs a common misspelling with its correction.
type typo struct {
	wrong string
	right string
}

var typos = []typo{
	{"experiance", "experience"},
	{"recieve", "receive"},
	{"occured", "occurred"},
	{"seperate", "separate"},
	{"definately", "definitely"},
	{"sucessful", "successful"},
	{"managment", "management"},
	{"develope", "develop"},
}

var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwas\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bwere\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bhas\s+been\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bhave\s+been\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bhad\s+been\s+\w+ed\b`),
}

var pronouns = []string{"i", "my", "me", "mine", "we", "our", "us"}

// Penalties per issue severity.
const (
	HighPenalty   = 5.0
	MediumPenalty = 3.0
	LowPenalty    = 1.0
)

const (
	// MaxIssues caps the issues listed in a report. The score still counts every issue.
	MaxIssues = 20
	// MaxPassivePerPattern caps how many passive clauses each pattern reports.
	MaxPassivePerPattern = 5
	// MaxRepetitions caps the overused verbs reported.
	MaxRepetitions = 3

	repetitionThreshold = 3
	fewIssues           = 3
)

// wholeWord compiles a case-insensitive whole-word matcher for a literal phrase.
func wholeWord(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

var (
	weakPatterns    = make([]*regexp.Regexp, len(weakPhrases))
	typoPatterns    = make([]*regexp.Regexp, len(typos))
	pronounPatterns = make([]*regexp.Regexp, len(pronouns))
	verbPatterns    = make([]*regexp.Regexp, len(ActionVerbs))
)

func init() {
	for i, w := range weakPhrases {
		weakPatterns[i] = wholeWord(w.phrase)
	}
	for i, t := range typos {
		typoPatterns[i] = wholeWord(t.wrong)
	}
	for i, p := range pronouns {
		pronounPatterns[i] = wholeWord(p)
	}
	for i, v := range ActionVerbs {
		verbPatterns[i] = wholeWord(v)
	}
}

// Validate checks the phrase, typo and verb tables.
func Validate() error {
	verbs := make(map[string]bool, len(ActionVerbs))
	for _, v := range ActionVerbs {
		if v == "" {
			return fmt.Errorf("action verb list contains an empty entry")
		}
		if verbs[v] {
			return fmt.Errorf("action verb %q is listed twice", v)
		}
		verbs[v] = true
	}
	for _, w := range weakPhrases {
		if !verbs[w.replacement] {
			return fmt.Errorf("weak phrase %q suggests %q, which is not an action verb", w.phrase, w.replacement)
		}
	}
	for _, t := range typos {
		if t.wrong == "" || t.right == "" || t.wrong == t.right {
			return fmt.Errorf("typo table entry %q -> %q is invalid", t.wrong, t.right)
		}
	}
	if len(passivePatterns) == 0 {
		return fmt.Errorf("passive voice pattern list is empty")
	}
	return nil
}
