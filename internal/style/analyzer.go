// Package style audits the wording of a resume: filler phrases, typos, passive
// voice, first-person pronouns, overused verbs and sentence length.
package style

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer runs the style checks. The zero value is ready to use.
type Analyzer struct{}

// Analyze returns the style report for text. Text without sentences yields a
// zero score, neutral readability, and no issues or suggestions.
func (Analyzer) Analyze(text string) types.StyleReport {
	text = textutil.Sanitize(text)
	sentences := textutil.Sentences(text)

	report := types.StyleReport{
		Readability: NeutralReadability,
		Issues:      []types.Issue{},
		Suggestions: []string{},
	}
	if len(sentences) == 0 {
		return report
	}

	words := textutil.WordCount(text)
	avg := float64(words) / float64(len(sentences))

	weak := weakLanguage(text)
	firstPerson, pronounCount := firstPerson(text)

	var all []types.Issue
	all = append(all, weak...)
	all = append(all, spelling(text)...)
	all = append(all, passiveVoice(text)...)
	all = append(all, firstPerson...)
	all = append(all, repetition(text)...)

	report.Score = Score(all)
	report.Readability = Readability(avg, len(sentences))
	report.TotalIssues = len(all)
	report.ActionVerbCount = CountActionVerbs(text)
	report.WeakPhraseCount = len(weak)
	report.FirstPersonCount = pronounCount
	report.SentenceCount = len(sentences)
	report.AverageWordsPerSentence = textutil.RoundTo(avg, 1)
	report.Suggestions = generalSuggestions(all)

	if len(all) > MaxIssues {
		all = all[:MaxIssues]
	}
	report.Issues = append(report.Issues, all...)

	return report
}

// Score is 100 minus the severity penalties of issues, clamped to [0,100].
func Score(issues []types.Issue) float64 {
	score := 100.0
	for _, issue := range issues {
		switch issue.Severity {
		case types.SeverityHigh:
			score -= HighPenalty
		case types.SeverityMedium:
			score -= MediumPenalty
		case types.SeverityLow:
			score -= LowPenalty
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

func weakLanguage(text string) []types.Issue {
	var issues []types.Issue
	for i, w := range weakPhrases {
		n := len(weakPatterns[i].FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		issues = append(issues, types.Issue{
			Kind:     types.KindWeakLanguage,
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("Weak phrase detected: %q", w.phrase),
			Fix:      fmt.Sprintf("Replace with strong action verb (e.g., %s)", w.replacement),
			Phrase:   w.phrase,
			Count:    n,
		})
	}
	return issues
}

func spelling(text string) []types.Issue {
	var issues []types.Issue
	for i, t := range typos {
		n := len(typoPatterns[i].FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		issues = append(issues, types.Issue{
			Kind:     types.KindSpelling,
			Severity: types.SeverityHigh,
			Message:  fmt.Sprintf("Possible spelling error: %q", t.wrong),
			Fix:      fmt.Sprintf("Did you mean %q?", t.right),
			Phrase:   t.wrong,
			Count:    n,
		})
	}
	return issues
}

func passiveVoice(text string) []types.Issue {
	var issues []types.Issue
	for _, re := range passivePatterns {
		for _, m := range re.FindAllString(text, MaxPassivePerPattern) {
			issues = append(issues, types.Issue{
				Kind:     types.KindPassiveVoice,
				Severity: types.SeverityLow,
				Message:  fmt.Sprintf("Passive voice detected: %q", m),
				Fix:      "Use active voice with strong action verbs",
				Phrase:   m,
			})
		}
	}
	return issues
}

// firstPerson returns one issue per pronoun used and the total pronoun count.
func firstPerson(text string) ([]types.Issue, int) {
	var issues []types.Issue
	total := 0
	for i, p := range pronouns {
		n := len(pronounPatterns[i].FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		total += n
		shown := p
		if p == "i" {
			shown = "I"
		}
		issues = append(issues, types.Issue{
			Kind:     types.KindFirstPerson,
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("First person pronoun %q used %d time(s)", shown, n),
			Fix:      "Remove first person pronouns; use direct statements",
			Phrase:   shown,
			Count:    n,
		})
	}
	return issues, total
}

func repetition(text string) []types.Issue {
	var issues []types.Issue
	for i, v := range ActionVerbs {
		n := len(verbPatterns[i].FindAllStringIndex(text, -1))
		if n <= repetitionThreshold {
			continue
		}
		issues = append(issues, types.Issue{
			Kind:     types.KindRepetition,
			Severity: types.SeverityLow,
			Message:  fmt.Sprintf("%q used %d times", v, n),
			Fix:      "Vary your action verbs for better impact",
			Phrase:   v,
			Count:    n,
		})
		if len(issues) == MaxRepetitions {
			break
		}
	}
	return issues
}

// CountActionVerbs returns how many distinct action verbs occur in text.
func CountActionVerbs(text string) int {
	n := 0
	for _, re := range verbPatterns {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}

// HasActionVerb reports whether text contains any of verbs as a whole word.
func HasActionVerb(text string, verbs ...string) bool {
	lower := strings.ToLower(text)
	for _, v := range verbs {
		if wholeWord(v).MatchString(lower) {
			return true
		}
	}
	return false
}

func generalSuggestions(issues []types.Issue) []string {
	suggestions := []string{}
	checks := []struct {
		kind types.IssueKind
		text string
	}{
		{types.KindWeakLanguage, "Use strong action verbs to start bullet points"},
		{types.KindSpelling, "Proofread for spelling errors"},
		{types.KindPassiveVoice, "Convert passive voice to active voice for impact"},
		{types.KindFirstPerson, "Remove first person pronouns (I, my, we, our)"},
		{types.KindRepetition, "Vary your action verbs for better impact"},
	}
	for _, c := range checks {
		if types.HasKind(issues, c.kind) {
			suggestions = append(suggestions, c.text)
		}
	}
	if len(issues) < fewIssues {
		suggestions = append(suggestions, "Great job! Your resume has strong language")
	}
	return suggestions
}
