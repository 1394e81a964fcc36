// Package keywords extracts candidate skill and topic terms from free text.
package keywords

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Extractor pulls candidate concept terms from text. Implementations must be
// safe for concurrent use and must not fail on empty or malformed input.
type Extractor interface {
	Extract(text string) types.KeywordSet
}

// Heuristic is the always-available extractor: catalog matching followed by a
// frequency fallback for repeated capitalized tokens.
type Heuristic struct{}

var _ Extractor = Heuristic{}

// Extract returns the lowercased catalog and frequency matches minus stop words.
// The result is deterministic for a given input.
func (Heuristic) Extract(text string) types.KeywordSet {
	set := types.KeywordSet{}
	text = textutil.Sanitize(text)
	if strings.TrimSpace(text) == "" {
		return set
	}

	for _, t := range techCatalog {
		addMatches(set, t.pattern, text)
	}
	for _, t := range phraseCatalog {
		addMatches(set, t.pattern, text)
	}

	counts := make(map[string]int)
	for _, tok := range capitalizedToken.FindAllString(text, -1) {
		counts[strings.ToLower(tok)]++
	}
	for tok, n := range counts {
		if n >= minFrequency {
			set.Add(tok)
		}
	}

	return RemoveStopWords(set)
}

// addMatches inserts every boundary-respecting match of re in text, lowercased.
func addMatches(set types.KeywordSet, re *regexp.Regexp, text string) {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if textutil.AtWordBoundary(text, loc[0], loc[1]) {
			set.Add(strings.ToLower(text[loc[0]:loc[1]]))
		}
	}
}

// RemoveStopWords deletes stop words from set in place and returns it.
func RemoveStopWords(set types.KeywordSet) types.KeywordSet {
	for t := range set {
		if stopWords[t] {
			set.Remove(t)
		}
	}
	return set
}

// IsStopWord reports whether term is on the stop list.
func IsStopWord(term string) bool {
	return stopWords[strings.ToLower(term)]
}

// IsTechnical reports whether term is exactly a technology catalog entry, such as "aws" or "node.js".
func IsTechnical(term string) bool {
	for _, t := range techCatalog {
		loc := t.pattern.FindStringIndex(term)
		if loc != nil && loc[0] == 0 && loc[1] == len(term) {
			return true
		}
	}
	return false
}

// SoftSkills returns the soft skills mentioned in text, in catalog order.
func SoftSkills(text string) []string {
	var found []string
	for _, s := range softSkillCatalog {
		if s.pattern.MatchString(text) {
			found = append(found, s.name)
		}
	}
	return found
}
