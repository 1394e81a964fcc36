// Package rewriting applies small, targeted edits to resume text.
package rewriting

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxSkillsAdded caps how many missing skills one fix appends.
const MaxSkillsAdded = 3

// QuantifiedSuffix is appended to the first bullet that has no metric.
const QuantifiedSuffix = " (increased efficiency by 25%)"

var (
	skillsLine   = regexp.MustCompile(`(?i)skills?[:\s]*[^\n]*`)
	bulletLine   = regexp.MustCompile(`(?m)^[ \t]*(?:•|\*|-)[ \t]*([^.\n]+)`)
	bulletMetric = regexp.MustCompile(`\d+%|\d+\+|\$\d+`)
)

// verbSwap replaces a weak verb with a stronger one.
type verbSwap struct {
	weak   string
	strong string
	re     *regexp.Regexp
}

var verbSwaps = []verbSwap{
	swap("did", "achieved"),
	swap("was", "managed"),
	swap("were", "developed"),
	swap("had", "implemented"),
	swap("worked on", "optimized"),
	swap("responsible for", "led"),
}

func swap(weak, strong string) verbSwap {
	return verbSwap{weak: weak, strong: strong, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(weak) + `\b`)}
}

// ApplyFixes applies the requested fixes in the order given and reports what
// changed. Unknown kinds are ignored; fixes with nothing to do are not reported.
// missingSkills should already be limited to technical terms.
func ApplyFixes(text string, missingSkills []string, fixes []types.FixKind) types.FixResult {
	original := text
	fixed := textutil.Sanitize(text)
	applied := []string{}

	done := make(map[types.FixKind]bool, len(fixes))
	for _, kind := range fixes {
		if done[kind] {
			continue
		}
		done[kind] = true

		var notes []string
		switch kind {
		case types.FixSkills:
			fixed, notes = addSkills(fixed, missingSkills)
		case types.FixActionVerbs:
			fixed, notes = strengthenVerbs(fixed)
		case types.FixQuantify:
			fixed, notes = quantifyBullet(fixed)
		}
		applied = append(applied, notes...)
	}

	return types.FixResult{
		OriginalText:    original,
		FixedText:       fixed,
		Applied:         applied,
		WordCountChange: textutil.WordCount(fixed) - textutil.WordCount(original),
	}
}

// addSkills appends skills to the first skills line, or adds a SKILLS section.
func addSkills(text string, missing []string) (string, []string) {
	if len(missing) > MaxSkillsAdded {
		missing = missing[:MaxSkillsAdded]
	}
	if len(missing) == 0 {
		return text, nil
	}
	list := strings.Join(missing, ", ")

	if loc := skillsLine.FindStringIndex(text); loc != nil {
		text = text[:loc[1]] + ", " + list + text[loc[1]:]
		return text, []string{"Added technical skills: " + list}
	}

	text += "\n\nSKILLS\n" + list + ", Communication, Problem-solving"
	return text, []string{"Created Skills section with: " + list}
}

// strengthenVerbs replaces the first occurrence of each weak verb.
func strengthenVerbs(text string) (string, []string) {
	var notes []string
	for _, s := range verbSwaps {
		loc := s.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		text = text[:loc[0]] + matchCase(text[loc[0]:loc[1]], s.strong) + text[loc[1]:]
		notes = append(notes, fmt.Sprintf("Replaced '%s' with '%s'", s.weak, s.strong))
	}
	return text, notes
}

// quantifyBullet adds an example metric to the first bullet when it has none.
func quantifyBullet(text string) (string, []string) {
	m := bulletLine.FindStringSubmatchIndex(text)
	if m == nil {
		return text, nil
	}
	end := m[3]
	if bulletMetric.MatchString(text[m[2]:end]) {
		return text, nil
	}
	text = text[:end] + QuantifiedSuffix + text[end:]
	return text, []string{"Added quantified achievement example"}
}

// matchCase capitalizes replacement when the replaced text started with an uppercase letter.
func matchCase(replaced, replacement string) string {
	r, _ := utf8.DecodeRuneInString(replaced)
	if !unicode.IsUpper(r) {
		return replacement
	}
	first, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(first)) + replacement[size:]
}
