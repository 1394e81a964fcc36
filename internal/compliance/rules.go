package compliance

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Deductions applied when a rule fires.
const (
	TablePenalty        = 15.0
	FormattingPenalty   = 10.0
	HeaderPenalty       = 10.0
	SpecialCharsPenalty = 5.0
	ContactPenalty      = 15.0
	TooShortPenalty     = 10.0
	TooLongPenalty      = 5.0
	MetricsPenalty      = 10.0
)

// Detection thresholds.
const (
	minTableLines    = 4
	maxBoxGlyphs     = 5
	maxSymbols       = 10
	minWords         = 200
	maxWords         = 1500
	minMetrics       = 3
	maxHeaderWords   = 4
	maxHeaderLen     = 50
	minHeaderLen     = 4
	reportedHeaders  = 5
	headersInMessage = 3
)

var (
	boxGlyphs  = regexp.MustCompile(`[│┤├┼─━]`)
	symbols    = regexp.MustCompile(`[★☆●○■□▪▫◆◇]`)
	emailToken = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phoneToken = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	percentage = regexp.MustCompile(`\d+%`)
	unitNumber = regexp.MustCompile(`(?i)\b\d+\s*(million|billion|thousand|hundred|users|customers|revenue|sales)\b`)
)

// StandardSections is the header vocabulary ATS parsers recognize. A header
// containing any of these is considered standard.
var StandardSections = []string{
	"summary", "objective", "experience", "work experience",
	"employment", "education", "skills", "technical skills",
	"certifications", "projects", "achievements", "awards",
}

// document is the pre-scanned form of one resume shared by every rule.
type document struct {
	text       string
	lines      []string
	tableLines map[int]bool
	words      int
	metrics    int
	headers    []string
}

// rule inspects a document and returns an issue when it fires.
type rule struct {
	kind    types.IssueKind
	penalty func(types.Issue) float64
	detect  func(d *document) (types.Issue, bool)
}

func fixed(p float64) func(types.Issue) float64 {
	return func(types.Issue) float64 { return p }
}

// rules run in this order and every one of them is evaluated.
var rules = []rule{
	{types.KindTables, fixed(TablePenalty), detectTables},
	{types.KindFormatting, fixed(FormattingPenalty), detectFormatting},
	{types.KindHeaders, fixed(HeaderPenalty), detectHeaders},
	{types.KindSpecialChars, fixed(SpecialCharsPenalty), detectSpecialChars},
	{types.KindContact, fixed(ContactPenalty), detectContact},
	{types.KindLength, lengthPenalty, detectLength},
	{types.KindMetrics, fixed(MetricsPenalty), detectMetrics},
}

func detectTables(d *document) (types.Issue, bool) {
	if !d.hasTable() {
		return types.Issue{}, false
	}
	return types.Issue{
		Kind:     types.KindTables,
		Severity: types.SeverityHigh,
		Message:  "Tables detected - ATS may not parse correctly",
		Fix:      "Use simple text formatting instead of tables",
		Count:    len(d.tableLines),
	}, true
}

func detectFormatting(d *document) (types.Issue, bool) {
	n := len(boxGlyphs.FindAllStringIndex(d.text, -1))
	if n <= maxBoxGlyphs {
		return types.Issue{}, false
	}
	return types.Issue{
		Kind:     types.KindFormatting,
		Severity: types.SeverityMedium,
		Message:  "Complex formatting detected",
		Fix:      "Use simple, clean formatting with standard fonts",
		Count:    n,
	}, true
}

func detectHeaders(d *document) (types.Issue, bool) {
	if len(d.headers) == 0 {
		return types.Issue{}, false
	}
	shown := d.headers
	if len(shown) > headersInMessage {
		shown = shown[:headersInMessage]
	}
	return types.Issue{
		Kind:     types.KindHeaders,
		Severity: types.SeverityMedium,
		Message:  "Non-standard section headers found: " + strings.Join(shown, ", "),
		Fix:      `Use standard headers like "Work Experience", "Education", "Skills"`,
		Count:    len(d.headers),
	}, true
}

func detectSpecialChars(d *document) (types.Issue, bool) {
	n := len(symbols.FindAllStringIndex(d.text, -1))
	if n <= maxSymbols {
		return types.Issue{}, false
	}
	return types.Issue{
		Kind:     types.KindSpecialChars,
		Severity: types.SeverityLow,
		Message:  "Excessive special characters or symbols detected",
		Fix:      "Remove decorative symbols, use simple bullet points",
		Count:    n,
	}, true
}

// detectContact requires an email or phone number outside any detected table.
// Contact details that only appear inside a table block are reported as misplaced.
func detectContact(d *document) (types.Issue, bool) {
	var inPlain, inTable bool
	for i, line := range d.lines {
		if !hasContactToken(line) {
			continue
		}
		if d.hasTable() && d.tableLines[i] {
			inTable = true
			continue
		}
		inPlain = true
		break
	}
	switch {
	case inPlain:
		return types.Issue{}, false
	case inTable:
		return types.Issue{
			Kind:     types.KindContact,
			Severity: types.SeverityHigh,
			Message:  "Contact information is inside a table or header block",
			Fix:      "Move email and phone number out of tables into plain text at the top of resume",
		}, true
	default:
		return types.Issue{
			Kind:     types.KindContact,
			Severity: types.SeverityHigh,
			Message:  "Contact information not clearly visible",
			Fix:      "Add email and phone number at the top of resume",
		}, true
	}
}

func hasContactToken(line string) bool {
	return emailToken.MatchString(line) || phoneToken.MatchString(line)
}

func detectLength(d *document) (types.Issue, bool) {
	switch {
	case d.words < minWords:
		return types.Issue{
			Kind:     types.KindLength,
			Severity: types.SeverityMedium,
			Message:  "Resume appears too short",
			Fix:      "Expand on your experience and achievements",
			Count:    d.words,
		}, true
	case d.words > maxWords:
		return types.Issue{
			Kind:     types.KindLength,
			Severity: types.SeverityLow,
			Message:  "Resume appears too long",
			Fix:      "Consider reducing to 1-2 pages",
			Count:    d.words,
		}, true
	}
	return types.Issue{}, false
}

func lengthPenalty(issue types.Issue) float64 {
	if issue.Severity == types.SeverityLow {
		return TooLongPenalty
	}
	return TooShortPenalty
}

func detectMetrics(d *document) (types.Issue, bool) {
	if d.metrics >= minMetrics {
		return types.Issue{}, false
	}
	return types.Issue{
		Kind:     types.KindMetrics,
		Severity: types.SeverityMedium,
		Message:  "Few or no quantifiable achievements found",
		Fix:      "Add numbers, percentages, and measurable results",
		Count:    d.metrics,
	}, true
}

func (d *document) hasTable() bool {
	return len(d.tableLines) >= minTableLines
}

// isTableLine reports whether a line looks like a table row: two tabs in a row
// or a run of ten spaces.
func isTableLine(line string) bool {
	return strings.Contains(line, "\t\t") || strings.Contains(line, strings.Repeat(" ", 10))
}

// CountMetrics counts percentages and numbers followed by a magnitude or business unit.
func CountMetrics(text string) int {
	return len(percentage.FindAllStringIndex(text, -1)) + len(unitNumber.FindAllStringIndex(text, -1))
}

// NonStandardHeaders returns up to five short upper- or title-case lines that
// do not name a standard section.
func NonStandardHeaders(lines []string) []string {
	var headers []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		n := len(strings.Fields(line))
		if n < 1 || n > maxHeaderWords || utf8.RuneCountInString(line) >= maxHeaderLen {
			continue
		}
		if !IsUpper(line) && !IsTitle(line) {
			continue
		}
		if IsStandardSection(line) || utf8.RuneCountInString(line) < minHeaderLen {
			continue
		}
		headers = append(headers, line)
		if len(headers) == reportedHeaders {
			break
		}
	}
	return headers
}

// IsStandardSection reports whether header contains a standard section name.
func IsStandardSection(header string) bool {
	lower := strings.ToLower(header)
	for _, std := range StandardSections {
		if strings.Contains(lower, std) {
			return true
		}
	}
	return false
}

// IsUpper reports whether s has at least one cased letter and no lowercase letters.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// IsTitle reports whether every cased run in s starts with an uppercase letter
// followed only by lowercase letters, and s has at least one cased letter.
func IsTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// Validate checks the rule table.
func Validate() error {
	if len(rules) == 0 {
		return fmt.Errorf("compliance rule table is empty")
	}
	seen := make(map[types.IssueKind]bool, len(rules))
	for _, r := range rules {
		if r.detect == nil || r.penalty == nil {
			return fmt.Errorf("compliance rule %q is incomplete", r.kind)
		}
		if seen[r.kind] {
			return fmt.Errorf("compliance rule %q is listed twice", r.kind)
		}
		seen[r.kind] = true
	}
	for _, p := range []float64{TablePenalty, FormattingPenalty, HeaderPenalty, SpecialCharsPenalty,
		ContactPenalty, TooShortPenalty, TooLongPenalty, MetricsPenalty} {
		if p < 0 {
			return fmt.Errorf("compliance penalty %v is negative", p)
		}
	}
	if len(StandardSections) == 0 {
		return fmt.Errorf("standard section vocabulary is empty")
	}
	return nil
}
