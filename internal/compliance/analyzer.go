// Package compliance audits resume text for structure and formatting problems
// that commonly break applicant tracking system parsers.
package compliance

import (
	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Compatibility ratings.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
)

// Analyzer runs the compliance rule table. The zero value is ready to use and
// holds no state between calls.
type Analyzer struct{}

// Analyze evaluates every rule against text. The score starts at 100, drops by
// each fired rule's deduction, and is clamped to [0,100].
func (Analyzer) Analyze(text string) types.ComplianceReport {
	d := scan(text)

	score := 100.0
	issues := []types.Issue{}
	for _, r := range rules {
		issue, fired := r.detect(d)
		if !fired {
			continue
		}
		issues = append(issues, issue)
		score -= r.penalty(issue)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	score = textutil.RoundTo(score, 1)

	return types.ComplianceReport{
		Score:              score,
		Rating:             Rating(score),
		Issues:             issues,
		TotalIssues:        len(issues),
		WordCount:          d.words,
		MetricCount:        d.metrics,
		TableLineCount:     len(d.tableLines),
		NonStandardHeaders: d.headers,
	}
}

func scan(text string) *document {
	text = textutil.Sanitize(text)
	d := &document{
		text:       text,
		lines:      textutil.Lines(text),
		tableLines: make(map[int]bool),
		words:      textutil.WordCount(text),
		metrics:    CountMetrics(text),
	}
	for i, line := range d.lines {
		if isTableLine(line) {
			d.tableLines[i] = true
		}
	}
	d.headers = NonStandardHeaders(d.lines)
	return d
}

// Rating maps a score to its compatibility label.
func Rating(score float64) string {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}
