// Package suggestions turns match and audit results into prioritized,
// actionable recommendations.
package suggestions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Suggestion categories, in tie-break order.
const (
	CategoryATS      = "ATS Compatibility"
	CategoryKeywords = "Keywords"
	CategoryStyle    = "Grammar & Style"
	CategoryImpact   = "Impact Statements"
)

const (
	// MaxSuggestions caps the output of Generate.
	MaxSuggestions = 10
	// MissingKeywordThreshold is the missing count above which keywords become a top priority.
	MissingKeywordThreshold = 5

	keywordsInFix = 5
)

// Generate applies the fixed priority policy:
//
//	priority 1: high severity compliance issues, more than five missing keywords
//	priority 2: high severity style issues, medium severity compliance issues
//	priority 3: illustrative impact statements for missing keywords
//
// The result is stably ordered by priority and truncated to MaxSuggestions.
// Impact statements are skipped for keywords resumeText already mentions.
func Generate(resumeText string, missing []string, complianceIssues, styleIssues []types.Issue) []types.Suggestion {
	out := []types.Suggestion{}

	for _, issue := range types.FilterBySeverity(complianceIssues, types.SeverityHigh) {
		out = append(out, types.Suggestion{Priority: 1, Category: CategoryATS, Issue: issue.Message, Fix: issue.Fix})
	}

	if len(missing) > MissingKeywordThreshold {
		out = append(out, types.Suggestion{
			Priority: 1,
			Category: CategoryKeywords,
			Issue:    fmt.Sprintf("%d important keywords missing", len(missing)),
			Fix:      "Add key terms: " + strings.Join(head(missing, keywordsInFix), ", "),
		})
	}

	for _, issue := range types.FilterBySeverity(styleIssues, types.SeverityHigh) {
		out = append(out, types.Suggestion{Priority: 2, Category: CategoryStyle, Issue: issue.Message, Fix: issue.Fix})
	}

	for _, issue := range types.FilterBySeverity(complianceIssues, types.SeverityMedium) {
		out = append(out, types.Suggestion{Priority: 2, Category: CategoryATS, Issue: issue.Message, Fix: issue.Fix})
	}

	lower := strings.ToLower(resumeText)
	var pending []string
	for _, kw := range missing {
		if kw != "" && !strings.Contains(lower, strings.ToLower(kw)) {
			pending = append(pending, kw)
		}
	}
	for _, st := range ImpactStatements(pending) {
		out = append(out, types.Suggestion{
			Priority: 3,
			Category: CategoryImpact,
			Issue:    fmt.Sprintf("Show impact with %q", st.Keyword),
			Fix:      fmt.Sprintf("Example: %s (%s)", st.Example, st.Tip),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
