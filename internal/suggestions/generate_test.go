package suggestions

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	contactIssue = types.Issue{Kind: types.KindContact, Severity: types.SeverityHigh,
		Message: "Contact information not clearly visible", Fix: "Add email and phone number at the top of resume"}
	shortIssue = types.Issue{Kind: types.KindLength, Severity: types.SeverityMedium,
		Message: "Resume appears too short", Fix: "Expand on your experience and achievements"}
	metricsIssue = types.Issue{Kind: types.KindMetrics, Severity: types.SeverityMedium,
		Message: "Few or no quantifiable achievements found", Fix: "Add numbers, percentages, and measurable results"}
	symbolsIssue = types.Issue{Kind: types.KindSpecialChars, Severity: types.SeverityLow,
		Message: "Excessive special characters or symbols detected"}
	typoIssue = types.Issue{Kind: types.KindSpelling, Severity: types.SeverityHigh,
		Message: `Possible spelling error: "recieve"`, Fix: `Did you mean "receive"?`}
	passiveIssue = types.Issue{Kind: types.KindPassiveVoice, Severity: types.SeverityLow,
		Message: `Passive voice detected: "was deployed"`}
)

func TestGenerate_ComplianceOnly(t *testing.T) {
	got := Generate("", nil, []types.Issue{contactIssue, shortIssue, metricsIssue}, nil)

	require.Len(t, got, 3)
	assert.Equal(t, types.Suggestion{Priority: 1, Category: CategoryATS,
		Issue: contactIssue.Message, Fix: contactIssue.Fix}, got[0])
	assert.Equal(t, 2, got[1].Priority)
	assert.Equal(t, shortIssue.Message, got[1].Issue)
	assert.Equal(t, 2, got[2].Priority)
	assert.Equal(t, metricsIssue.Message, got[2].Issue)
}

func TestGenerate_PolicyOrder(t *testing.T) {
	missing := []string{"aws", "docker", "kubernetes", "redis", "kafka", "terraform"}
	got := Generate("", missing,
		[]types.Issue{shortIssue, contactIssue, symbolsIssue},
		[]types.Issue{passiveIssue, typoIssue},
	)

	require.Len(t, got, 9)
	assert.Equal(t, CategoryATS, got[0].Category)
	assert.Equal(t, 1, got[0].Priority)

	assert.Equal(t, CategoryKeywords, got[1].Category)
	assert.Equal(t, 1, got[1].Priority)
	assert.Equal(t, "6 important keywords missing", got[1].Issue)
	assert.Equal(t, "Add key terms: aws, docker, kubernetes, redis, kafka", got[1].Fix)

	assert.Equal(t, CategoryStyle, got[2].Category)
	assert.Equal(t, 2, got[2].Priority)
	assert.Equal(t, typoIssue.Fix, got[2].Fix)

	assert.Equal(t, CategoryATS, got[3].Category)
	assert.Equal(t, shortIssue.Message, got[3].Issue)

	for _, s := range got[4:] {
		assert.Equal(t, CategoryImpact, s.Category)
		assert.Equal(t, 3, s.Priority)
	}
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Priority, got[i].Priority)
	}
}

func TestGenerate_FiveMissingIsNotPriority(t *testing.T) {
	got := Generate("", []string{"a1", "a2", "a3", "a4", "a5"}, nil, nil)

	for _, s := range got {
		assert.NotEqual(t, CategoryKeywords, s.Category)
	}
	assert.Len(t, got, 5)
}

func TestGenerate_LowSeverityIgnored(t *testing.T) {
	got := Generate("", nil, []types.Issue{symbolsIssue}, []types.Issue{passiveIssue})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGenerate_AllHighComplianceIssuesKept(t *testing.T) {
	var issues []types.Issue
	for i := 0; i < 12; i++ {
		issues = append(issues, types.Issue{Severity: types.SeverityHigh, Message: fmt.Sprintf("issue %d", i)})
	}
	got := Generate("", nil, issues, nil)

	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, "issue 9", got[9].Issue)
}

func TestGenerate_ImpactLabeledAsExample(t *testing.T) {
	got := Generate("", []string{"aws"}, nil, nil)

	require.Len(t, got, 1)
	assert.Equal(t, `Show impact with "aws"`, got[0].Issue)
	assert.Equal(t,
		"Example: Developed aws-based solutions that improved performance by 30% (Customize this example with your actual achievements)",
		got[0].Fix)
}

func TestGenerate_SkipsImpactForMentionedKeywords(t *testing.T) {
	got := Generate("Deployed on AWS", []string{"aws", "gcp"}, nil, nil)

	require.Len(t, got, 1)
	assert.Equal(t, `Show impact with "gcp"`, got[0].Issue)
}

func TestImpactStatements(t *testing.T) {
	got := ImpactStatements([]string{"go", "rust", "aws", "gcp", "sql", "redis"})

	require.Len(t, got, MaxImpactStatements)
	assert.Equal(t, "Developed go-based solutions that improved performance by 30%", got[0].Example)
	assert.Equal(t, "Implemented rust to optimize workflow, resulting in faster deployment cycles", got[1].Example)
	assert.Equal(t, "Led team using aws to deliver production release ahead of schedule", got[2].Example)
	assert.Equal(t, "Architected scalable gcp system supporting 10,000+ users", got[3].Example)
	assert.Equal(t, "Utilized sql to reduce performance by 30%", got[4].Example)
	for _, st := range got {
		assert.Equal(t, ImpactTip, st.Tip)
	}
}

func TestImpactStatements_Empty(t *testing.T) {
	assert.Empty(t, ImpactStatements(nil))
}
