package parsing

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with 8 years of experience building payment systems.

Experience
Senior Engineer, Acme Corp
2019 - Present
• Developed billing APIs that cut costs 20%, saving $250K annually
• Led a team of 5 engineers serving 2 million users

Engineer, Beta Inc
Jan 2016
- Built internal tools

Education
Northwind Institute of Technology
B.S. Computer Science, 2012 - 2016

Skills
Go, Python; SQL
• Docker

Certifications
- AWS Certified Solutions Architect
`

func TestParseResume_Contact(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Equal(t, types.ContactInfo{
		Email:    "jane.doe@example.com",
		Phone:    "(555) 123-4567",
		LinkedIn: "linkedin.com/in/janedoe",
		GitHub:   "github.com/janedoe",
	}, parsed.Contact)
}

func TestParseResume_Sections(t *testing.T) {
	parsed := ParseResume(sampleResume)

	for _, name := range []string{"summary", "experience", "education", "skills", "certifications"} {
		assert.Contains(t, parsed.Sections, name)
	}
	assert.Contains(t, parsed.Sections["summary"], "Backend engineer")
}

func TestParseResume_Experience(t *testing.T) {
	parsed := ParseResume(sampleResume)

	require.Len(t, parsed.Experience, 2)
	first := parsed.Experience[0]
	assert.Equal(t, "Senior Engineer, Acme Corp", first.Title)
	assert.Equal(t, "2019 - Present", first.Dates)
	assert.Equal(t, []string{
		"Developed billing APIs that cut costs 20%, saving $250K annually",
		"Led a team of 5 engineers serving 2 million users",
	}, first.Responsibilities)

	second := parsed.Experience[1]
	assert.Equal(t, "Engineer, Beta Inc", second.Title)
	assert.Equal(t, "Jan 2016", second.Dates)
	assert.Equal(t, []string{"Built internal tools"}, second.Responsibilities)
}

func TestParseResume_Education(t *testing.T) {
	parsed := ParseResume(sampleResume)

	require.Len(t, parsed.Education, 1)
	assert.Equal(t, types.EducationEntry{
		Institution: "Northwind Institute of Technology",
		Degree:      "b.s.",
		Year:        "2016",
	}, parsed.Education[0])
}

func TestParseResume_SkillsAndCertifications(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, parsed.Skills)
	assert.Equal(t, []string{"AWS Certified Solutions Architect"}, parsed.Certifications)
}

func TestParseResume_Metrics(t *testing.T) {
	parsed := ParseResume(sampleResume)

	assert.Equal(t, []string{"20%"}, parsed.Metrics.Percentages)
	assert.Contains(t, parsed.Metrics.Numbers, "2 million")
	assert.Contains(t, parsed.Metrics.Numbers, "250K")
	assert.Equal(t, []string{"$250K"}, parsed.Metrics.Currencies)
}

func TestParseResume_Empty(t *testing.T) {
	parsed := ParseResume("")

	assert.Empty(t, parsed.Sections)
	assert.NotNil(t, parsed.Sections)
	assert.Empty(t, parsed.Experience)
	assert.Empty(t, parsed.Skills)
	assert.Equal(t, types.ContactInfo{}, parsed.Contact)
	assert.Equal(t, 0, parsed.ActionVerbs)
	assert.NotNil(t, parsed.Metrics.Percentages)
}

func TestContact_OnlyFirstTenLines(t *testing.T) {
	text := "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nlate@example.com"
	assert.Empty(t, Contact(text).Email)
}

func TestCountVerbOccurrences(t *testing.T) {
	assert.Equal(t, 3, CountVerbOccurrences("Led and developed; misled"))
}

func TestMetrics_Deduplicated(t *testing.T) {
	m := Metrics("grew 20% then 20% again, $5 and $5")
	assert.Equal(t, []string{"20%"}, m.Percentages)
	assert.Equal(t, []string{"$5"}, m.Currencies)
}
