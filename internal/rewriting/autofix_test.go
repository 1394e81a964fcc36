package rewriting

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFixes_AddsToExistingSkillsLine(t *testing.T) {
	text := "Jane Doe\nSkills: Go, Python\nEducation"
	result := ApplyFixes(text, []string{"aws", "docker", "kubernetes", "redis"}, []types.FixKind{types.FixSkills})

	assert.Equal(t, "Jane Doe\nSkills: Go, Python, aws, docker, kubernetes\nEducation", result.FixedText)
	assert.Equal(t, []string{"Added technical skills: aws, docker, kubernetes"}, result.Applied)
	assert.Equal(t, 3, result.WordCountChange)
	assert.Equal(t, text, result.OriginalText)
}

func TestApplyFixes_SkillsHeaderOnOwnLine(t *testing.T) {
	text := "SKILLS\nGo, Python\n"
	result := ApplyFixes(text, []string{"aws"}, []types.FixKind{types.FixSkills})

	assert.Equal(t, "SKILLS\nGo, Python, aws\n", result.FixedText)
}

func TestApplyFixes_CreatesSkillsSection(t *testing.T) {
	result := ApplyFixes("Backend engineer", []string{"aws", "gcp"}, []types.FixKind{types.FixSkills})

	assert.Equal(t, "Backend engineer\n\nSKILLS\naws, gcp, Communication, Problem-solving", result.FixedText)
	assert.Equal(t, []string{"Created Skills section with: aws, gcp"}, result.Applied)
}

func TestApplyFixes_NoMissingSkills(t *testing.T) {
	result := ApplyFixes("Backend engineer", nil, []types.FixKind{types.FixSkills})

	assert.Equal(t, "Backend engineer", result.FixedText)
	assert.Empty(t, result.Applied)
	assert.NotNil(t, result.Applied)
	assert.Equal(t, 0, result.WordCountChange)
}

func TestApplyFixes_ActionVerbs(t *testing.T) {
	text := "Responsible for billing. I was on call and was paged. Worked on search."
	result := ApplyFixes(text, nil, []types.FixKind{types.FixActionVerbs})

	assert.Equal(t, "Led billing. I managed on call and was paged. Optimized search.", result.FixedText)
	assert.Equal(t, []string{
		"Replaced 'was' with 'managed'",
		"Replaced 'worked on' with 'optimized'",
		"Replaced 'responsible for' with 'led'",
	}, result.Applied)
	assert.Equal(t, -2, result.WordCountChange)
}

func TestApplyFixes_ActionVerbsWholeWordOnly(t *testing.T) {
	result := ApplyFixes("Candidate washed dishes", nil, []types.FixKind{types.FixActionVerbs})

	assert.Equal(t, "Candidate washed dishes", result.FixedText)
	assert.Empty(t, result.Applied)
}

func TestApplyFixes_Quantify(t *testing.T) {
	text := "Experience\n• Built the billing service. Shipped fast\n• Cut costs 20%"
	result := ApplyFixes(text, nil, []types.FixKind{types.FixQuantify})

	assert.Equal(t, "Experience\n• Built the billing service (increased efficiency by 25%). Shipped fast\n• Cut costs 20%", result.FixedText)
	assert.Equal(t, []string{"Added quantified achievement example"}, result.Applied)
	assert.Equal(t, 4, result.WordCountChange)
}

func TestApplyFixes_QuantifySkipsMeasuredBullet(t *testing.T) {
	text := "- Grew revenue 30%\n- Built tools"
	result := ApplyFixes(text, nil, []types.FixKind{types.FixQuantify})

	assert.Equal(t, text, result.FixedText)
	assert.Empty(t, result.Applied)
}

func TestApplyFixes_QuantifyIgnoresInlineHyphens(t *testing.T) {
	text := "full-stack engineer\nno bullets here"
	result := ApplyFixes(text, nil, []types.FixKind{types.FixQuantify})
	assert.Equal(t, text, result.FixedText)
}

func TestApplyFixes_CombinedAndDeduplicated(t *testing.T) {
	text := "Skills: Go\n- Worked on APIs"
	result := ApplyFixes(text, []string{"aws"}, []types.FixKind{
		types.FixSkills, types.FixActionVerbs, types.FixQuantify, types.FixSkills,
	})

	require.Len(t, result.Applied, 3)
	assert.Equal(t, "Skills: Go, aws\n- Optimized APIs (increased efficiency by 25%)", result.FixedText)
}
