package suggestions

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/style"
	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	maxHeaderSuggestions = 5
	maxPlacedKeywords    = 10
	maxFormattingIssues  = 5
	maxHeaderWords       = 4
	maxHeaderLen         = 50
)

// headerRenames maps non-standard header vocabulary to the ATS-friendly name.
// Entries are checked in order and the first match wins.
var headerRenames = []struct {
	from string
	to   string
}{
	{"about me", "Summary"},
	{"profile", "Summary"},
	{"career summary", "Professional Summary"},
	{"work history", "Work Experience"},
	{"employment history", "Work Experience"},
	{"professional experience", "Work Experience"},
	{"technical skills", "Skills"},
	{"core competencies", "Skills"},
	{"expertise", "Skills"},
	{"academic background", "Education"},
	{"qualifications", "Education"},
}

var (
	contentMetric = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(million|billion|thousand)`)
	strongVerbs   = []string{"achieved", "improved", "developed", "led", "created", "implemented"}
)

// Optimize builds the full optimization report for a resume.
func Optimize(text string, missing []string, complianceIssues, styleIssues []types.Issue) types.OptimizationReport {
	text = textutil.Sanitize(text)

	var fixes []types.Suggestion
	for _, s := range Generate(text, missing, complianceIssues, styleIssues) {
		if s.Category != CategoryImpact {
			fixes = append(fixes, s)
		}
	}
	if fixes == nil {
		fixes = []types.Suggestion{}
	}

	return types.OptimizationReport{
		PriorityFixes:    fixes,
		SectionHeaders:   SectionHeaders(text),
		KeywordPlacement: KeywordPlacement(text, missing),
		Formatting:       Formatting(complianceIssues),
		Content:          Content(text, missing),
		ImpactStatements: ImpactStatements(missing),
	}
}

// SectionHeaders proposes standard names for up to five recognizable but
// non-standard headers.
func SectionHeaders(text string) []types.HeaderSuggestion {
	out := []types.HeaderSuggestion{}
	for _, line := range textutil.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) >= maxHeaderLen || len(strings.Fields(line)) > maxHeaderWords {
			continue
		}
		lower := strings.ToLower(line)
		for _, r := range headerRenames {
			if strings.Contains(lower, r.from) && lower != strings.ToLower(r.to) {
				out = append(out, types.HeaderSuggestion{
					Current:   line,
					Suggested: r.to,
					Reason:    "ATS-friendly standard section header",
				})
				break
			}
		}
		if len(out) == maxHeaderSuggestions {
			break
		}
	}
	return out
}

// KeywordPlacement suggests where each of the first ten missing keywords could
// go, limited to sections the resume already has.
func KeywordPlacement(text string, missing []string) []types.KeywordPlacement {
	sections := IdentifySections(text)
	out := []types.KeywordPlacement{}

	for _, kw := range head(missing, maxPlacedKeywords) {
		var placements []types.Placement
		if sections.Skills {
			placements = append(placements, types.Placement{
				Section:    "Skills",
				Suggestion: fmt.Sprintf("Add %q to your technical skills list", kw),
				Example:    "• " + kw,
			})
		}
		if sections.Experience {
			placements = append(placements, types.Placement{
				Section:    "Work Experience",
				Suggestion: fmt.Sprintf("Incorporate %q into a bullet point", kw),
				Example:    fmt.Sprintf("• Utilized %s to [specific achievement]", kw),
			})
		}
		if sections.Summary {
			placements = append(placements, types.Placement{
				Section:    "Summary",
				Suggestion: fmt.Sprintf("Mention %q in your professional summary", kw),
				Example:    fmt.Sprintf("Experienced in %s with proven track record", kw),
			})
		}
		if len(placements) > 0 {
			out = append(out, types.KeywordPlacement{Keyword: kw, Placements: placements})
		}
	}
	return out
}

// Formatting converts the first five compliance issues into formatting fixes.
// Only table, header and symbol issues have a formatting remedy.
func Formatting(compliance []types.Issue) []types.FormattingFix {
	out := []types.FormattingFix{}
	if len(compliance) > maxFormattingIssues {
		compliance = compliance[:maxFormattingIssues]
	}
	for _, issue := range compliance {
		switch issue.Kind {
		case types.KindTables:
			out = append(out, types.FormattingFix{
				Issue:    "Tables detected",
				Fix:      "Convert tables to simple text format with bullet points",
				Priority: types.SeverityHigh,
			})
		case types.KindHeaders:
			out = append(out, types.FormattingFix{
				Issue:    "Non-standard section headers",
				Fix:      "Use standard headers: Summary, Work Experience, Education, Skills",
				Priority: types.SeverityHigh,
			})
		case types.KindSpecialChars:
			out = append(out, types.FormattingFix{
				Issue:    "Special characters detected",
				Fix:      "Replace decorative symbols with simple bullet points (•)",
				Priority: types.SeverityMedium,
			})
		}
	}
	return out
}

// Content checks for metrics, strong verbs and missing skills.
func Content(text string, missing []string) []types.ContentSuggestion {
	out := []types.ContentSuggestion{}

	if !contentMetric.MatchString(text) {
		out = append(out, types.ContentSuggestion{
			Area:       "Quantifiable Achievements",
			Suggestion: "Add measurable results and metrics to your bullet points",
			Examples:   []string{"Increased revenue by 25%", "Reduced load time by 40%", "Managed team of 5 developers"},
		})
	}

	if !style.HasActionVerb(text, strongVerbs...) {
		out = append(out, types.ContentSuggestion{
			Area:       "Action Verbs",
			Suggestion: "Start bullet points with strong action verbs",
			Examples:   []string{"Developed", "Implemented", "Led", "Achieved", "Optimized"},
		})
	}

	if len(missing) > 0 {
		out = append(out, types.ContentSuggestion{
			Area:       "Technical Skills",
			Suggestion: "Add relevant technical skills from job description",
			Examples:   append([]string(nil), head(missing, keywordsInFix)...),
		})
	}
	return out
}
