// Package parsing turns plain-text resumes into a structured view.
package parsing

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// sectionKeywords maps section names to the vocabulary that marks their header
// line. Order matters: the first section whose vocabulary matches wins.
var sectionKeywords = []struct {
	name     string
	keywords []string
}{
	{"contact", []string{"email", "phone", "address", "linkedin", "github"}},
	{"summary", []string{"summary", "objective", "profile", "about"}},
	{"experience", []string{"experience", "employment", "work history", "professional experience"}},
	{"education", []string{"education", "academic", "university", "college", "degree"}},
	{"skills", []string{"skills", "technical skills", "technologies", "competencies"}},
	{"certifications", []string{"certifications", "certificates", "licenses"}},
	{"projects", []string{"projects", "portfolio"}},
	{"achievements", []string{"achievements", "awards", "honors", "accomplishments"}},
}

var degreeKeywords = []string{"bachelor", "master", "phd", "b.s.", "m.s.", "b.a.", "m.a.", "mba", "associate"}

var parserVerbs = []string{
	"achieved", "improved", "trained", "managed", "created", "developed",
	"built", "led", "implemented", "increased", "decreased", "reduced",
	"launched", "established", "designed", "analyzed", "optimized",
	"coordinated", "executed", "generated", "delivered", "drove",
}

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	gitHubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	blankLine  = regexp.MustCompile(`\n\s*\n`)
	bulletItem = regexp.MustCompile(`(?m)^\s*[•\-\*]\s*(.+)`)
	bulletMark = regexp.MustCompile(`[•\-\*]`)
	leadBullet = regexp.MustCompile(`^[•\-\*]\s*`)
	skillSplit = regexp.MustCompile(`[,;\n]+`)
	yearToken  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(?:\d{4}|Present|Current)`),
		regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`),
	}

	percentPattern  = regexp.MustCompile(`\d+\.?\d*\s*%`)
	numberPattern   = regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(?:million|billion|thousand|K|M|B|users|customers|sales|revenue)\b`)
	currencyPattern = regexp.MustCompile(`\$\d+[,\d]*(?:\.\d{2})?[KMB]?`)
)

const (
	contactLines     = 10
	maxHeaderWords   = 5
	maxHeaderLen     = 50
	minExperienceLen = 20
	maxExperience    = 10
	minEducationLen  = 10
	maxSkills        = 50
	minSkillLen      = 3
	minCertLen       = 6
	maxCertLen       = 199
)

// ParseResume extracts contact details, sections and their entries, metrics and
// an action-verb count from text. It never fails; unrecognized text yields empty fields.
func ParseResume(text string) types.ParsedResume {
	text = strings.ReplaceAll(textutil.Sanitize(text), "\r\n", "\n")
	sections := Sections(text)

	return types.ParsedResume{
		Contact:        Contact(text),
		Sections:       sections,
		Experience:     experience(sections["experience"]),
		Education:      education(sections["education"]),
		Skills:         skills(sections["skills"]),
		Certifications: certifications(sections["certifications"]),
		Metrics:        Metrics(text),
		ActionVerbs:    CountVerbOccurrences(text),
	}
}

// Sections splits text at header lines and returns each section's body. A header
// is a line of at most five words and under 50 characters that contains section
// vocabulary. Sections with no body are omitted.
func Sections(text string) map[string]string {
	sections := make(map[string]string)
	current := ""
	var body []string

	flush := func() {
		if current != "" && len(body) > 0 {
			sections[current] = strings.Join(body, "\n")
		}
	}

	for _, line := range textutil.Lines(text) {
		if name := headerSection(line); name != "" {
			flush()
			current = name
			body = nil
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()
	return sections
}

func headerSection(line string) string {
	trimmed := strings.TrimSpace(line)
	if len(strings.Fields(line)) > maxHeaderWords || utf8.RuneCountInString(trimmed) >= maxHeaderLen {
		return ""
	}
	lower := strings.ToLower(trimmed)
	for _, s := range sectionKeywords {
		for _, kw := range s.keywords {
			if strings.Contains(lower, kw) {
				return s.name
			}
		}
	}
	return ""
}

// Contact looks for contact details in the first ten lines.
func Contact(text string) types.ContactInfo {
	lines := textutil.Lines(text)
	if len(lines) > contactLines {
		lines = lines[:contactLines]
	}
	top := strings.Join(lines, "\n")

	return types.ContactInfo{
		Email:    emailPattern.FindString(top),
		Phone:    phonePattern.FindString(top),
		LinkedIn: linkedInPattern.FindString(top),
		GitHub:   gitHubPattern.FindString(top),
	}
}

func experience(body string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if body == "" {
		return entries
	}
	for _, block := range blankLine.Split(body, -1) {
		block = strings.TrimSpace(block)
		if len(block) < minExperienceLen {
			continue
		}
		entry := types.ExperienceEntry{Title: firstLine(block)}
		for _, re := range datePatterns {
			if d := re.FindString(block); d != "" {
				entry.Dates = d
				break
			}
		}
		for _, m := range bulletItem.FindAllStringSubmatch(block, -1) {
			entry.Responsibilities = append(entry.Responsibilities, strings.TrimSpace(m[1]))
		}
		entries = append(entries, entry)
		if len(entries) == maxExperience {
			break
		}
	}
	return entries
}

func education(body string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if body == "" {
		return entries
	}
	for _, block := range blankLine.Split(body, -1) {
		block = strings.TrimSpace(block)
		if len(block) < minEducationLen {
			continue
		}
		entry := types.EducationEntry{Institution: firstLine(block)}
		lower := strings.ToLower(block)
		for _, kw := range degreeKeywords {
			if strings.Contains(lower, kw) {
				entry.Degree = kw
				break
			}
		}
		if years := yearToken.FindAllString(block, -1); len(years) > 0 {
			entry.Year = years[len(years)-1]
		}
		entries = append(entries, entry)
	}
	return entries
}

func skills(body string) []string {
	out := []string{}
	if body == "" {
		return out
	}
	for _, s := range skillSplit.Split(bulletMark.ReplaceAllString(body, ""), -1) {
		s = strings.TrimSpace(s)
		if len(s) < minSkillLen {
			continue
		}
		out = append(out, s)
		if len(out) == maxSkills {
			break
		}
	}
	return out
}

func certifications(body string) []string {
	out := []string{}
	if body == "" {
		return out
	}
	for _, line := range textutil.Lines(body) {
		line = strings.TrimSpace(line)
		if n := utf8.RuneCountInString(line); n < minCertLen || n > maxCertLen {
			continue
		}
		out = append(out, leadBullet.ReplaceAllString(line, ""))
	}
	return out
}

// Metrics collects distinct percentages, numbers with units, and currency amounts, sorted.
func Metrics(text string) types.ResumeMetrics {
	return types.ResumeMetrics{
		Percentages: distinct(percentPattern.FindAllString(text, -1)),
		Numbers:     distinct(numberPattern.FindAllString(text, -1)),
		Currencies:  distinct(currencyPattern.FindAllString(text, -1)),
	}
}

// CountVerbOccurrences counts every substring occurrence of the parser's action verbs.
func CountVerbOccurrences(text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, v := range parserVerbs {
		n += strings.Count(lower, v)
	}
	return n
}

func firstLine(block string) string {
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		return strings.TrimSpace(block[:i])
	}
	return block
}

func distinct(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := []string{}
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	sort.Strings(out)
	return out
}
