package keywords

import (
	"fmt"
	"regexp"
	"strings"
)

// catalogTerm is one technology or phrase pattern. Patterns carry no \b anchors;
// word boundaries are checked around each match so that names ending in symbols
// (C++, C#) are found the same way as plain words.
type catalogTerm struct {
	name    string
	pattern *regexp.Regexp
}

func term(expr string) catalogTerm {
	return catalogTerm{name: expr, pattern: regexp.MustCompile(`(?i)` + expr)}
}

// techCatalog lists single-token technology names: languages, frameworks,
// databases, cloud and devops tools.
var techCatalog = []catalogTerm{
	// languages and frontend frameworks
	term(`react`), term(`angular`), term(`vue`), term(`javascript`), term(`typescript`),
	term(`python`), term(`java`), term(`c\+\+`), term(`c#`), term(`ruby`),
	term(`go`), term(`rust`), term(`swift`), term(`kotlin`),

	// backend frameworks
	term(`node\.?js`), term(`django`), term(`flask`), term(`spring`),
	term(`express`), term(`fastapi`), term(`rails`),

	// databases
	term(`sql`), term(`postgresql`), term(`mysql`), term(`mongodb`),
	term(`redis`), term(`cassandra`), term(`dynamodb`),

	// cloud and devops
	term(`aws`), term(`azure`), term(`gcp`), term(`docker`),
	term(`kubernetes`), term(`jenkins`), term(`ci/cd`),

	// tooling and process
	term(`git`), term(`github`), term(`gitlab`), term(`jira`), term(`agile`), term(`scrum`),
}

// phraseCatalog lists multi-word technical phrases.
var phraseCatalog = []catalogTerm{
	term(`machine learning`), term(`artificial intelligence`), term(`data science`), term(`web development`),
	term(`software engineer`), term(`full stack`), term(`front end`), term(`back end`), term(`devops`),
	term(`agile methodology`), term(`test driven`), term(`continuous integration`), term(`version control`),
}

// softSkillCatalog maps a soft-skill pattern to the name it is reported under.
var softSkillCatalog = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"leadership", regexp.MustCompile(`(?i)\bleadership\b`)},
	{"communication", regexp.MustCompile(`(?i)\bcommunication\b`)},
	{"teamwork", regexp.MustCompile(`(?i)\bteamwork\b`)},
	{"problem solving", regexp.MustCompile(`(?i)\bproblem[\s-]solving\b`)},
	{"analytical", regexp.MustCompile(`(?i)\banalytical\b`)},
	{"collaboration", regexp.MustCompile(`(?i)\bcollaboration\b`)},
	{"organization", regexp.MustCompile(`(?i)\borganization\b`)},
	{"time management", regexp.MustCompile(`(?i)\btime[\s-]management\b`)},
	{"adaptability", regexp.MustCompile(`(?i)\badaptability\b`)},
}

// stopWords are removed from every extracted set.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true, "this": true,
	"that": true, "will": true, "have": true, "are": true, "from": true,

	// capitalized sentence starters the frequency heuristic would otherwise pick up
	"our": true, "who": true, "your": true, "they": true, "their": true, "all": true,
	"any": true, "not": true, "but": true, "can": true, "has": true, "was": true,
	"were": true, "been": true, "also": true, "into": true, "its": true, "what": true,
}

// capitalizedToken matches capitalized, camel-case and all-caps tokens of 3+ characters.
var capitalizedToken = regexp.MustCompile(`\b[A-Z][A-Za-z]{2,}\b`)

// minFrequency is how often a capitalized token must repeat to count as a domain noun.
const minFrequency = 2

// Validate checks the static catalogs. It is called once at engine construction.
func Validate() error {
	if len(techCatalog) == 0 {
		return fmt.Errorf("tech catalog is empty")
	}
	if len(phraseCatalog) == 0 {
		return fmt.Errorf("phrase catalog is empty")
	}
	for _, c := range [][]catalogTerm{techCatalog, phraseCatalog} {
		seen := make(map[string]bool, len(c))
		for _, t := range c {
			if t.name == "" || t.pattern == nil {
				return fmt.Errorf("catalog contains an empty pattern")
			}
			if seen[t.name] {
				return fmt.Errorf("catalog pattern %q is listed twice", t.name)
			}
			seen[t.name] = true
		}
	}
	for w := range stopWords {
		if w != strings.ToLower(w) || strings.TrimSpace(w) == "" {
			return fmt.Errorf("stop word %q must be lowercase and non-empty", w)
		}
	}
	return nil
}
