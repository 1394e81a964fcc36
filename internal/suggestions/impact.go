package suggestions

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxImpactStatements caps how many keywords get an example statement.
const MaxImpactStatements = 5

// ImpactTip labels every impact statement as a generic example.
const ImpactTip = "Customize this example with your actual achievements"

var impactTemplates = []string{
	"Developed {keyword}-based solutions that improved {metric} by {percentage}%",
	"Implemented {keyword} to optimize {area}, resulting in {benefit}",
	"Led team using {keyword} to deliver {outcome} ahead of schedule",
	"Architected scalable {keyword} system supporting {number} users",
	"Utilized {keyword} to reduce {metric} by {percentage}%",
}

var placeholders = strings.NewReplacer(
	"{metric}", "performance",
	"{percentage}", "30",
	"{area}", "workflow",
	"{benefit}", "faster deployment cycles",
	"{outcome}", "production release",
	"{number}", "10,000+",
)

// ImpactStatements fills a template for each of the first five keywords. The
// i-th keyword uses template i mod 5, so output depends only on the input.
func ImpactStatements(keywords []string) []types.ImpactStatement {
	keywords = head(keywords, MaxImpactStatements)
	out := make([]types.ImpactStatement, 0, len(keywords))
	for i, kw := range keywords {
		tmpl := impactTemplates[i%len(impactTemplates)]
		example := placeholders.Replace(strings.ReplaceAll(tmpl, "{keyword}", kw))
		out = append(out, types.ImpactStatement{Keyword: kw, Example: example, Tip: ImpactTip})
	}
	return out
}
