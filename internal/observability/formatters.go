// Package observability provides logging setup and human-readable report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items with a "... and N more" trailer.
func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func writeIssues(sb *strings.Builder, issues []types.Issue) {
	if len(issues) == 0 {
		sb.WriteString("No issues found\n")
		return
	}
	count := min(len(issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := issues[i]
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(string(issue.Severity)), issue.Message))
	}
	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(issues)-maxItemsToShow))
	}
}

// PrintKeywords outputs an extracted keyword set in lexical order.
func (p *Printer) PrintKeywords(set types.KeywordSet) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n", set.Len()))
	if set.Len() > 0 {
		sb.WriteString("\n")
		for _, kw := range set.Sorted() {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
	}
	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the match score with the top matched and missing keywords.
func (p *Printer) PrintMatch(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Matched:  %d of %d job keywords\n", result.MatchedCount, result.TotalJobKeywords))
	sb.WriteString("\n")
	writeList(&sb, "Matched", result.Matched, maxItemsToShow)
	writeList(&sb, "Missing", result.Missing, maxItemsToShow)

	p.printBox("KEYWORD MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompliance outputs the ATS score, rating and issues.
func (p *Printer) PrintCompliance(report *types.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.0f (%s)\n", report.Score, report.Rating))
	sb.WriteString(fmt.Sprintf("Words:    %d   Metrics: %d\n", report.WordCount, report.MetricCount))
	sb.WriteString("\n")
	writeIssues(&sb, report.Issues)

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStyle outputs the style score, counters, issues and general suggestions.
func (p *Printer) PrintStyle(report *types.StyleReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:        %.0f\n", report.Score))
	sb.WriteString(fmt.Sprintf("Readability:  %.0f\n", report.Readability))
	sb.WriteString(fmt.Sprintf("Action verbs: %d   Sentences: %d\n", report.ActionVerbCount, report.SentenceCount))
	sb.WriteString("\n")
	writeIssues(&sb, report.Issues)
	if len(report.Suggestions) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Tips", report.Suggestions, maxItemsToShow)
	}

	p.printBox("WRITING STYLE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs prioritized suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	var sb strings.Builder
	if len(suggestions) == 0 {
		sb.WriteString("No suggestions\n")
	}
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("P%d  %s\n", s.Priority, s.Category))
		sb.WriteString(fmt.Sprintf("    %s\n", s.Issue))
		sb.WriteString(fmt.Sprintf("    → %s\n", s.Fix))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs every section of a composite report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAnalysis(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.1f\n", report.OverallScore))
	if report.ID != "" {
		sb.WriteString(fmt.Sprintf("Analysis ID:   %s\n", report.ID))
	}
	if len(report.SoftSkills) > 0 {
		sb.WriteString("\nSoft skills:\n")
		for _, s := range report.SoftSkills {
			mark := "✗"
			if s.Present {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, s.Skill))
		}
	}
	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	fmt.Fprintln(p.out)
	p.PrintMatch(&report.Match)
	fmt.Fprintln(p.out)
	p.PrintCompliance(&report.Compliance)
	fmt.Fprintln(p.out)
	p.PrintStyle(&report.Style)
	fmt.Fprintln(p.out)
	p.PrintSuggestions(report.Suggestions)
}

// PrintParsedResume outputs the structure found by the resume parser.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder
	if parsed.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", parsed.Contact.Email))
	}
	if parsed.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", parsed.Contact.Phone))
	}
	sb.WriteString(fmt.Sprintf("Sections: %d   Experience entries: %d   Education entries: %d\n",
		len(parsed.Sections), len(parsed.Experience), len(parsed.Education)))
	sb.WriteString("\n")
	writeList(&sb, "Skills", parsed.Skills, maxItemsToShow)

	titles := make([]string, 0, len(parsed.Experience))
	for _, e := range parsed.Experience {
		titles = append(titles, e.Title)
	}
	writeList(&sb, "Experience", titles, 3)

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}
