// Package engine is the single entry point to resume analysis. An Engine is
// built once at startup, validates every static table, and is then shared
// read-only by any number of goroutines.
package engine

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/compliance"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/rewriting"
	"github.com/jonathan/resume-matcher/internal/style"
	"github.com/jonathan/resume-matcher/internal/suggestions"
	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

// TableError reports a malformed static configuration table.
type TableError struct {
	Table   string
	Message string
	Cause   error
}

func (e *TableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s table: %s: %v", e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s table: %s", e.Table, e.Message)
}

func (e *TableError) Unwrap() error {
	return e.Cause
}

// Engine runs the analysis operations. All fields are read-only after New.
type Engine struct {
	extractor  keywords.Extractor
	resolver   *synonyms.Resolver
	scorer     *matching.Scorer
	compliance compliance.Analyzer
	style      style.Analyzer
}

type options struct {
	extractor keywords.Extractor
	synonyms  map[string][]string
}

// Option configures New.
type Option func(*options)

// WithExtractor replaces the default heuristic keyword extractor.
func WithExtractor(x keywords.Extractor) Option {
	return func(o *options) {
		if x != nil {
			o.extractor = x
		}
	}
}

// WithSynonymClasses adds classes to the default synonym table. A class with a
// default canonical name extends that class.
func WithSynonymClasses(extra map[string][]string) Option {
	return func(o *options) {
		o.synonyms = synonyms.Merge(o.synonyms, extra)
	}
}

// New validates the static tables and returns a ready Engine.
func New(opts ...Option) (*Engine, error) {
	o := options{
		extractor: keywords.Heuristic{},
		synonyms:  synonyms.Merge(synonyms.DefaultClasses, nil),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := keywords.Validate(); err != nil {
		return nil, &TableError{Table: "keyword catalog", Message: "validation failed", Cause: err}
	}
	if err := compliance.Validate(); err != nil {
		return nil, &TableError{Table: "compliance rule", Message: "validation failed", Cause: err}
	}
	if err := style.Validate(); err != nil {
		return nil, &TableError{Table: "style", Message: "validation failed", Cause: err}
	}
	resolver, err := synonyms.NewResolver(o.synonyms)
	if err != nil {
		return nil, &TableError{Table: "synonym", Message: "validation failed", Cause: err}
	}

	return &Engine{
		extractor: o.extractor,
		resolver:  resolver,
		scorer:    matching.NewScorer(o.extractor, resolver),
	}, nil
}

// MustNew is New for process startup; it panics on a malformed table.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// ExtractKeywords returns the candidate concept terms of text.
func (e *Engine) ExtractKeywords(text string) types.KeywordSet {
	return e.extractor.Extract(text)
}

// MatchResumeToJob scores resumeText against jobText.
func (e *Engine) MatchResumeToJob(resumeText, jobText string) types.MatchResult {
	return e.scorer.Match(resumeText, jobText)
}

// AnalyzeCompliance audits text for ATS parsing hazards.
func (e *Engine) AnalyzeCompliance(text string) types.ComplianceReport {
	return e.compliance.Analyze(text)
}

// AnalyzeStyle audits the wording of text.
func (e *Engine) AnalyzeStyle(text string) types.StyleReport {
	return e.style.Analyze(text)
}

// GenerateSuggestions prioritizes findings into at most ten suggestions.
func (e *Engine) GenerateSuggestions(text string, missing []string, complianceIssues, styleIssues []types.Issue) []types.Suggestion {
	return suggestions.Generate(text, missing, complianceIssues, styleIssues)
}

// Optimize returns the full optimization report.
func (e *Engine) Optimize(text string, missing []string, complianceIssues, styleIssues []types.Issue) types.OptimizationReport {
	return suggestions.Optimize(text, missing, complianceIssues, styleIssues)
}

// ParseResume extracts structured sections from text.
func (e *Engine) ParseResume(text string) types.ParsedResume {
	return parsing.ParseResume(text)
}

// AutoFix applies the selected fixes. Skills come from the technical terms of
// jobText that the resume is missing.
func (e *Engine) AutoFix(text, jobText string, fixes []types.FixKind) types.FixResult {
	var skills []string
	if jobText != "" {
		for _, kw := range e.scorer.Match(text, jobText).Missing {
			if keywords.IsTechnical(kw) {
				skills = append(skills, kw)
			}
		}
	}
	return rewriting.ApplyFixes(text, skills, fixes)
}

// Synonyms returns the resolver the engine matches with.
func (e *Engine) Synonyms() *synonyms.Resolver {
	return e.resolver
}
