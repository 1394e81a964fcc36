package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Overall score weights.
const (
	MatchShare      = 0.6
	ComplianceShare = 0.4
)

// Analyze runs matching, compliance and style concurrently, then derives the
// suggestions and optimization report from their results. It fails only when
// ctx is already done.
func (e *Engine) Analyze(ctx context.Context, resumeText, jobText string) (*types.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		match  types.MatchResult
		audit  types.ComplianceReport
		styled types.StyleReport
	)
	var g errgroup.Group
	g.Go(func() error {
		match = e.MatchResumeToJob(resumeText, jobText)
		return nil
	})
	g.Go(func() error {
		audit = e.AnalyzeCompliance(resumeText)
		return nil
	})
	g.Go(func() error {
		styled = e.AnalyzeStyle(resumeText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	suggested := e.GenerateSuggestions(resumeText, match.Missing, audit.Issues, styled.Issues)

	return &types.AnalysisReport{
		OverallScore: OverallScore(match.Score, audit.Score),
		Match:        match,
		Compliance:   audit,
		Style:        styled,
		Suggestions:  suggested,
		Optimization: e.Optimize(resumeText, match.Missing, audit.Issues, styled.Issues),
		SoftSkills:   SoftSkills(resumeText, jobText),
		CanAutoFix:   len(suggested) > 0,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// OverallScore blends the match and compliance scores, rounded to one decimal.
func OverallScore(match, compliance float64) float64 {
	return textutil.RoundTo(MatchShare*match+ComplianceShare*compliance, 1)
}

// SoftSkills lists the soft skills jobText asks for and whether resumeText mentions them.
func SoftSkills(resumeText, jobText string) []types.SoftSkillMatch {
	out := []types.SoftSkillMatch{}
	wanted := keywords.SoftSkills(jobText)
	if len(wanted) == 0 {
		return out
	}
	have := make(map[string]bool)
	for _, s := range keywords.SoftSkills(resumeText) {
		have[s] = true
	}
	for _, s := range wanted {
		out = append(out, types.SoftSkillMatch{Skill: s, Present: have[s]})
	}
	return out
}
