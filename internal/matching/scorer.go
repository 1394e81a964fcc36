// Package matching scores a resume against a job description.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/weighting"
)

const (
	// CoverageWeight is the share of the score driven by raw keyword coverage.
	CoverageWeight = 0.7
	// ImportanceWeight is the share driven by the job's term weights.
	ImportanceWeight = 0.3

	// MaxMatched caps the matched list in a result.
	MaxMatched = 20
	// MaxMissing caps the missing list in a result.
	MaxMissing = 15
	// MaxDensityTerms caps the density map.
	MaxDensityTerms = 10
	// MaxContexts caps the number of job-description contexts returned for missing keywords.
	MaxContexts = 10

	contextChars = 100
)

// Scorer compares resumes against job descriptions. It holds only read-only
// collaborators and may be shared across goroutines.
type Scorer struct {
	extractor keywords.Extractor
	resolver  *synonyms.Resolver
}

// NewScorer builds a Scorer. A nil extractor falls back to keywords.Heuristic.
func NewScorer(extractor keywords.Extractor, resolver *synonyms.Resolver) *Scorer {
	if extractor == nil {
		extractor = keywords.Heuristic{}
	}
	if resolver == nil {
		resolver = synonyms.MustDefault()
	}
	return &Scorer{extractor: extractor, resolver: resolver}
}

// Match extracts keywords from both texts and classifies every job keyword as
// matched or missing. A job text without keywords yields a zero score and empty lists.
func (s *Scorer) Match(resumeText, jobText string) types.MatchResult {
	resumeText = textutil.Sanitize(resumeText)
	jobText = textutil.Sanitize(jobText)

	result := types.MatchResult{
		Matched: []string{},
		Missing: []string{},
		Density: map[string]float64{},
	}

	jobKeywords := s.extractor.Extract(jobText)
	if jobKeywords.Len() == 0 {
		return result
	}
	resumeKeywords := s.extractor.Extract(resumeText)
	jobWeights := weighting.Weigh(jobText, jobKeywords)
	resumeLower := strings.ToLower(resumeText)

	var matched, missing []string
	for kw := range jobKeywords {
		if s.isMatched(kw, resumeKeywords, resumeLower) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	byWeight(matched, jobWeights)
	byWeight(missing, jobWeights)

	result.Score = Score(matched, jobKeywords, jobWeights)
	result.TotalJobKeywords = jobKeywords.Len()
	result.MatchedCount = len(matched)
	result.Matched = capList(matched, MaxMatched)
	result.Missing = capList(missing, MaxMissing)
	result.Density = Density(resumeLower, capList(matched, MaxDensityTerms))
	result.Contexts = Contexts(jobText, capList(missing, MaxContexts))
	result.JobWeights = jobWeights

	return result
}

// isMatched applies the three match rules in order: keyword membership,
// verbatim occurrence in the resume, then synonym presence.
func (s *Scorer) isMatched(kw string, resumeKeywords types.KeywordSet, resumeLower string) bool {
	if resumeKeywords.Has(kw) {
		return true
	}
	if strings.Contains(resumeLower, kw) {
		return true
	}
	return s.resolver.PresentLower(resumeLower, kw)
}

// Score combines coverage and importance: 0.7 × base + 0.3 × weighted, clamped
// to [0,100] and rounded to one decimal. Either part is 0 when its denominator is 0.
func Score(matched []string, jobKeywords types.KeywordSet, weights types.TermWeights) float64 {
	if jobKeywords.Len() == 0 {
		return 0
	}

	base := 100 * float64(len(matched)) / float64(jobKeywords.Len())

	var weighted float64
	if total := weights.Total(); total > 0 {
		var matchedWeight float64
		for _, kw := range matched {
			matchedWeight += weights[kw]
		}
		weighted = 100 * matchedWeight / total
	}

	score := CoverageWeight*base + ImportanceWeight*weighted
	return textutil.RoundTo(clamp(score, 0, 100), 1)
}

// Density returns the percentage of resume words taken by each term.
func Density(resumeLower string, terms []string) map[string]float64 {
	density := make(map[string]float64, len(terms))
	total := textutil.WordCount(resumeLower)
	for _, t := range terms {
		if total == 0 {
			density[t] = 0
			continue
		}
		count := textutil.CountFold(resumeLower, t)
		density[t] = textutil.RoundTo(100*float64(count)/float64(total), 2)
	}
	return density
}

// Contexts finds the job sentence that mentions each missing keyword so the
// suggestion can point at what the posting actually asks for.
func Contexts(jobText string, missing []string) []types.KeywordContext {
	if len(missing) == 0 {
		return nil
	}
	sentences := textutil.Sentences(jobText)
	out := make([]types.KeywordContext, 0, len(missing))

	for _, kw := range missing {
		kc := types.KeywordContext{
			Keyword:    kw,
			Suggestion: fmt.Sprintf("Consider adding %q to your resume", kw),
		}
		for _, sentence := range sentences {
			if strings.Contains(strings.ToLower(sentence), kw) {
				kc.Suggestion = fmt.Sprintf("Add %q to your skills or experience section", kw)
				kc.Context = textutil.Truncate(sentence, contextChars)
				break
			}
		}
		out = append(out, kc)
	}
	return out
}

// byWeight sorts terms by descending weight, breaking ties alphabetically.
func byWeight(terms []string, weights types.TermWeights) {
	sort.Slice(terms, func(i, j int) bool {
		wi, wj := weights[terms[i]], weights[terms[j]]
		if wi != wj {
			return wi > wj
		}
		return terms[i] < terms[j]
	})
}

func capList(terms []string, n int) []string {
	if len(terms) > n {
		terms = terms[:n]
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
