// Package weighting computes per-document term importance.
package weighting

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Importance multipliers by occurrence count.
const (
	// SweetSpotMultiplier applies to terms used deliberately but not spammed.
	SweetSpotMultiplier = 2.0
	// SingleMultiplier applies to terms that occur once.
	SingleMultiplier = 1.5
	// BaseMultiplier applies to everything else, including very frequent terms.
	BaseMultiplier = 1.0

	sweetSpotMin = 2
	sweetSpotMax = 5
)

// Multiplier returns the importance multiplier for a term seen count times.
func Multiplier(count int) float64 {
	switch {
	case count >= sweetSpotMin && count <= sweetSpotMax:
		return SweetSpotMultiplier
	case count == 1:
		return SingleMultiplier
	default:
		return BaseMultiplier
	}
}

// Weigh returns tf × multiplier for every member of keywords, where tf is the
// term's case-insensitive occurrence count divided by the document's word count.
// A document with no words yields zero weights.
func Weigh(text string, keywords types.KeywordSet) types.TermWeights {
	weights := make(types.TermWeights, keywords.Len())
	lower := strings.ToLower(textutil.Sanitize(text))
	total := textutil.WordCount(lower)

	for kw := range keywords {
		if total == 0 {
			weights[kw] = 0
			continue
		}
		count := textutil.CountFold(lower, kw)
		tf := float64(count) / float64(total)
		weights[kw] = tf * Multiplier(count)
	}
	return weights
}
