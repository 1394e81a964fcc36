// Package types provides the plain, serializable records produced by the analysis engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
)

// KeywordSet is a set of normalized lowercase terms. Order is not part of its contract.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from the given terms.
func NewKeywordSet(terms ...string) KeywordSet {
	set := make(KeywordSet, len(terms))
	for _, t := range terms {
		set.Add(t)
	}
	return set
}

// Add inserts a term. Empty terms are ignored.
func (s KeywordSet) Add(term string) {
	if term == "" {
		return
	}
	s[term] = struct{}{}
}

// Has reports whether the term is a member.
func (s KeywordSet) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Remove deletes a term.
func (s KeywordSet) Remove(term string) {
	delete(s, term)
}

// Len returns the number of members.
func (s KeywordSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding the members of both sets.
func (s KeywordSet) Union(other KeywordSet) KeywordSet {
	out := make(KeywordSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// MarshalJSON encodes the set as a sorted array so output is stable.
func (s KeywordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of terms.
func (s *KeywordSet) UnmarshalJSON(data []byte) error {
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return err
	}
	*s = NewKeywordSet(terms...)
	return nil
}

// TermWeights maps a keyword to its importance within one document.
type TermWeights map[string]float64

// Total returns the sum of all weights.
func (w TermWeights) Total() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}
