// Package synonyms canonicalizes term variants into equivalence classes.
package synonyms

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultClasses maps each canonical concept to its surface variants.
var DefaultClasses = map[string][]string{
	"javascript": {"js", "javascript", "ecmascript"},
	"react":      {"react", "reactjs", "react.js"},
	"node":       {"node", "nodejs", "node.js"},
	"python":     {"python", "py"},
	"typescript": {"typescript", "ts"},
	"database":   {"database", "db", "sql", "nosql"},
	"api":        {"api", "rest", "restful", "graphql"},
	"frontend":   {"frontend", "front-end", "front end"},
	"backend":    {"backend", "back-end", "back end"},
	"fullstack":  {"fullstack", "full-stack", "full stack"},
}

// Resolver answers canonical-form and presence questions against a fixed set of classes.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	canonical map[string]string   // variant -> canonical
	variants  map[string][]string // canonical -> variants
}

// ClassError describes a malformed synonym table.
type ClassError struct {
	Class   string
	Variant string
	Message string
}

func (e *ClassError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("synonym class %q variant %q: %s", e.Class, e.Variant, e.Message)
	}
	return fmt.Sprintf("synonym class %q: %s", e.Class, e.Message)
}

// NewResolver validates classes and builds a Resolver. A canonical name is
// always a member of its own class, and a variant may belong to one class only.
func NewResolver(classes map[string][]string) (*Resolver, error) {
	r := &Resolver{
		canonical: make(map[string]string),
		variants:  make(map[string][]string, len(classes)),
	}

	// Sorted iteration keeps the reported error stable.
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == "" || name != strings.ToLower(strings.TrimSpace(name)) {
			return nil, &ClassError{Class: name, Message: "canonical name must be lowercase and trimmed"}
		}
		members := classes[name]
		if len(members) == 0 {
			return nil, &ClassError{Class: name, Message: "class has no variants"}
		}

		seenSelf := false
		list := make([]string, 0, len(members)+1)
		for _, v := range members {
			if v == "" || v != strings.ToLower(strings.TrimSpace(v)) {
				return nil, &ClassError{Class: name, Variant: v, Message: "variant must be lowercase and trimmed"}
			}
			if owner, ok := r.canonical[v]; ok && owner != name {
				return nil, &ClassError{Class: name, Variant: v, Message: fmt.Sprintf("already belongs to class %q", owner)}
			}
			if _, ok := r.canonical[v]; ok {
				continue
			}
			r.canonical[v] = name
			list = append(list, v)
			if v == name {
				seenSelf = true
			}
		}
		if !seenSelf {
			if owner, ok := r.canonical[name]; ok && owner != name {
				return nil, &ClassError{Class: name, Message: fmt.Sprintf("canonical name already belongs to class %q", owner)}
			}
			r.canonical[name] = name
			list = append(list, name)
		}
		r.variants[name] = list
	}

	return r, nil
}

// MustDefault returns a Resolver over DefaultClasses and panics if they are malformed.
func MustDefault() *Resolver {
	r, err := NewResolver(DefaultClasses)
	if err != nil {
		panic(err)
	}
	return r
}

// Merge returns the union of base and extra. Classes in extra with the same
// canonical name add variants to the base class.
func Merge(base, extra map[string][]string) map[string][]string {
	out := make(map[string][]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range extra {
		out[k] = append(out[k], v...)
	}
	return out
}

// Canonical returns the class name for term, or term itself (lowercased) when it has no class.
func (r *Resolver) Canonical(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if c, ok := r.canonical[t]; ok {
		return c
	}
	return t
}

// Variants returns the variants of term's class, or nil if term has no class.
func (r *Resolver) Variants(term string) []string {
	c, ok := r.canonical[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return nil
	}
	return r.variants[c]
}

// InClass reports whether term belongs to any class.
func (r *Resolver) InClass(term string) bool {
	_, ok := r.canonical[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Present reports whether any variant of term's class occurs in text.
// The check is a case-insensitive substring search, looser than keyword-set
// membership, so it tolerates extraction misses. Terms outside every class
// are never present by synonym.
func (r *Resolver) Present(text, term string) bool {
	return r.PresentLower(strings.ToLower(text), term)
}

// PresentLower is Present for text that is already lowercased.
func (r *Resolver) PresentLower(textLower, term string) bool {
	for _, v := range r.Variants(term) {
		if strings.Contains(textLower, v) {
			return true
		}
	}
	return false
}

// Classes returns the number of classes.
func (r *Resolver) Classes() int {
	return len(r.variants)
}
