package types

import "sort"

// TermSet is a set of unique canonical terms extracted from one document.
// Terms are plain strings; equality is exact string equality after
// canonicalization. Insertion order is irrelevant.
type TermSet map[string]struct{}

// NewTermSet builds a TermSet from the given terms, skipping empty strings.
func NewTermSet(terms ...string) TermSet {
	s := make(TermSet, len(terms))
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Add inserts a term. Empty strings are dropped silently; a TermSet never
// contains the empty string.
func (s TermSet) Add(term string) {
	if term == "" {
		return
	}
	s[term] = struct{}{}
}

// Contains reports whether the term is present.
func (s TermSet) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Len returns the number of terms in the set.
func (s TermSet) Len() int {
	return len(s)
}

// Sorted returns the terms in lexicographic order for reproducible iteration.
func (s TermSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
