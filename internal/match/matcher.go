package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Matcher decides whether a single job-description term is satisfied by a
// resume. Strategies are tried in strict precedence order and short-circuit
// on the first success: exact, synonym, fuzzy against extracted terms, fuzzy
// against raw-text tokens.
type Matcher struct {
	syns *synonyms.Map
}

// NewMatcher creates a Matcher that consults the given synonym map.
func NewMatcher(syns *synonyms.Map) *Matcher {
	return &Matcher{syns: syns}
}

// Match evaluates one JD term against the resume's extracted terms and the
// token set pulled from its raw text (see TextTerms). threshold is the
// tier-specific minimum partial-ratio similarity (0-100) for fuzzy credit.
//
// Exact credit requires the term itself (case and whitespace folded) in the
// resume set; presence only through a synonym mapping is reported as a
// synonym match, so the audit trail shows which terms rely on the map.
func (m *Matcher) Match(jdTerm string, resumeTerms, textTerms types.TermSet, threshold int) (bool, types.MatchMethod) {
	key := Fold(jdTerm)
	if key == "" {
		return false, types.MethodNone
	}

	if resumeTerms.Contains(key) {
		return true, types.MethodExact
	}

	canonical := m.syns.Normalize(key)
	if canonical != key && resumeTerms.Contains(canonical) {
		return true, types.MethodSynonym
	}

	variants := m.syns.Expand(canonical)
	for _, v := range variants {
		if v == key {
			continue
		}
		if resumeTerms.Contains(v) {
			return true, types.MethodSynonym
		}
	}

	if fuzzyHit(variants, resumeTerms, threshold) {
		return true, types.MethodFuzzyTerms
	}
	if fuzzyHit(variants, textTerms, threshold) {
		return true, types.MethodFuzzyText
	}

	return false, types.MethodNone
}

// fuzzyHit reports whether any candidate reaches the threshold against any
// term in the corpus. Similarity is the asymmetric partial-match ratio: the
// shorter string scored against the best-aligned window of the longer, so a
// JD term embedded in a longer resume phrase still scores high.
func fuzzyHit(candidates []string, corpus types.TermSet, threshold int) bool {
	if threshold > 100 {
		return false
	}
	for _, c := range candidates {
		for term := range corpus {
			if fuzzy.PartialRatio(c, term) >= threshold {
				return true
			}
		}
	}
	return false
}
