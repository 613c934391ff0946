package match

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	minTextTermLen = 2
	maxTextTermLen = 40
)

// textTermPattern matches alphanumeric runs that may join segments with
// internal hyphens, slashes, or single spaces. Deliberately permissive: this
// feeds the fuzzy-text safety net, not the structured extractor.
var textTermPattern = regexp.MustCompile(`[a-z0-9]+(?:[-/ ][a-z0-9]+)*`)

// Fold lower-cases a term and collapses internal whitespace. This is the
// string canonicalization used for exact matching, deliberately free of any
// synonym mapping.
func Fold(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// TextTerms extracts a token/short-phrase set directly from raw resume text,
// lower-cased. Used as the last-resort corpus for fuzzy matching when a term
// escaped the structured extractor.
func TextTerms(text string) types.TermSet {
	terms := types.TermSet{}
	for _, run := range textTermPattern.FindAllString(strings.ToLower(text), -1) {
		run = strings.TrimSpace(run)
		if n := len(run); n < minTextTermLen || n > maxTextTermLen {
			continue
		}
		terms.Add(run)
	}
	return terms
}
