package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

func terms(items ...string) types.TermSet {
	return types.NewTermSet(items...)
}

func TestMatch_Exact(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	ok, method := m.Match("sql", terms("sql", "python"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, method)
}

func TestMatch_ExactFoldsCaseAndWhitespace(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	ok, method := m.Match("  REST   API ", terms("rest api"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, method)
}

func TestMatch_SynonymViaNormalize(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	// JD says "quality assurance", resume holds the canonical "qa".
	ok, method := m.Match("quality assurance", terms("qa"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodSynonym, method)
}

func TestMatch_SynonymViaExpand(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	// JD uses the canonical form, resume holds a variant.
	ok, method := m.Match("qa", terms("quality assurance"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodSynonym, method)
}

func TestMatch_LearnedSynonym(t *testing.T) {
	syns := synonyms.NewMap(nil)
	require.NoError(t, syns.Learn("kobo toolbox", "commcare"))
	m := NewMatcher(syns)

	ok, method := m.Match("kobo toolbox", terms("commcare"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodSynonym, method)
}

func TestMatch_FuzzyAgainstTerms(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	// The JD term is embedded in a longer extracted phrase; partial ratio
	// scores the aligned window, so this clears any threshold up to 100.
	ok, method := m.Match("postgresql", terms("postgresql database"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodFuzzyTerms, method)
}

func TestMatch_FuzzyAgainstText(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	textTerms := TextTerms("Tools: Selenium, Cypress. Built regression coverage.")
	ok, method := m.Match("selenium", terms("python"), textTerms, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodFuzzyText, method)
}

func TestMatch_None(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	ok, method := m.Match("rust", terms("python", "sql"), terms(), 88)
	assert.False(t, ok)
	assert.Equal(t, types.MethodNone, method)
}

func TestMatch_EmptyTerm(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	ok, method := m.Match("   ", terms("sql"), terms(), 88)
	assert.False(t, ok)
	assert.Equal(t, types.MethodNone, method)
}

func TestMatch_Thresholdabove100DisablesFuzzy(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	ok, method := m.Match("postgresql", terms("postgresql database"), nil, 101)
	assert.False(t, ok)
	assert.Equal(t, types.MethodNone, method)
}

func TestMatch_ThresholdMonotonic(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))
	resume := terms("postgres databases", "automated test suites")

	matchedBelow := true
	for threshold := 0; threshold <= 100; threshold++ {
		ok, _ := m.Match("postgresql", resume, nil, threshold)
		if !matchedBelow {
			assert.False(t, ok, "match reappeared at stricter threshold %d", threshold)
		}
		matchedBelow = ok
	}
}

func TestMatch_PrecedenceExactBeatsSynonym(t *testing.T) {
	m := NewMatcher(synonyms.NewMap(nil))

	// Both the folded term and a synonym are present; exact wins.
	ok, method := m.Match("qa", terms("qa", "quality assurance"), nil, 88)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, method)
}
