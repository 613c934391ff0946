// Package extract turns an annotated document into the canonical term set
// used for matching: single-word lemmas, acronyms, code-like tokens,
// allow-listed domain verbs, and short noun phrases, all passed through the
// synonym normalizer.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/annotate"
	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	minWordLen       = 3 // single-word terms must be longer than 2 runes
	maxPhraseContent = 4 // noun phrases keep at most 4 content words
)

var (
	acronymPattern = regexp.MustCompile(`^[A-Z]{2,6}$`)
	codePattern    = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-_/][A-Za-z0-9]+)+$`)
)

// excludedEntities lists the entity classes whose tokens never become terms
// regardless of part of speech.
var excludedEntities = map[string]bool{
	annotate.EntityDate:     true,
	annotate.EntityTime:     true,
	annotate.EntityMoney:    true,
	annotate.EntityOrdinal:  true,
	annotate.EntityCardinal: true,
}

// domainVerbs is the fixed allow-list of verbs that describe skills rather
// than filler. Each contributes its lemma and an "-ing" nominalization.
var domainVerbs = map[string]bool{
	"test":         true,
	"troubleshoot": true,
	"debug":        true,
	"integrate":    true,
	"document":     true,
	"support":      true,
	"analyze":      true,
	"automate":     true,
	"deploy":       true,
	"monitor":      true,
	"migrate":      true,
	"configure":    true,
}

// Extractor builds term sets from raw text using an annotator and the shared
// synonym map.
type Extractor struct {
	annotator   annotate.Annotator
	syns        *synonyms.Map
	stopPhrases []*regexp.Regexp
}

// New creates an Extractor. stopPhrases are scrubbed from the raw text before
// annotation, matched case-insensitively; pass nil when none are configured.
func New(annotator annotate.Annotator, syns *synonyms.Map, stopPhrases []string) *Extractor {
	e := &Extractor{
		annotator: annotator,
		syns:      syns,
	}
	for _, phrase := range stopPhrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		e.stopPhrases = append(e.stopPhrases, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)))
	}
	return e
}

// Terms extracts the canonical term set for one document.
func (e *Extractor) Terms(text string) (types.TermSet, error) {
	text = e.scrubStopPhrases(text)

	doc, err := e.annotator.Annotate(text)
	if err != nil {
		return nil, err
	}

	collected := types.TermSet{}

	for _, tok := range doc.Tokens {
		if tok.Punct {
			continue
		}

		// Acronyms and code-like tokens bypass stopword and POS filtering.
		if acronymPattern.MatchString(tok.Surface) {
			collected.Add(strings.ToLower(tok.Surface))
			continue
		}
		if codePattern.MatchString(tok.Surface) {
			collected.Add(tok.Surface)
			continue
		}

		if tok.POS == annotate.POSVerb {
			if domainVerbs[tok.Lemma] {
				collected.Add(tok.Lemma)
				collected.Add(gerund(tok.Lemma))
			}
			continue
		}

		if tok.POS != annotate.POSNoun && tok.POS != annotate.POSProperNoun {
			continue
		}
		if tok.Stop || excludedEntities[tok.Entity] {
			continue
		}
		lemma := strings.ToLower(tok.Lemma)
		if len([]rune(lemma)) < minWordLen {
			continue
		}
		collected.Add(e.syns.Normalize(lemma))
	}

	for _, span := range doc.Phrases {
		if term := e.phraseTerm(doc.Tokens, span); term != "" {
			collected.Add(term)
		}
	}

	// Final pass: collapse whitespace and re-normalize so no two terms in
	// the output are synonym-equivalent under the current map.
	out := types.TermSet{}
	for term := range collected {
		canonical := e.syns.Normalize(collapseSpaces(term))
		out.Add(canonical)
	}
	return out, nil
}

// phraseTerm builds a term from a noun-phrase span: edge stopwords stripped,
// remaining content words lemmatized, lower-cased, and joined with single
// spaces. Returns "" when nothing survives filtering or the phrase exceeds
// the content-word budget.
func (e *Extractor) phraseTerm(tokens []annotate.Token, span []int) string {
	start, end := 0, len(span)
	for start < end && tokens[span[start]].Stop {
		start++
	}
	for end > start && tokens[span[end-1]].Stop {
		end--
	}

	words := make([]string, 0, end-start)
	for _, idx := range span[start:end] {
		tok := tokens[idx]
		if tok.Stop || tok.Punct || excludedEntities[tok.Entity] {
			continue
		}
		if w := strings.ToLower(tok.Lemma); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 || len(words) > maxPhraseContent {
		return ""
	}
	return e.syns.Normalize(strings.Join(words, " "))
}

// scrubStopPhrases blanks configured boilerplate phrases out of the raw text
// before annotation. Matches are replaced with spaces so the surrounding
// text, including its casing, is untouched.
func (e *Extractor) scrubStopPhrases(text string) string {
	for _, re := range e.stopPhrases {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return strings.Repeat(" ", len(m))
		})
	}
	return text
}

// gerund derives the "-ing" nominalization of a verb lemma, dropping a
// trailing silent e (integrate -> integrating).
func gerund(verb string) string {
	return strings.TrimSuffix(verb, "e") + "ing"
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
