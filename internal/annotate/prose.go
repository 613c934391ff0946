package annotate

import (
	"regexp"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// ProseAnnotator implements Annotator on top of the prose NLP library. Prose
// supplies tokenization and Penn Treebank POS tags; the adapter derives the
// coarse POS, a rule-based lemma, entity classes, stopword/punctuation flags,
// and noun-phrase spans.
type ProseAnnotator struct{}

// NewProseAnnotator returns a ready-to-use annotator. The prose model data is
// embedded in the library, so construction never fails.
func NewProseAnnotator() *ProseAnnotator {
	return &ProseAnnotator{}
}

// Annotate tokenizes and tags the text.
func (a *ProseAnnotator) Annotate(text string) (*Document, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, &AnnotationError{Message: "prose tokenization failed", Cause: err}
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	tags := make([]string, 0, len(proseTokens))

	for _, pt := range proseTokens {
		surface := pt.Text
		lower := strings.ToLower(surface)
		tok := Token{
			Surface: surface,
			Lemma:   Lemma(lower),
			POS:     coarsePOS(pt.Tag),
			Entity:  entityClass(surface, pt.Tag),
			Stop:    IsStopWord(lower),
			Punct:   isPunct(surface, pt.Tag),
		}
		tokens = append(tokens, tok)
		tags = append(tags, pt.Tag)
	}

	return &Document{
		Tokens:  tokens,
		Phrases: nounPhrases(tokens, tags),
	}, nil
}

// coarsePOS collapses Penn Treebank tags to the four classes the extractor
// distinguishes.
func coarsePOS(tag string) POS {
	switch tag {
	case "NN", "NNS":
		return POSNoun
	case "NNP", "NNPS":
		return POSProperNoun
	}
	if strings.HasPrefix(tag, "VB") {
		return POSVerb
	}
	return POSOther
}

var (
	ordinalPattern = regexp.MustCompile(`^\d+(?:st|nd|rd|th)$`)
	timePattern    = regexp.MustCompile(`^\d{1,2}:\d{2}(?::\d{2})?$`)
	yearPattern    = regexp.MustCompile(`^(?:19|20)\d{2}$`)
	moneyPattern   = regexp.MustCompile(`^[$€£]\d|^\d[\d,.]*[kKmM]?\$$`)
)

var dateWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"today": true, "tomorrow": true, "yesterday": true,
}

// entityClass derives the entity categories the extractor excludes. Prose's
// CD tag covers cardinals; the remaining classes come from small lexicons and
// surface patterns.
func entityClass(surface, tag string) string {
	lower := strings.ToLower(surface)
	switch {
	case ordinalPattern.MatchString(lower):
		return EntityOrdinal
	case timePattern.MatchString(lower):
		return EntityTime
	case moneyPattern.MatchString(surface):
		return EntityMoney
	case yearPattern.MatchString(lower), dateWords[lower]:
		return EntityDate
	case tag == "CD":
		return EntityCardinal
	}
	return ""
}

// isPunct reports whether the token is punctuation or whitespace-only.
func isPunct(surface, tag string) bool {
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "HYPH", "SYM", "$", "#":
		return true
	}
	for _, r := range surface {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// nounPhrases chunks the token sequence into noun-phrase spans: contiguous
// runs of determiners, adjectives, and nouns that contain at least one noun
// and end on one. Spans are ordered token index lists.
func nounPhrases(tokens []Token, tags []string) [][]int {
	var phrases [][]int
	var run []int
	hasNoun := false

	flush := func() {
		// Trim trailing non-noun tokens so the span ends on a noun.
		end := len(run)
		for end > 0 && !isNounTag(tags[run[end-1]]) {
			end--
		}
		if hasNoun && end > 1 {
			phrases = append(phrases, append([]int(nil), run[:end]...))
		}
		run = nil
		hasNoun = false
	}

	for i, tag := range tags {
		if tokens[i].Punct {
			flush()
			continue
		}
		if isNounTag(tag) || tag == "JJ" || tag == "JJR" || tag == "JJS" || tag == "DT" {
			run = append(run, i)
			if isNounTag(tag) {
				hasNoun = true
			}
			continue
		}
		flush()
	}
	flush()
	return phrases
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}
