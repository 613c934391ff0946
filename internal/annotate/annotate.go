// Package annotate provides the linguistic annotation capability consumed by
// the term extractor: tokens with lemma, coarse part-of-speech, entity class,
// and stopword/punctuation flags, plus noun-phrase spans over those tokens.
package annotate

// POS is the coarse part-of-speech class the extractor cares about.
type POS int

const (
	// POSOther covers everything that is not a noun, proper noun, or verb.
	POSOther POS = iota
	// POSNoun marks common nouns.
	POSNoun
	// POSProperNoun marks proper nouns.
	POSProperNoun
	// POSVerb marks verbs in any inflection.
	POSVerb
)

// Entity classes attached to tokens. Only the classes the extractor excludes
// are distinguished; everything else is reported as the empty string.
const (
	EntityDate     = "DATE"
	EntityTime     = "TIME"
	EntityMoney    = "MONEY"
	EntityOrdinal  = "ORDINAL"
	EntityCardinal = "CARDINAL"
)

// Token is one annotated token of a document.
type Token struct {
	Surface string
	Lemma   string
	POS     POS
	Entity  string // one of the Entity* constants, or ""
	Stop    bool
	Punct   bool
}

// Document is an annotated document: the token sequence plus noun-phrase
// spans expressed as ordered token index lists.
type Document struct {
	Tokens  []Token
	Phrases [][]int
}

// Annotator turns raw text into an annotated document.
type Annotator interface {
	Annotate(text string) (*Document, error)
}
