package annotate

// stopWords filters common English words that add noise to term extraction.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "then": true, "than": true, "so": true,
	"as": true, "at": true, "by": true, "for": true, "from": true,
	"in": true, "into": true, "of": true, "on": true, "to": true,
	"with": true, "about": true, "up": true, "out": true, "over": true,
	"under": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "could": true, "should": true, "may": true,
	"might": true, "can": true, "shall": true, "must": true, "not": true,
	"no": true, "it": true, "its": true, "this": true, "that": true,
	"these": true, "those": true, "what": true, "which": true,
	"who": true, "whom": true, "how": true, "when": true, "where": true,
	"why": true, "you": true, "your": true, "yours": true, "we": true,
	"our": true, "ours": true, "they": true, "their": true, "them": true,
	"he": true, "she": true, "her": true, "him": true, "his": true,
	"i": true, "me": true, "my": true, "us": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "only": true,
	"own": true, "same": true, "too": true, "very": true, "just": true,
	"also": true, "well": true, "able": true, "etc": true, "via": true,
	"per": true, "plus": true, "within": true, "across": true,
	"including": true, "etc.": true, "e.g.": true, "i.e.": true,
	"year": true, "years": true, "experience": true, "ability": true,
	"strong": true, "good": true, "excellent": true, "new": true,
	"work": true, "working": true, "role": true, "team": true,
	"candidate": true, "responsibilities": true, "requirements": true,
	"required": true, "preferred": true, "knowledge": true,
	"skills": true, "skill": true, "proficiency": true, "familiarity": true,
}

// IsStopWord reports whether the lower-cased word is in the stopword set.
func IsStopWord(word string) bool {
	return stopWords[word]
}
