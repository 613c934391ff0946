package annotate

import "strings"

// lemmaExceptions covers irregular or domain forms the suffix rules would
// mangle.
var lemmaExceptions = map[string]string{
	"data":          "data",
	"kubernetes":    "kubernetes",
	"jenkins":       "jenkins",
	"redis":         "redis",
	"postgres":      "postgres",
	"devops":        "devops",
	"analyses":      "analysis",
	"analysis":      "analysis",
	"hypotheses":    "hypothesis",
	"criteria":      "criterion",
	"media":         "media",
	"series":        "series",
	"people":        "person",
	"children":      "child",
	"men":           "man",
	"women":         "woman",
	"teeth":         "tooth",
	"feet":          "foot",
	"mice":          "mouse",
	"dies":          "die",
	"goes":          "go",
	"does":          "do",
	"has":           "have",
	"was":           "be",
	"were":          "be",
	"is":            "be",
	"are":           "be",
	"been":          "be",
	"being":         "be",
	"saas":          "saas",
	"paas":          "paas",
	"iaas":          "iaas",
	"aws":           "aws",
	"microservices": "microservice",
}

// Lemma returns a naive lemma for a lower-cased word: exceptions first, then
// plural and inflection suffix rules. It intentionally errs on the side of
// leaving short or unusual words untouched.
func Lemma(word string) string {
	w := strings.ToLower(word)
	if lemma, ok := lemmaExceptions[w]; ok {
		return lemma
	}
	if len(w) <= 3 {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y" // technologies -> technology
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2] // processes -> process
	case strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"),
		strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "zes"):
		return w[:len(w)-2] // branches -> branch
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"),
		strings.HasSuffix(w, "is"):
		return w // class, status, analysis-like endings stay
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		stem := w[:len(w)-3]
		if !hasVowel(stem) {
			return w // string, spring
		}
		if len(stem) > 2 && stem[len(stem)-1] == stem[len(stem)-2] {
			stem = stem[:len(stem)-1] // debugging -> debug
		}
		return restoreE(stem)
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		stem := w[:len(w)-2]
		if !hasVowel(stem) || isVowel(stem[len(stem)-1]) {
			return w // speed, agreed
		}
		if len(stem) > 2 && stem[len(stem)-1] == stem[len(stem)-2] {
			stem = stem[:len(stem)-1] // planned -> plan
		}
		return restoreE(stem)
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1] // pipelines -> pipeline
	}
	return w
}

// restoreE re-appends the silent e dropped before -ing/-ed suffixes for the
// most common stem endings (integrat -> integrate).
func restoreE(stem string) string {
	for _, suffix := range []string{"at", "iz", "ys", "ur", "as"} {
		if strings.HasSuffix(stem, suffix) {
			return stem + "e"
		}
	}
	return stem
}

func hasVowel(s string) bool {
	return strings.ContainsAny(s, "aeiouy")
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
