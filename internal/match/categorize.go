// Package match decides how a job-description term is satisfied by a resume:
// the importance tier it belongs to and the method (exact, synonym, fuzzy)
// that matched it, if any.
package match

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// categoryHints assigns tiers to exact terms where substring heuristics would
// guess wrong. Checked before the keyword lists.
var categoryHints = map[string]types.Tier{
	"qa":                types.TierCritical,
	"sql":               types.TierCritical,
	"rest api":          types.TierCritical,
	"etl":               types.TierCritical,
	"ci/cd":             types.TierCritical,
	"automated testing": types.TierCritical,
	"selenium":          types.TierCritical,
	"postman":           types.TierCritical,
	"documentation":     types.TierImportant,
	"jira":              types.TierImportant,
	"confluence":        types.TierImportant,
	"agile":             types.TierImportant,
	"scrum":             types.TierImportant,
	"git":               types.TierImportant,
	"github":            types.TierImportant,
	"linux":             types.TierImportant,
	"teams":             types.TierNice,
	"communication":     types.TierNice,
}

// criticalKeywords mark a term critical when contained in it. Checked before
// importantKeywords; first match wins.
var criticalKeywords = []string{
	"test", "qa", "automation", "sql", "api", "azure", "aws", "gcp",
	"kubernetes", "docker", "terraform", "python", "security", "etl",
	"pipeline", "ci/cd", "infrastructure", "iac", "devops",
}

// importantKeywords mark a term important when contained in it.
var importantKeywords = []string{
	"document", "agile", "scrum", "monitor", "support", "report",
	"cloud", "linux", "windows", "network", "database", "script",
	"integration", "troubleshoot", "debug", "analysis", "git",
}

// Categorize assigns an importance tier to a term: exact hint lookup first,
// then the critical and important substring lists, defaulting to nice. Total
// and deterministic.
func Categorize(term string) types.Tier {
	term = strings.ToLower(strings.TrimSpace(term))

	if tier, ok := categoryHints[term]; ok {
		return tier
	}
	for _, kw := range criticalKeywords {
		if strings.Contains(term, kw) {
			return types.TierCritical
		}
	}
	for _, kw := range importantKeywords {
		if strings.Contains(term, kw) {
			return types.TierImportant
		}
	}
	return types.TierNice
}
