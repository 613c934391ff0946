// Package score aggregates per-term match results into the weighted and
// simple compatibility scores with a full per-term audit trail.
package score

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/match"
	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine computes ScoreResults. It holds only shared read-mostly state (the
// synonym map via the matcher, and the tier table); each Score call is an
// independent, request-scoped computation.
type Engine struct {
	matcher *match.Matcher
	tiers   types.TierTable
}

// NewEngine creates a scoring engine with the given synonym map and tier
// configuration.
func NewEngine(syns *synonyms.Map, tiers types.TierTable) *Engine {
	return &Engine{
		matcher: match.NewMatcher(syns),
		tiers:   tiers,
	}
}

// Score compares a JD term set against a resume term set and the resume raw
// text. JD terms are iterated in sorted order so results are reproducible.
// An empty JD term set yields zero scores and no records, not an error.
func (e *Engine) Score(jdTerms, resumeTerms types.TermSet, resumeText string) *types.ScoreResult {
	result := &types.ScoreResult{
		MatchedTerms: []string{},
		MissingTerms: []string{},
		Records:      []types.MatchRecord{},
	}

	if jdTerms.Len() == 0 {
		result.Note = "no terms detected in job description"
		result.Breakdown = breakdown(nil)
		return result
	}

	textTerms := match.TextTerms(resumeText)

	var totalPossible, totalEarned float64
	for _, term := range jdTerms.Sorted() {
		tier := match.Categorize(term)
		settings := e.tiers.Settings(tier)

		matched, method := e.matcher.Match(term, resumeTerms, textTerms, settings.Threshold)

		record := types.MatchRecord{
			Term:     term,
			Category: tier,
			Matched:  matched,
			Method:   method,
			Weight:   settings.Weight,
		}
		if matched {
			record.Earned = settings.Weight
			result.MatchedTerms = append(result.MatchedTerms, term)
		} else {
			result.MissingTerms = append(result.MissingTerms, term)
		}

		totalPossible += settings.Weight
		totalEarned += record.Earned
		result.Records = append(result.Records, record)
	}

	if totalPossible > 0 {
		result.WeightedScore = round2(totalEarned / totalPossible * 100)
	}
	result.SimpleScore = simpleScore(jdTerms, resumeTerms)
	result.Breakdown = breakdown(result.Records)

	if resumeTerms.Len() == 0 && result.Note == "" {
		result.Note = "no terms detected in resume"
	}
	return result
}

// simpleScore is the conservative floor: exact set intersection between
// canonicalized JD and resume terms, with no synonym or fuzzy credit.
func simpleScore(jdTerms, resumeTerms types.TermSet) float64 {
	if jdTerms.Len() == 0 {
		return 0
	}
	intersection := 0
	for term := range jdTerms {
		if resumeTerms.Contains(match.Fold(term)) {
			intersection++
		}
	}
	return round2(float64(intersection) / float64(jdTerms.Len()) * 100)
}

// breakdown groups record terms by tier and matched status, in descending
// tier weight order. Every tier appears even when empty so reports have a
// stable shape.
func breakdown(records []types.MatchRecord) []types.TierBreakdown {
	groups := make([]types.TierBreakdown, 0, len(types.AllTiers))
	for _, tier := range types.AllTiers {
		group := types.TierBreakdown{
			Category: tier,
			Matched:  []string{},
			Missing:  []string{},
		}
		for _, rec := range records {
			if rec.Category != tier {
				continue
			}
			if rec.Matched {
				group.Matched = append(group.Matched, rec.Term)
			} else {
				group.Missing = append(group.Missing, rec.Term)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
