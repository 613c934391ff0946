package types

// MatchMethod identifies how a job-description term was satisfied by the
// resume, or "none" when it was not.
type MatchMethod string

// Match methods in precedence order.
const (
	MethodExact      MatchMethod = "exact"
	MethodSynonym    MatchMethod = "synonym"
	MethodFuzzyTerms MatchMethod = "fuzzy-terms"
	MethodFuzzyText  MatchMethod = "fuzzy-text"
	MethodNone       MatchMethod = "none"
)

// MatchRecord is the audit record produced for one job-description term
// during one analysis. Records are never mutated after creation.
type MatchRecord struct {
	Term     string      `json:"term"`
	Category Tier        `json:"category"`
	Matched  bool        `json:"matched"`
	Method   MatchMethod `json:"method"`
	Weight   float64     `json:"weight"`
	Earned   float64     `json:"earned"`
}

// TierBreakdown groups one tier's terms by matched status for the
// human-readable report.
type TierBreakdown struct {
	Category Tier     `json:"category"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
}

// ScoreResult is the full outcome of comparing one resume against one job
// description. It is a pure function of the two term sets, the resume raw
// text, the tier configuration, and the synonym map; it is created fresh per
// analysis and never persisted.
type ScoreResult struct {
	AnalysisID string `json:"analysis_id"`

	// SimpleScore counts only exact set intersection between canonical JD
	// and resume terms: the conservative floor.
	SimpleScore float64 `json:"simple_score"`
	// WeightedScore is the percentage of total tier weight earned across
	// all JD terms, with synonym and fuzzy credit: the primary metric.
	WeightedScore float64 `json:"weighted_score"`

	MatchedTerms []string        `json:"matched_terms"`
	MissingTerms []string        `json:"missing_terms"`
	Records      []MatchRecord   `json:"records"`
	Breakdown    []TierBreakdown `json:"breakdown"`

	// Note carries a non-error signal such as "no terms detected in job
	// description" when either term set came up empty.
	Note string `json:"note,omitempty"`
}
