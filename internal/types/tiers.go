// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// Tier is the importance class assigned to a job-description term. It drives
// both the scoring weight and the fuzzy-match strictness for that term.
type Tier int

const (
	// TierCritical marks must-have terms (highest weight, strictest matching).
	TierCritical Tier = iota
	// TierImportant marks strongly desired terms.
	TierImportant
	// TierNice marks nice-to-have terms (lowest weight, loosest matching).
	TierNice
)

// AllTiers lists every tier in descending weight order.
var AllTiers = []Tier{TierCritical, TierImportant, TierNice}

// String returns the tier name used in reports and JSON payloads.
func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierImportant:
		return "important"
	case TierNice:
		return "nice"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the tier as its string name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier from its string name.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "critical":
		*t = TierCritical
	case "important":
		*t = TierImportant
	case "nice":
		*t = TierNice
	default:
		return fmt.Errorf("unknown tier: %q", name)
	}
	return nil
}

// Default tier weights and fuzzy similarity thresholds. These are the
// built-in fallbacks used whenever external configuration is missing or
// malformed, so score computation never fails for lack of configuration.
const (
	DefaultCriticalWeight  = 3.0
	DefaultImportantWeight = 2.0
	DefaultNiceWeight      = 1.0

	DefaultCriticalThreshold  = 88
	DefaultImportantThreshold = 82
	DefaultNiceThreshold      = 75
)

// TierSettings holds the scoring weight and fuzzy similarity threshold
// (0-100 scale) for one tier.
type TierSettings struct {
	Weight    float64 `json:"weight"`
	Threshold int     `json:"threshold"`
}

// TierTable maps every tier to its settings. Modeled as a fixed struct rather
// than a string-keyed map so a missing tier is impossible by construction.
type TierTable struct {
	Critical  TierSettings `json:"critical"`
	Important TierSettings `json:"important"`
	Nice      TierSettings `json:"nice"`
}

// DefaultTierTable returns the built-in weights and thresholds.
func DefaultTierTable() TierTable {
	return TierTable{
		Critical:  TierSettings{Weight: DefaultCriticalWeight, Threshold: DefaultCriticalThreshold},
		Important: TierSettings{Weight: DefaultImportantWeight, Threshold: DefaultImportantThreshold},
		Nice:      TierSettings{Weight: DefaultNiceWeight, Threshold: DefaultNiceThreshold},
	}
}

// Settings returns the settings for the given tier. Unknown tiers fall back
// to the nice settings, keeping the function total.
func (tt TierTable) Settings(t Tier) TierSettings {
	switch t {
	case TierCritical:
		return tt.Critical
	case TierImportant:
		return tt.Important
	case TierNice:
		return tt.Nice
	default:
		return tt.Nice
	}
}
