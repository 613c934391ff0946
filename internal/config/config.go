// Package config provides configuration loading for the match engine. Every
// field is optional: malformed or missing values are replaced by the built-in
// defaults field by field, so an analysis never fails for lack of
// configuration.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultMaxDocumentBytes bounds input size to keep the O(|jd| x |resume|)
// fuzzy-matching cost of one analysis small.
const DefaultMaxDocumentBytes = 2 << 20 // 2 MiB

// Config is the engine configuration that can be loaded from a JSON file.
type Config struct {
	Weights      *Weights          `json:"weights,omitempty"`
	Thresholds   *Thresholds       `json:"thresholds,omitempty"`
	Synonyms     map[string]string `json:"synonyms,omitempty"`      // extra variant -> canonical entries
	UserSynonyms string            `json:"user_synonyms,omitempty"` // path of the learner's JSON table
	StopPhrases  []string          `json:"stop_phrases,omitempty"`  // boilerplate scrubbed pre-extraction
	MaxDocBytes  int64             `json:"max_document_bytes,omitempty"`
}

// Weights holds per-tier scoring weights. Every weight must be > 0.
type Weights struct {
	Critical  float64 `json:"critical" validate:"gt=0"`
	Important float64 `json:"important" validate:"gt=0"`
	Nice      float64 `json:"nice" validate:"gt=0"`
}

// Thresholds holds per-tier fuzzy similarity thresholds on the 0-100 scale.
type Thresholds struct {
	Critical  int `json:"critical" validate:"min=0,max=100"`
	Important int `json:"important" validate:"min=0,max=100"`
	Nice      int `json:"nice" validate:"min=0,max=100"`
}

var validate = validator.New()

// Load reads configuration from a JSON file. An empty path returns the zero
// Config (all defaults). A missing or unparseable file is an error; a
// parseable file with out-of-range values is not — those values are replaced
// field by field in TierTable.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// TierTable builds the effective tier table, substituting the built-in
// default for every field that is missing or fails validation. Substitutions
// are logged, never propagated as errors.
func (c *Config) TierTable() types.TierTable {
	table := types.DefaultTierTable()

	if c.Weights != nil {
		if err := validate.Struct(c.Weights); err != nil {
			log.Printf("config: invalid weights (%v), using defaults for out-of-range fields", err)
		}
		if c.Weights.Critical > 0 {
			table.Critical.Weight = c.Weights.Critical
		}
		if c.Weights.Important > 0 {
			table.Important.Weight = c.Weights.Important
		}
		if c.Weights.Nice > 0 {
			table.Nice.Weight = c.Weights.Nice
		}
	}

	if c.Thresholds != nil {
		if err := validate.Struct(c.Thresholds); err != nil {
			log.Printf("config: invalid thresholds (%v), using defaults for out-of-range fields", err)
		}
		if inThresholdRange(c.Thresholds.Critical) {
			table.Critical.Threshold = c.Thresholds.Critical
		}
		if inThresholdRange(c.Thresholds.Important) {
			table.Important.Threshold = c.Thresholds.Important
		}
		if inThresholdRange(c.Thresholds.Nice) {
			table.Nice.Threshold = c.Thresholds.Nice
		}
	}

	return table
}

// MaxDocumentBytes returns the configured input-size bound, falling back to
// the default when unset or non-positive.
func (c *Config) MaxDocumentBytes() int64 {
	if c.MaxDocBytes > 0 {
		return c.MaxDocBytes
	}
	return DefaultMaxDocumentBytes
}

// UserSynonymsPath returns the configured user synonym table path, falling
// back to a dotfile under the user's home directory.
func (c *Config) UserSynonymsPath() string {
	if c.UserSynonyms != "" {
		return c.UserSynonyms
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "user_synonyms.json"
	}
	return filepath.Join(home, ".resume-matcher", "user_synonyms.json")
}

// inThresholdRange reports whether v is usable as a similarity threshold.
// Zero is treated as unset rather than "match everything".
func inThresholdRange(v int) bool {
	return v > 0 && v <= 100
}
