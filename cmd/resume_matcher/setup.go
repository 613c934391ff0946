package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/analyzer"
	"github.com/jonathan/resume-matcher/internal/annotate"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/synonyms"
)

// configPath is shared by all commands via a persistent root flag.
var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
}

// buildAnalyzer loads configuration and the synonym map and wires up the
// engine. Shared by the analyze, extract, and serve commands.
func buildAnalyzer() (*analyzer.Analyzer, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := synonyms.NewFileStore(cfg.UserSynonymsPath())
	syns := synonyms.Load(store, cfg.Synonyms)

	a := analyzer.New(cfg, syns, annotate.NewProseAnnotator())
	return a, cfg, nil
}
