package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/synonyms"
)

var learnCmd = &cobra.Command{
	Use:   "learn <missing-term> <present-term>",
	Short: "Record that two terms are equivalent",
	Long:  `Add a user synonym: future analyses treat <missing-term> as a variant of <present-term>. The mapping is persisted to the user synonym file.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runLearn,
}

func init() {
	rootCmd.AddCommand(learnCmd)
}

func runLearn(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := synonyms.NewFileStore(cfg.UserSynonymsPath())
	syns := synonyms.Load(store, cfg.Synonyms)

	if err := syns.Learn(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Learned: %q -> %q (saved to %s)\n", args[0], args[1], store.Path())
	return nil
}
