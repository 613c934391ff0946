package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/textsource"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeCSVPath    string
	analyzeJSON       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  `Extract terms from both documents, match each job-description term against the resume (exact, synonym, then fuzzy), and print the weighted and simple scores with matched/missing term lists.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume file (.txt or .html)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job description file (.txt or .html)")
	analyzeCmd.Flags().StringVar(&analyzeCSVPath, "csv", "", "Write the per-term record table to this CSV file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full ScoreResult as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print the tier breakdown and suggestions")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resumeText, err := textsource.Read(analyzeResumePath)
	if err != nil {
		return err
	}
	jobText, err := textsource.Read(analyzeJobPath)
	if err != nil {
		return err
	}

	a, _, err := buildAnalyzer()
	if err != nil {
		return err
	}

	result, err := a.Analyze(context.Background(), resumeText, jobText)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := report.NewPrinter(out)
	printer.PrintScores(result)
	if analyzeVerbose {
		printer.PrintBreakdown(result)
		printer.PrintSuggestions(result)
	} else {
		fmt.Fprintf(out, "Matched (%d): %s\n", len(result.MatchedTerms), strings.Join(result.MatchedTerms, ", "))
		fmt.Fprintf(out, "Missing (%d): %s\n", len(result.MissingTerms), strings.Join(result.MissingTerms, ", "))
	}

	if analyzeCSVPath != "" {
		f, err := os.Create(analyzeCSVPath)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, result); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote record table to %s\n", analyzeCSVPath)
	}

	return nil
}
