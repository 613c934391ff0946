package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/textsource"
)

var extractFilePath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the term set extracted from one document",
	Long:  `Run only the extraction stage and print the canonical terms, one per line. Useful for tuning synonym and stop-phrase configuration.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFilePath, "file", "", "Path to document (.txt or .html)")
	_ = extractCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	text, err := textsource.Read(extractFilePath)
	if err != nil {
		return err
	}

	a, _, err := buildAnalyzer()
	if err != nil {
		return err
	}

	terms, err := a.ExtractTerms("document", text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, term := range terms.Sorted() {
		fmt.Fprintln(out, term)
	}
	fmt.Fprintf(out, "\n%d terms\n", terms.Len())
	return nil
}
