// Package main provides the resume-matcher CLI: ATS-style comparison of a
// resume against a job description.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume vs job description match scoring",
	Long:  "resume_matcher extracts skill terms from a resume and a job description, matches them with synonym and fuzzy tolerance, and reports a weighted compatibility score with a per-term audit trail.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
