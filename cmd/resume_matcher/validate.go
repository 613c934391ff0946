package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

var (
	validateSchemaPath string
	validateJSONPath   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long:  `Validate a JSON file (a config file or an exported analysis result) against one of the published JSON Schemas.`,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file (resolved relative to the working directory)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON document to validate")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath := schemas.ResolveSchemaPath(validateSchemaPath)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", validateSchemaPath)
	}

	document, err := os.ReadFile(validateJSONPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	if err := schemas.ValidateBytes(schemaPath, document); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against %s\n", validateJSONPath, schemaPath)
	return nil
}
