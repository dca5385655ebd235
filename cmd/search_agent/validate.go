package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/roster"
	"github.com/jonathan/talent-search/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a roster file against the candidate schema",
	RunE:  runValidate,
}

var validateRoster string

func init() {
	validateCmd.Flags().StringVarP(&validateRoster, "candidates", "c", "", "Path to the roster JSON file to validate (required)")
	if err := validateCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	records, err := roster.LoadFile(validateRoster)
	if err != nil {
		return err
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/candidate.schema.json")
	if schemaPath == "" {
		return fmt.Errorf("candidate schema not found")
	}

	failed := 0
	for i, rec := range records {
		if err := schemas.ValidateDocument(schemaPath, rec); err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stderr, "candidate %d: %v\n", i, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d candidates failed validation", failed, len(records))
	}

	_, _ = fmt.Fprintf(os.Stdout, "All %d candidates valid\n", len(records))
	return nil
}
