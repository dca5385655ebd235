package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/roster"
	"github.com/jonathan/talent-search/internal/store"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the stored candidate roster",
}

var rosterLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a roster file or directory into the database",
	RunE:  runRosterLoad,
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "Dump the stored roster as JSON",
	RunE:  runRosterList,
}

var (
	rosterLoadPath    string
	rosterLoadSource  string
	rosterLoadReplace bool
	rosterListOutput  string
)

func init() {
	rosterLoadCmd.Flags().StringVarP(&rosterLoadPath, "candidates", "c", "", "Path to a roster JSON file or directory (required)")
	rosterLoadCmd.Flags().StringVar(&rosterLoadSource, "source", "", "Source label stored with each row")
	rosterLoadCmd.Flags().BoolVar(&rosterLoadReplace, "replace", false, "Replace the stored roster instead of appending")
	if err := rosterLoadCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rosterListCmd.Flags().StringVarP(&rosterListOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	rosterCmd.AddCommand(rosterLoadCmd)
	rosterCmd.AddCommand(rosterListCmd)
	rootCmd.AddCommand(rosterCmd)
}

// connectStore opens the store from DATABASE_URL.
func connectStore(ctx context.Context) (*store.Store, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return st, nil
}

func runRosterLoad(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	records, err := loadCandidates(rosterLoadPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("roster %s contains no candidates", rosterLoadPath)
	}

	st, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	records = roster.Prepare(records)

	if rosterLoadReplace {
		if err := st.ReplaceRoster(ctx, records, rosterLoadSource); err != nil {
			return fmt.Errorf("failed to replace roster: %w", err)
		}
	} else {
		if _, err := st.SaveCandidates(ctx, records, rosterLoadSource); err != nil {
			return fmt.Errorf("failed to save candidates: %w", err)
		}
	}

	total, err := st.CountCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to count roster: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Loaded %d candidates (%d stored)\n", len(records), total)
	return nil
}

func runRosterList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	st, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.ListCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list roster: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roster to JSON: %w", err)
	}

	if rosterListOutput == "" {
		fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}
	if err := writeOutputFile(rosterListOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d candidates to %s\n", len(rows), rosterListOutput)
	return nil
}
