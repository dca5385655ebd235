package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/roster"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Append one resume to a roster file",
	Long:  "Builds a candidate record from a resume file (HTML or plain text) plus identity flags and appends it to a roster JSON file, creating the file if needed.",
	RunE:  runIngest,
}

var (
	ingestResume string
	ingestRoster string
	ingestName   string
	ingestEmail  string
	ingestPhone  string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestResume, "resume", "r", "", "Path to a resume file, .html/.htm or plain text (required)")
	ingestCmd.Flags().StringVar(&ingestRoster, "roster", "", "Path to the roster JSON file to append to (required)")
	ingestCmd.Flags().StringVar(&ingestName, "name", "", "Candidate name")
	ingestCmd.Flags().StringVar(&ingestEmail, "email", "", "Candidate email")
	ingestCmd.Flags().StringVar(&ingestPhone, "phone", "", "Candidate phone")

	if err := ingestCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := ingestCmd.MarkFlagRequired("roster"); err != nil {
		panic(fmt.Sprintf("failed to mark roster flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(ingestResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", ingestResume, err)
	}

	rec, err := buildIngestRecord(ingestResume, string(content))
	if err != nil {
		return err
	}

	records, err := loadOrEmptyRoster(ingestRoster)
	if err != nil {
		return err
	}
	records = append(records, rec)

	jsonOutput, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roster to JSON: %w", err)
	}
	if err := writeOutputFile(ingestRoster, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Appended 1 candidate to %s (%d total)\n", ingestRoster, len(records))
	return nil
}

// buildIngestRecord assembles the candidate record. HTML resumes are
// reduced to plain text so projection sees readable content.
func buildIngestRecord(path, content string) (candidate.Record, error) {
	rec := candidate.Record{}
	if ingestName != "" {
		rec["name"] = ingestName
	}
	if ingestEmail != "" {
		rec["email"] = ingestEmail
	}
	if ingestPhone != "" {
		rec["phone"] = ingestPhone
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		text, err := roster.ExtractResumeText(content)
		if err != nil {
			return nil, fmt.Errorf("failed to extract resume text: %w", err)
		}
		rec["resume_html"] = content
		rec["resume_text"] = text
	} else {
		rec["resume_text"] = roster.CleanText(content)
	}

	return rec, nil
}

// loadOrEmptyRoster loads an existing roster file, or starts an empty one
// when the file does not exist yet.
func loadOrEmptyRoster(path string) ([]candidate.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return roster.LoadFile(path)
}
