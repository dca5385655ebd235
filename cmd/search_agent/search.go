package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/match"
	"github.com/jonathan/talent-search/internal/observability"
	"github.com/jonathan/talent-search/internal/query"
	"github.com/jonathan/talent-search/internal/roster"
	"github.com/jonathan/talent-search/internal/schemas"
	"github.com/jonathan/talent-search/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Score a candidate roster against a query and filters",
	Long:  "Runs the matching engine over a roster file or directory, writing the qualifying candidates with their semantic_score as MatchResults JSON.",
	RunE:  runSearch,
}

var (
	searchCandidates string
	searchQuery      string
	searchFilters    string
	searchSortBy     string
	searchLimit      int
	searchOutput     string
	searchVerbose    bool
)

func init() {
	searchCmd.Flags().StringVarP(&searchCandidates, "candidates", "c", "", "Path to a roster JSON file or a directory of roster files (required)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query")
	searchCmd.Flags().StringVarP(&searchFilters, "filters", "f", "", "Path to a SearchFilters JSON file")
	searchCmd.Flags().StringVar(&searchSortBy, "sort-by", "", "Sort results by \"score\" (default: roster order)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Keep at most this many results (0 = all)")
	searchCmd.Flags().StringVarP(&searchOutput, "out", "o", "", "Path to output MatchResults JSON file (default: stdout)")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print query analysis and result summary")

	if err := searchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCmd)
}

// matchResultsDoc is the MatchResults output shape.
type matchResultsDoc struct {
	Query     string             `json:"query"`
	Total     int                `json:"total"`
	Evaluated int                `json:"evaluated"`
	Matches   []candidate.Record `json:"matches"`
}

func runSearch(_ *cobra.Command, _ []string) error {
	if searchSortBy != "" && searchSortBy != "score" {
		return fmt.Errorf("unsupported sort-by value: %s", searchSortBy)
	}

	// 1. Load the roster
	records, err := loadCandidates(searchCandidates)
	if err != nil {
		return err
	}

	// 2. Load filters, if any
	var filters types.SearchFilters
	if searchFilters != "" {
		content, err := os.ReadFile(searchFilters)
		if err != nil {
			return fmt.Errorf("failed to read filters file %s: %w", searchFilters, err)
		}
		if err := json.Unmarshal(content, &filters); err != nil {
			return fmt.Errorf("failed to unmarshal filters JSON: %w", err)
		}
	}

	// 3. Run the engine
	results := match.Search(searchQuery, filters, records)

	// 4. Sort and limit, outside the engine
	if searchSortBy == "score" {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintQueryAnalysis(searchQuery, query.Analyze(searchQuery))
		printer.PrintFilterSummary(filters)
		printer.PrintResults(results, len(records))
	}

	// 5. Marshal output
	doc := matchResultsDoc{
		Query:     searchQuery,
		Total:     len(results),
		Evaluated: len(records),
		Matches:   make([]candidate.Record, 0, len(results)),
	}
	for _, res := range results {
		doc.Matches = append(doc.Matches, res.Record)
	}

	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match results to JSON: %w", err)
	}

	if searchOutput == "" {
		fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := writeOutputFile(searchOutput, jsonOutput); err != nil {
		return err
	}

	// 6. Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/match_results.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, searchOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Matched %d of %d candidates to %s\n", len(results), len(records), searchOutput)

	return nil
}

// loadCandidates loads a roster from a file or from every *.json in a
// directory.
func loadCandidates(path string) ([]candidate.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat candidates path %s: %w", path, err)
	}
	if info.IsDir() {
		return roster.LoadDir(context.Background(), path)
	}
	return roster.LoadFile(path)
}

// writeOutputFile writes data, creating the parent directory when needed.
func writeOutputFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
