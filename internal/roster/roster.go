// Package roster loads candidate collections from JSON files and prepares
// the records for the matching engine.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-search/internal/candidate"
)

// LoadFile reads one roster file: either a top-level JSON array of candidate
// records or an object with a "candidates" key.
func LoadFile(path string) ([]candidate.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	return records, nil
}

// Decode parses roster JSON in either accepted shape and attaches derived
// resume text to records that carry only HTML.
func Decode(data []byte) ([]candidate.Record, error) {
	var records []candidate.Record
	if err := json.Unmarshal(data, &records); err == nil {
		return Prepare(records), nil
	}

	var wrapper struct {
		Candidates []candidate.Record `json:"candidates"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("roster must be a JSON array or an object with a candidates key: %w", err)
	}
	if wrapper.Candidates == nil {
		return nil, fmt.Errorf("roster object has no candidates array")
	}

	return Prepare(wrapper.Candidates), nil
}

// LoadDir loads every *.json file in dir and returns one combined roster.
// Files are parsed concurrently; the combined order is the lexical filename
// order, so repeated loads of the same directory agree.
func LoadDir(ctx context.Context, dir string) ([]candidate.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster directory %s: %w", dir, err)
	}

	// ReadDir returns entries sorted by filename.
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	batches := make([][]candidate.Record, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records, err := LoadFile(path)
			if err != nil {
				return err
			}
			batches[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []candidate.Record
	for _, batch := range batches {
		combined = append(combined, batch...)
	}
	return combined, nil
}

// Prepare runs load-time enrichment on freshly decoded records. The records
// are the roster's own copies, so attaching derived fields here never
// touches caller data.
func Prepare(records []candidate.Record) []candidate.Record {
	for _, rec := range records {
		attachResumeText(rec)
	}
	return records
}
