package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func resetSearchFlags() {
	searchCandidates = ""
	searchQuery = ""
	searchFilters = ""
	searchSortBy = ""
	searchLimit = 0
	searchOutput = ""
	searchVerbose = false
}

func readMatchResults(t *testing.T, path string) matchResultsDoc {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc matchResultsDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestRunSearch_EndToEnd(t *testing.T) {
	resetSearchFlags()
	dir := t.TempDir()

	rosterPath := writeFile(t, dir, "roster.json", `[
		{"name": "Asha", "skills": ["React", "Node.js"], "experience_years": 5, "current_location": "Bangalore"},
		{"name": "Vik", "skills": ["Java"], "experience_years": 9, "current_location": "Pune"}
	]`)
	filtersPath := writeFile(t, dir, "filters.json", `{"experience": {"min": 3, "max": 7}}`)
	outPath := filepath.Join(dir, "out", "results.json")

	searchCandidates = rosterPath
	searchQuery = "react developer"
	searchFilters = filtersPath
	searchOutput = outPath

	require.NoError(t, runSearch(nil, nil))

	doc := readMatchResults(t, outPath)
	require.Len(t, doc.Matches, 1)
	assert.Equal(t, "Asha", doc.Matches[0]["name"])
	assert.Equal(t, 1, doc.Total)
	assert.Equal(t, 2, doc.Evaluated)

	score, ok := doc.Matches[0]["semantic_score"].(float64)
	require.True(t, ok)
	assert.Greater(t, score, 0.0)
}

func TestRunSearch_SortByScoreAndLimit(t *testing.T) {
	resetSearchFlags()
	dir := t.TempDir()

	rosterPath := writeFile(t, dir, "roster.json", `[
		{"name": "weak", "resume_text": "has touched react once"},
		{"name": "strong", "skills": ["React"], "designation": "React Developer"}
	]`)
	outPath := filepath.Join(dir, "results.json")

	searchCandidates = rosterPath
	searchQuery = "react"
	searchSortBy = "score"
	searchLimit = 1
	searchOutput = outPath

	require.NoError(t, runSearch(nil, nil))

	doc := readMatchResults(t, outPath)
	require.Len(t, doc.Matches, 1)
	assert.Equal(t, 2, doc.Evaluated)
}

func TestRunSearch_DirectoryRoster(t *testing.T) {
	resetSearchFlags()
	dir := t.TempDir()
	rosterDir := filepath.Join(dir, "roster")
	require.NoError(t, os.MkdirAll(rosterDir, 0755))

	writeFile(t, rosterDir, "a.json", `[{"name": "Asha", "skills": ["React"]}]`)
	writeFile(t, rosterDir, "b.json", `[{"name": "Vik", "skills": ["Java"]}]`)
	outPath := filepath.Join(dir, "results.json")

	searchCandidates = rosterDir
	searchOutput = outPath

	require.NoError(t, runSearch(nil, nil))

	doc := readMatchResults(t, outPath)
	// No query and no filters: everyone comes back scored zero.
	require.Len(t, doc.Matches, 2)
	assert.Equal(t, "Asha", doc.Matches[0]["name"])
	assert.Equal(t, 0.0, doc.Matches[0]["semantic_score"])
}

func TestRunSearch_BadSortBy(t *testing.T) {
	resetSearchFlags()
	searchCandidates = "does-not-matter.json"
	searchSortBy = "name"

	err := runSearch(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort-by")
}

func TestRunSearch_MissingRoster(t *testing.T) {
	resetSearchFlags()
	searchCandidates = filepath.Join(t.TempDir(), "absent.json")

	assert.Error(t, runSearch(nil, nil))
}
