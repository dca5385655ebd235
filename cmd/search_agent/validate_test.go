package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidate_ValidRoster(t *testing.T) {
	dir := t.TempDir()
	validateRoster = writeFile(t, dir, "roster.json", `[
		{"name": "Asha", "skills": ["React"], "experience_years": 5},
		{"name": "Vik", "email": "vik@example.com"}
	]`)

	assert.NoError(t, runValidate(nil, nil))
}

func TestRunValidate_TypeMismatch(t *testing.T) {
	dir := t.TempDir()
	validateRoster = writeFile(t, dir, "roster.json", `[{"name": 42}]`)

	err := runValidate(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestRunValidate_UnreadableFile(t *testing.T) {
	validateRoster = "no-such-roster.json"
	assert.Error(t, runValidate(nil, nil))
}
