package candidate

import (
	"regexp"
	"strings"
)

var (
	nonSearchable = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases s, replaces every character outside letters, digits
// and whitespace with a space, collapses whitespace runs and trims. All text
// comparison in the engine happens on normalized strings.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = nonSearchable.ReplaceAllString(s, " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens normalizes s and splits it into whitespace tokens.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}
