// Package match evaluates candidate records against a query and filter set,
// gating on hard criteria and scoring the survivors across weighted
// categories.
package match

import "strings"

const (
	// Tokens shorter than this must match as exact substrings; fuzzy
	// matching short tokens lets unrelated words collide.
	fuzzyMinLen = 5
	// Tokens at least this long tolerate two edits instead of one.
	fuzzyWideLen = 8

	// editInfeasible reports that a distance provably exceeds its bound.
	editInfeasible = -1
)

// boundedEditDistance computes the edit distance between a and b, giving up
// as soon as it provably exceeds maxDist. Returns editInfeasible when the
// distance is over the bound, including when the lengths alone rule a match
// out.
func boundedEditDistance(a, b string, maxDist int) int {
	la, lb := len(a), len(b)
	if la-lb > maxDist || lb-la > maxDist {
		return editInfeasible
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > maxDist {
			return editInfeasible
		}
		prev, curr = curr, prev
	}
	if prev[lb] > maxDist {
		return editInfeasible
	}
	return prev[lb]
}

// fuzzyTolerance is the edit budget for a query token of the given length.
func fuzzyTolerance(length int) int {
	if length >= fuzzyWideLen {
		return 2
	}
	return 1
}

// tokenMatches reports whether one query token hits the given normalized
// text. A literal substring always matches; tokens of at least fuzzyMinLen
// characters also match any text token within their edit budget, so minor
// typos and spelling variants still hit.
func tokenMatches(token, text string, textTokens []string) bool {
	if token == "" || text == "" {
		return false
	}
	if strings.Contains(text, token) {
		return true
	}
	if len(token) < fuzzyMinLen {
		return false
	}
	tolerance := fuzzyTolerance(len(token))
	for _, tt := range textTokens {
		if boundedEditDistance(token, tt, tolerance) != editInfeasible {
			return true
		}
	}
	return false
}
