// Package query turns a free-text search query into the token list and role
// intent the matching engine consumes.
package query

import (
	"github.com/jonathan/talent-search/internal/candidate"
)

// stopWords are dropped during tokenization. They carry no matching signal
// and would otherwise inflate the token-coverage requirement.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "of": true, "in": true, "on": true,
	"at": true, "for": true, "with": true, "to": true, "from": true,
	"is": true, "are": true, "was": true, "be": true, "as": true,
	"year": true, "years": true, "yr": true, "yrs": true,
	"experience": true, "exp": true,
	"looking": true, "need": true, "needed": true, "required": true,
	"who": true, "having": true, "must": true, "should": true,
}

// roleKeywords are job-role tokens. A query containing any of them requires
// the candidate's role text, not just any field, to match one; otherwise a
// search for "manager" would match anyone who once worked at "Manager Corp".
var roleKeywords = map[string]bool{
	"engineer": true, "developer": true, "manager": true, "analyst": true,
	"architect": true, "consultant": true, "lead": true, "designer": true,
	"administrator": true, "recruiter": true, "executive": true,
	"officer": true, "intern": true, "qa": true, "tester": true,
	"specialist": true,
}

// Analysis is the processed form of one free-text query. Tokens carries the
// content tokens used for coverage matching; RoleTokens carries the role
// keywords, which gate against role text instead of counting toward
// coverage.
type Analysis struct {
	Tokens       []string
	RoleTokens   []string
	HasRoleQuery bool
}

// Analyze tokenizes the query with the engine's normalization contract,
// drops stop-words and splits off role keywords. An empty query yields an
// empty analysis, which every gate treats as "no text constraint".
func Analyze(text string) Analysis {
	var a Analysis
	for _, tok := range candidate.Tokens(text) {
		if stopWords[tok] {
			continue
		}
		if roleKeywords[tok] {
			a.RoleTokens = append(a.RoleTokens, tok)
			continue
		}
		a.Tokens = append(a.Tokens, tok)
	}
	a.HasRoleQuery = len(a.RoleTokens) > 0
	return a
}

// Empty reports whether the query carried no usable tokens.
func (a Analysis) Empty() bool {
	return len(a.Tokens) == 0
}
