package match

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/query"
	"github.com/jonathan/talent-search/internal/types"
)

// Result is one qualifying candidate. Record is a shallow copy of the input
// record with the identity normalized under "id" and the relevance score
// attached under "semantic_score"; Score repeats the score for callers that
// sort or threshold without digging into the map.
type Result struct {
	Record candidate.Record
	Score  int
}

// Search evaluates every candidate against the query and filters and
// returns the qualifying subset in input order. It is a pure function of
// its inputs: no caching between calls, no mutation of the supplied records,
// and no I/O. Sorting and pagination are the caller's concern.
func Search(queryText string, filters types.SearchFilters, records []candidate.Record) []Result {
	q := query.Analyze(queryText)
	f := compileFilters(filters)
	now := time.Now()

	results := make([]Result, 0, len(records))
	for _, rec := range records {
		p := candidate.Project(rec)
		score, ok := evaluate(p, q, f, now)
		if !ok {
			continue
		}
		out := rec.Clone()
		if p.ID != "" {
			out["id"] = p.ID
		}
		out["semantic_score"] = score
		results = append(results, Result{Record: out, Score: score})
	}
	return results
}

// evaluate runs the gates in order and scores a candidate that survives
// them. The boolean result is false when any gate rejected.
func evaluate(p candidate.Projection, q query.Analysis, f activeFilters, now time.Time) (int, bool) {
	matched := 0
	for _, tok := range q.Tokens {
		if tokenMatches(tok, p.SearchText, p.SearchTokens) {
			matched++
		}
	}

	if q.HasRoleQuery && p.RoleText != "" && !roleMatches(q.RoleTokens, p.RoleText) {
		return 0, false
	}
	if matched < tokenNeed(len(q.Tokens)) {
		return 0, false
	}
	if !passesFilters(p, f, now) {
		return 0, false
	}
	return computeScore(p, q, f, matched), true
}

// roleMatches reports whether any role keyword from the query matches the
// candidate's role text. For candidates that carry a role, matching only the
// full blob is not enough: a query for "manager" must not qualify an
// accountant whose employer is named "Manager Corp". Candidates with no role
// text at all are not gated; many ATS exports lack a designation entirely.
func roleMatches(roleTokens []string, roleText string) bool {
	textTokens := strings.Fields(roleText)
	for _, tok := range roleTokens {
		if tokenMatches(tok, roleText, textTokens) {
			return true
		}
	}
	return false
}

// tokenNeed is the minimum number of query tokens that must match anywhere
// in the candidate text. Queries of one or two tokens must match fully;
// longer queries tolerate partial coverage but never below two tokens.
func tokenNeed(total int) int {
	if total <= 2 {
		return total
	}
	need := int(math.Ceil(float64(total) * 0.6))
	if need < 2 {
		need = 2
	}
	return need
}
