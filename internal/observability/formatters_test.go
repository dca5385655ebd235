package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/match"
	"github.com/jonathan/talent-search/internal/query"
	"github.com/jonathan/talent-search/internal/types"
)

func TestPrintQueryAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQueryAnalysis("senior react developer", query.Analyze("senior react developer"))

	out := buf.String()
	assert.Contains(t, out, "QUERY ANALYSIS")
	assert.Contains(t, out, "senior, react")
	assert.Contains(t, out, "developer (role gate active)")
}

func TestPrintQueryAnalysis_EmptyQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQueryAnalysis("", query.Analyze(""))

	out := buf.String()
	assert.Contains(t, out, "(none)")
}

func TestPrintFilterSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFilterSummary(types.SearchFilters{
		Experience: types.RangeFilter{Min: 3, Max: 7},
		Keywords:   []string{"react", "node"},
		Location:   types.LocationFilter{Remote: true},
	})

	out := buf.String()
	assert.Contains(t, out, "FILTERS")
	assert.Contains(t, out, "3 to 7")
	assert.Contains(t, out, "react, node")
	assert.Contains(t, out, "Remote:")
}

func TestPrintFilterSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFilterSummary(types.SearchFilters{})

	assert.Contains(t, buf.String(), "(no structured filters)")
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResults([]match.Result{
		{Record: candidate.Record{"name": "Asha"}, Score: 82},
		{Record: candidate.Record{"email": "vik@example.com"}, Score: 41},
		{Record: candidate.Record{}, Score: 12},
	}, 5)

	out := buf.String()
	assert.Contains(t, out, "SEARCH RESULTS")
	assert.Contains(t, out, "Evaluated: 5   Matched: 3")
	assert.Contains(t, out, "82  Asha")
	assert.Contains(t, out, "41  vik@example.com")
	assert.Contains(t, out, "12  (unnamed candidate)")
}

func TestPrintResults_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]match.Result, 14)
	for i := range results {
		results[i] = match.Result{Record: candidate.Record{"name": "c"}, Score: 50}
	}
	p.PrintResults(results, 20)

	assert.Contains(t, buf.String(), "... and 4 more")
}
