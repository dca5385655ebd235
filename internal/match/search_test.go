package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/types"
)

func resultNames(t *testing.T, results []Result) []string {
	t.Helper()
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Record["name"].(string))
	}
	return out
}

func TestSearch_EmptyCriteriaReturnsEveryoneScoredZero(t *testing.T) {
	records := []candidate.Record{
		{"name": "Asha", "skills": []any{"React"}},
		{"name": "Vik", "skills": []any{"Java"}},
	}

	results := Search("", types.SearchFilters{}, records)

	require.Len(t, results, 2)
	assert.Equal(t, []string{"Asha", "Vik"}, resultNames(t, results))
	for _, r := range results {
		assert.Equal(t, 0, r.Score, "no criteria means no signal, not full marks")
		assert.Equal(t, 0, r.Record["semantic_score"])
	}
}

func TestSearch_DoesNotMutateInputRecords(t *testing.T) {
	rec := candidate.Record{"name": "Asha", "skills": []any{"React"}}

	results := Search("react", types.SearchFilters{}, []candidate.Record{rec})

	require.Len(t, results, 1)
	assert.NotContains(t, rec, "semantic_score")
	assert.Len(t, rec, 2, "input record gained no keys")

	results[0].Record["note"] = "touched"
	assert.NotContains(t, rec, "note", "result records are copies")
}

func TestSearch_RepeatedCallsAgree(t *testing.T) {
	records := []candidate.Record{
		{"name": "Asha", "skills": []any{"React", "Node.js"}, "experience_years": 5},
		{"name": "Vik", "skills": []any{"Java"}, "experience_years": 9},
	}
	filters := types.SearchFilters{Experience: types.RangeFilter{Min: 3, Max: 7}}

	first := Search("react developer", filters, records)
	second := Search("react developer", filters, records)

	assert.Equal(t, first, second)
}

func TestSearch_StopWordsCarryNoSignal(t *testing.T) {
	records := []candidate.Record{
		{"name": "Asha", "skills": []any{"React"}},
		{"name": "Vik", "skills": []any{"Java"}},
	}

	bare := Search("react developer", types.SearchFilters{}, records)
	padded := Search("the react developer", types.SearchFilters{}, records)

	assert.Equal(t, resultNames(t, bare), resultNames(t, padded))
}

func TestSearch_RoleKeywordMustHitRoleText(t *testing.T) {
	accountant := candidate.Record{
		"name":            "Priya",
		"designation":     "Accountant",
		"current_company": "Manager Corp",
	}

	results := Search("manager", types.SearchFilters{}, []candidate.Record{accountant})

	assert.Empty(t, results, "a company name must not satisfy a role query")
}

func TestSearch_RoleKeywordAgainstActualRole(t *testing.T) {
	records := []candidate.Record{
		{"name": "Rohan", "designation": "Engineering Manager"},
		{"name": "Priya", "designation": "Accountant", "current_company": "Manager Corp"},
	}

	results := Search("manager", types.SearchFilters{}, records)

	assert.Equal(t, []string{"Rohan"}, resultNames(t, results))
}

func TestSearch_RoleGateSkipsCandidatesWithoutRoleText(t *testing.T) {
	noRole := candidate.Record{"name": "Asha", "skills": []any{"React", "Node.js"}}

	results := Search("react developer", types.SearchFilters{}, []candidate.Record{noRole})

	require.Len(t, results, 1)
	assert.Greater(t, results[0].Score, 0)
}

func TestSearch_TypoToleranceForLongTokens(t *testing.T) {
	records := []candidate.Record{{"name": "Dev", "skills": []any{"Kubernetes"}}}

	results := Search("Kuberentes", types.SearchFilters{}, records)

	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Score)
}

func TestSearch_NoFuzzForShortTokens(t *testing.T) {
	records := []candidate.Record{{"name": "Gopher", "skills": []any{"Go"}}}

	results := Search("Gp", types.SearchFilters{}, records)

	assert.Empty(t, results)
}

func TestSearch_ExperienceBoundsInclusive(t *testing.T) {
	records := []candidate.Record{
		{"name": "Three", "experience_years": 3},
		{"name": "Seven", "experience_years": 7},
		{"name": "Nine", "experience_years": 9},
		{"name": "Unknown"},
	}
	filters := types.SearchFilters{Experience: types.RangeFilter{Min: 3, Max: 7}}

	results := Search("", filters, records)

	assert.Equal(t, []string{"Three", "Seven"}, resultNames(t, results))

	all := Search("", types.SearchFilters{}, records)
	assert.Len(t, all, 4, "without bounds the missing value is no obstacle")
}

func TestSearch_CompanyFilterMatchesAnyTerm(t *testing.T) {
	records := []candidate.Record{{"name": "Ana", "current_company": "Initech"}}
	filters := types.SearchFilters{Companies: []string{"Globex", "Initech", "Hooli"}}

	results := Search("", filters, records)

	require.Len(t, results, 1)
	assert.Equal(t, 33, results[0].Score, "one of three terms matched")
}

func TestSearch_ActiveCertificationsOnly(t *testing.T) {
	records := []candidate.Record{
		{"name": "Expired", "certifications": []any{
			map[string]any{"name": "CKA", "expiry_date": "2020-01-01"},
		}},
		{"name": "Evergreen", "certifications": "PMP"},
	}

	active := Search("", types.SearchFilters{ActiveCertsOnly: true}, records)
	assert.Equal(t, []string{"Evergreen"}, resultNames(t, active))

	lax := Search("", types.SearchFilters{}, records)
	assert.Len(t, lax, 2)
}

func TestSearch_SalaryTypeSelectsExpectedFigure(t *testing.T) {
	records := []candidate.Record{
		{"name": "Asha", "current_salary": "90000", "expected_salary": "150000"},
	}

	capped := Search("", types.SearchFilters{
		Salary: types.RangeFilter{Max: 100000, Type: "expected"},
	}, records)
	assert.Empty(t, capped, "expected figure is over the cap")

	current := Search("", types.SearchFilters{
		Salary: types.RangeFilter{Max: 100000},
	}, records)
	assert.Equal(t, []string{"Asha"}, resultNames(t, current))
}

func TestSearch_UnparseableFilterBoundIsUnset(t *testing.T) {
	records := []candidate.Record{{"name": "Unknown"}}
	filters := types.SearchFilters{Experience: types.RangeFilter{Min: "abc"}}

	results := Search("", filters, records)

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Score)
}

func TestSearch_PreservesInputOrder(t *testing.T) {
	records := []candidate.Record{
		{"name": "Partial", "current_company": "Initech"},
		{"name": "Full", "previous_companies": []any{"Initech", "Globex"}},
	}
	filters := types.SearchFilters{Companies: []string{"Initech", "Globex"}}

	results := Search("", filters, records)

	require.Len(t, results, 2)
	assert.Equal(t, []string{"Partial", "Full"}, resultNames(t, results))
	assert.Less(t, results[0].Score, results[1].Score, "input order wins even when scores disagree")
}

func TestSearch_AttachesIdentityAndScore(t *testing.T) {
	records := []candidate.Record{
		{"candidate_id": "C-42", "name": "Asha", "skills": []any{"React"}},
	}

	results := Search("react", types.SearchFilters{}, records)

	require.Len(t, results, 1)
	out := results[0].Record
	assert.Equal(t, "C-42", out["id"])
	assert.Equal(t, results[0].Score, out["semantic_score"])
	assert.Equal(t, "Asha", out["name"], "original fields survive")
}

func TestSearch_EndToEndScenario(t *testing.T) {
	records := []candidate.Record{
		{"name": "Asha", "skills": []any{"React", "Node.js"}, "experience_years": 5, "current_location": "Bangalore"},
		{"name": "Vik", "skills": []any{"Java"}, "experience_years": 9, "current_location": "Pune"},
	}
	filters := types.SearchFilters{Experience: types.RangeFilter{Min: 3, Max: 7}}

	results := Search("react developer", filters, records)

	require.Len(t, results, 1)
	assert.Equal(t, "Asha", results[0].Record["name"])
	assert.Greater(t, results[0].Score, 0)
}
