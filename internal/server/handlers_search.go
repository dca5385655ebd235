package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/match"
	"github.com/jonathan/talent-search/internal/types"
)

// handleSearch runs the matching engine over the supplied candidates, or
// over the stored roster when the request carries none. Sorting and limiting
// happen here, after the engine returns: the engine itself preserves input
// order and never paginates.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, firstValidationError(err))
		return
	}

	records := req.Candidates
	if len(records) == 0 {
		var err error
		records, err = s.roster.Records(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load roster: "+err.Error())
			return
		}
	}

	results := match.Search(req.Query, req.Filters, records)

	if req.SortBy == "score" {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	matches := make([]candidate.Record, 0, len(results))
	for _, res := range results {
		matches = append(matches, res.Record)
	}

	s.jsonResponse(w, http.StatusOK, types.SearchResponse{
		Matches:   matches,
		Total:     len(matches),
		Evaluated: len(records),
	})
}
