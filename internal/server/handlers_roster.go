package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/roster"
	"github.com/jonathan/talent-search/internal/schemas"
	"github.com/jonathan/talent-search/internal/store"
	"github.com/jonathan/talent-search/internal/types"
)

// RosterStore is the slice of the store the roster and search handlers
// need. *store.Store satisfies it; tests substitute fakes.
type RosterStore interface {
	SaveCandidates(ctx context.Context, records []candidate.Record, source string) ([]uuid.UUID, error)
	ReplaceRoster(ctx context.Context, records []candidate.Record, source string) error
	ListCandidates(ctx context.Context) ([]store.StoredCandidate, error)
	Records(ctx context.Context) ([]candidate.Record, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*store.StoredCandidate, error)
	DeleteCandidate(ctx context.Context, id uuid.UUID) error
	CountCandidates(ctx context.Context) (int, error)
}

// handleRosterLoad bulk-loads candidate records into the store. Records are
// validated against the candidate schema before anything is written; a
// replace request swaps the whole roster atomically.
func (s *Server) handleRosterLoad(w http.ResponseWriter, r *http.Request) {
	var req types.RosterLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, firstValidationError(err))
		return
	}

	if err := validateRosterRecords(req.Candidates); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	records := roster.Prepare(req.Candidates)

	if req.Replace {
		if err := s.roster.ReplaceRoster(r.Context(), records, req.Source); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to replace roster: "+err.Error())
			return
		}
		count, err := s.roster.CountCandidates(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to count roster: "+err.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"loaded": len(records),
			"total":  count,
		})
		return
	}

	ids, err := s.roster.SaveCandidates(r.Context(), records, req.Source)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save candidates: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"loaded": len(ids),
		"ids":    ids,
	})
}

// handleRosterList returns every stored roster row in insertion order.
func (s *Server) handleRosterList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.roster.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list roster: "+err.Error())
		return
	}
	if rows == nil {
		rows = []store.StoredCandidate{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": rows,
		"total":      len(rows),
	})
}

// handleRosterDelete removes one roster row by id.
func (s *Server) handleRosterDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate id")
		return
	}

	row, err := s.roster.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to look up candidate: "+err.Error())
		return
	}
	if row == nil {
		notFound := &ErrCandidateNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.roster.DeleteCandidate(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete candidate: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id.String()})
}

// validateRosterRecords checks every record against the candidate schema.
// A missing schema file skips validation rather than blocking loads.
func validateRosterRecords(records []candidate.Record) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/candidate.schema.json")
	if schemaPath == "" {
		return nil
	}

	for i, rec := range records {
		if err := schemas.ValidateDocument(schemaPath, rec); err != nil {
			return fmt.Errorf("candidate %d failed schema validation: %w", i, err)
		}
	}
	return nil
}
