package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-search/internal/candidate"
)

// SearchRequest is the body of a search call. Candidates may be supplied
// inline; when omitted the server evaluates the stored roster.
type SearchRequest struct {
	Query      string             `json:"query"`
	Filters    SearchFilters      `json:"filters"`
	Candidates []candidate.Record `json:"candidates,omitempty"`
	SortBy     string             `json:"sort_by,omitempty" validate:"omitempty,oneof=score none"`
	Limit      int                `json:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
}

// SearchResponse carries the scored matches plus the counts the console
// shows next to the result list.
type SearchResponse struct {
	Matches   []candidate.Record `json:"matches"`
	Total     int                `json:"total"`
	Evaluated int                `json:"evaluated"`
}

// RosterLoadRequest is the body of a bulk roster load.
type RosterLoadRequest struct {
	Candidates []candidate.Record `json:"candidates" validate:"required,min=1"`
	Source     string             `json:"source,omitempty"`
	Replace    bool               `json:"replace,omitempty"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RosterLoadRequest using the validator.
func (r *RosterLoadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
