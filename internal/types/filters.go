package types

// SearchFilters is the structured filter object the console sends alongside
// the free-text query. Every leaf is optional; an absent or empty leaf means
// "no constraint", never "constraint with empty value". All list-valued
// filters are OR-matched.
type SearchFilters struct {
	Experience      RangeFilter     `json:"experience,omitempty"`
	Salary          RangeFilter     `json:"salary,omitempty"`
	Location        LocationFilter  `json:"location,omitempty"`
	Keywords        []string        `json:"keywords,omitempty"`
	Companies       []string        `json:"companies,omitempty"`
	Designations    []string        `json:"designations,omitempty"`
	Education       EducationFilter `json:"education,omitempty"`
	Certifications  []string        `json:"certifications,omitempty"`
	ActiveCertsOnly bool            `json:"activeCertsOnly,omitempty"`
}

// RangeFilter bounds a numeric candidate field. Bounds arrive from the
// console as numbers or strings and are coerced with the same strip-then-
// parse rule as candidate fields; a bound that fails to parse behaves as
// unset. Type selects a variant where the field has one (salary: "current"
// or "expected").
type RangeFilter struct {
	Min  any    `json:"min,omitempty"`
	Max  any    `json:"max,omitempty"`
	Type string `json:"type,omitempty"`
}

// LocationFilter constrains where the candidate is or wants to be. Current
// and Preferred are substring matches after normalization; Remote requires
// the candidate's derived remote flag.
type LocationFilter struct {
	Current   string `json:"current,omitempty"`
	Preferred string `json:"preferred,omitempty"`
	Remote    bool   `json:"remote,omitempty"`
}

// EducationFilter OR-matches degrees, majors and institutions against the
// candidate's combined education text.
type EducationFilter struct {
	Degrees      []string `json:"degrees,omitempty"`
	Majors       []string `json:"majors,omitempty"`
	Institutions []string `json:"institutions,omitempty"`
}
