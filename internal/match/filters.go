package match

import (
	"strings"
	"time"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/types"
)

// activeFilters is the compiled, per-call form of the filter object: bounds
// coerced, terms normalized, empty leaves dropped. A leaf that survives
// compilation is an active criterion; everything else is no constraint.
type activeFilters struct {
	expLo, expHi *float64
	salLo, salHi *float64
	wantExpected bool

	locCurrent   string
	locPreferred string
	remote       bool

	keywords        []string
	companies       []string
	designations    []string
	eduDegrees      []string
	eduMajors       []string
	eduInstitutions []string
	certifications  []string
	activeCertsOnly bool
}

func compileFilters(f types.SearchFilters) activeFilters {
	return activeFilters{
		expLo:           candidate.CoerceNumber(f.Experience.Min),
		expHi:           candidate.CoerceNumber(f.Experience.Max),
		salLo:           candidate.CoerceNumber(f.Salary.Min),
		salHi:           candidate.CoerceNumber(f.Salary.Max),
		wantExpected:    strings.EqualFold(strings.TrimSpace(f.Salary.Type), "expected"),
		locCurrent:      candidate.Normalize(f.Location.Current),
		locPreferred:    candidate.Normalize(f.Location.Preferred),
		remote:          f.Location.Remote,
		keywords:        normalizeTerms(f.Keywords),
		companies:       normalizeTerms(f.Companies),
		designations:    normalizeTerms(f.Designations),
		eduDegrees:      normalizeTerms(f.Education.Degrees),
		eduMajors:       normalizeTerms(f.Education.Majors),
		eduInstitutions: normalizeTerms(f.Education.Institutions),
		certifications:  normalizeTerms(f.Certifications),
		activeCertsOnly: f.ActiveCertsOnly,
	}
}

// normalizeTerms normalizes filter terms and drops the ones that normalize
// away entirely; a term with no searchable characters is no constraint.
func normalizeTerms(terms []string) []string {
	var out []string
	for _, t := range terms {
		if n := candidate.Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// passesFilters applies every hard gate. Each gate is a no-op when its
// filter leaf is inactive.
func passesFilters(p candidate.Projection, f activeFilters, now time.Time) bool {
	if !inRange(p.ExperienceYears, f.expLo, f.expHi) {
		return false
	}
	comp := p.CurrentComp
	if f.wantExpected {
		comp = p.ExpectedComp
	}
	if !inRange(comp, f.salLo, f.salHi) {
		return false
	}
	if f.locCurrent != "" && !strings.Contains(p.CurrentLocation, f.locCurrent) {
		return false
	}
	if f.locPreferred != "" && !strings.Contains(p.PreferredLocation, f.locPreferred) {
		return false
	}
	if f.remote && !p.Remote {
		return false
	}
	if len(f.keywords) > 0 && countListMatches(f.keywords, p.Skills) == 0 {
		return false
	}
	if len(f.companies) > 0 && countListMatches(f.companies, p.Companies) == 0 {
		return false
	}
	if len(f.designations) > 0 && countTextMatches(f.designations, p.RoleText) == 0 {
		return false
	}
	if len(f.eduDegrees) > 0 && countTextMatches(f.eduDegrees, p.EducationText) == 0 {
		return false
	}
	if len(f.eduMajors) > 0 && countTextMatches(f.eduMajors, p.EducationText) == 0 {
		return false
	}
	if len(f.eduInstitutions) > 0 && countTextMatches(f.eduInstitutions, p.EducationText) == 0 {
		return false
	}
	if len(f.certifications) > 0 && countListMatches(f.certifications, p.CertificationNames) == 0 {
		return false
	}
	if f.activeCertsOnly && !hasActiveCert(p.Certifications, now) {
		return false
	}
	return true
}

// inRange checks v against inclusive bounds. With no active bound every
// value passes; with any active bound a missing value fails.
func inRange(v, lo, hi *float64) bool {
	if lo == nil && hi == nil {
		return true
	}
	if v == nil {
		return false
	}
	if lo != nil && *v < *lo {
		return false
	}
	if hi != nil && *v > *hi {
		return false
	}
	return true
}

// countListMatches counts terms that appear inside at least one of the
// candidate's list values. Terms and values are already normalized.
func countListMatches(terms, values []string) int {
	n := 0
	for _, term := range terms {
		for _, v := range values {
			if strings.Contains(v, term) {
				n++
				break
			}
		}
	}
	return n
}

// countTextMatches counts terms contained in the candidate text.
func countTextMatches(terms []string, text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

func hasActiveCert(certs []candidate.Certification, now time.Time) bool {
	for _, c := range certs {
		if c.Active(now) {
			return true
		}
	}
	return false
}
