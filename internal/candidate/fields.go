package candidate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// fieldChain lists the places a logical field may live, in priority order:
// top-level names first, then parsed-resume names, then the first
// work-history entry. Resolution is first-non-empty-wins; sources are never
// merged for scalar fields.
type fieldChain struct {
	keys        []string
	parsedKeys  []string
	historyKeys []string
}

// Field name tables. The console's ATS exports have gone through several
// naming conventions; every name that ever shipped stays matchable.
var (
	idChain = fieldChain{
		keys: []string{"id", "_id", "candidate_id", "candidateId", "uuid", "applicant_id"},
	}
	nameChain = fieldChain{
		keys:       []string{"name", "full_name", "candidate_name"},
		parsedKeys: []string{"name", "full_name"},
	}
	emailChain = fieldChain{
		keys:       []string{"email", "email_id", "email_address"},
		parsedKeys: []string{"email"},
	}
	roleChain = fieldChain{
		keys:        []string{"designation", "current_designation", "job_title", "title", "role", "current_role", "position"},
		parsedKeys:  []string{"designation", "job_title", "title", "role"},
		historyKeys: []string{"designation", "title", "position"},
	}
	summaryChain = fieldChain{
		keys:       []string{"summary", "headline", "profile_summary", "about"},
		parsedKeys: []string{"summary", "objective"},
	}
	resumeTextChain = fieldChain{
		keys:       []string{"resume_text", "resume"},
		parsedKeys: []string{"raw_text", "full_text", "text"},
	}
	experienceChain = fieldChain{
		keys:        []string{"experience_years", "experience", "total_experience", "years_of_experience", "exp_years"},
		parsedKeys:  []string{"experience_years", "total_experience", "experience"},
		historyKeys: []string{"experience_years", "years"},
	}
	currentCompChain = fieldChain{
		keys:       []string{"current_salary", "current_ctc", "salary", "compensation"},
		parsedKeys: []string{"current_salary", "salary"},
	}
	expectedCompChain = fieldChain{
		keys:       []string{"expected_salary", "expected_ctc", "salary_expectation"},
		parsedKeys: []string{"expected_salary"},
	}
	skillsChain = fieldChain{
		keys:       []string{"skills", "skill_set", "key_skills", "technical_skills", "technologies"},
		parsedKeys: []string{"skills", "skill_set", "key_skills"},
	}
	certificationsChain = fieldChain{
		keys:       []string{"certifications", "certificates", "certs"},
		parsedKeys: []string{"certifications", "certificates"},
	}
	companiesChain = fieldChain{
		keys:        []string{"current_company", "company", "current_employer", "employer", "organization", "previous_companies", "companies"},
		parsedKeys:  []string{"current_company", "company", "employer"},
		historyKeys: []string{"company", "company_name", "employer", "organization"},
	}
	currentLocationChain = fieldChain{
		keys:       []string{"current_location", "location", "city"},
		parsedKeys: []string{"current_location", "location", "city"},
	}
	preferredLocationChain = fieldChain{
		keys:       []string{"preferred_location", "location_preference", "desired_location"},
		parsedKeys: []string{"preferred_location"},
	}
	remoteFlagChain = fieldChain{
		keys:       []string{"remote", "is_remote", "open_to_remote", "remote_ok"},
		parsedKeys: []string{"open_to_remote", "remote"},
	}
	workModeChain = fieldChain{
		keys:       []string{"work_mode", "work_preference", "job_type"},
		parsedKeys: []string{"work_mode"},
	}
	degreeChain = fieldChain{
		keys:       []string{"degree", "highest_degree", "qualification"},
		parsedKeys: []string{"degree", "qualification"},
	}
	majorChain = fieldChain{
		keys:       []string{"major", "specialization", "field_of_study"},
		parsedKeys: []string{"major", "specialization"},
	}
	institutionChain = fieldChain{
		keys:       []string{"institution", "university", "college", "school"},
		parsedKeys: []string{"institution", "university", "college"},
	}
)

// parsedResumeKeys lists where a nested parsed-resume payload may live. The
// payload is sometimes stored as a JSON string by older importers.
var parsedResumeKeys = []string{"parsed_resume", "parsed_data", "resume_data"}

// workHistoryKeys lists the work-history list field names; only the first
// entry participates in field resolution.
var workHistoryKeys = []string{"work_history", "employment_history", "work_experience"}

// source binds one record to its parsed-resume and work-history fallbacks so
// chain lookups resolve them once per projection.
type source struct {
	rec     Record
	parsed  map[string]any
	history map[string]any
}

func newSource(r Record) source {
	p := parsedResume(r)
	return source{rec: r, parsed: p, history: firstHistoryEntry(r, p)}
}

// Identity resolves the record's stable identifier through the id synonym
// chain. Empty when the record carries none.
func Identity(r Record) string {
	return newSource(r).firstString(idChain)
}

// parsedResume extracts the nested parsed-resume object. A string value is
// decoded as JSON; invalid JSON means the payload is absent.
func parsedResume(r Record) map[string]any {
	for _, k := range parsedResumeKeys {
		switch v := r[k].(type) {
		case map[string]any:
			if len(v) > 0 {
				return v
			}
		case string:
			var m map[string]any
			if err := json.Unmarshal([]byte(v), &m); err == nil && len(m) > 0 {
				return m
			}
		}
	}
	return nil
}

// firstHistoryEntry returns the first work-history entry, checking the
// record itself before the parsed-resume payload.
func firstHistoryEntry(r Record, parsed map[string]any) map[string]any {
	for _, holder := range []map[string]any{r, parsed} {
		if holder == nil {
			continue
		}
		for _, k := range workHistoryKeys {
			list, ok := holder[k].([]any)
			if !ok || len(list) == 0 {
				continue
			}
			if entry, ok := list[0].(map[string]any); ok {
				return entry
			}
		}
	}
	return nil
}

// first returns the first present value along the chain.
func (s source) first(c fieldChain) any {
	scopes := []struct {
		holder map[string]any
		keys   []string
	}{
		{s.rec, c.keys},
		{s.parsed, c.parsedKeys},
		{s.history, c.historyKeys},
	}
	for _, scope := range scopes {
		if scope.holder == nil {
			continue
		}
		for _, k := range scope.keys {
			if v, ok := present(scope.holder[k]); ok {
				return v
			}
		}
	}
	return nil
}

// firstString resolves the chain to the first value that carries text.
func (s source) firstString(c fieldChain) string {
	if v := s.first(c); v != nil {
		return scalarString(v)
	}
	return ""
}

// collect gathers every present value along the chain. List-valued fields
// flatten all contributing sources instead of stopping at the first.
func (s source) collect(c fieldChain) []any {
	var out []any
	for _, scope := range []struct {
		holder map[string]any
		keys   []string
	}{
		{s.rec, c.keys},
		{s.parsed, c.parsedKeys},
		{s.history, c.historyKeys},
	} {
		if scope.holder == nil {
			continue
		}
		for _, k := range scope.keys {
			if v, ok := present(scope.holder[k]); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// present reports whether v holds a usable value. Empty strings, empty
// collections and nil are absent; zero numbers and false are values.
func present(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		trimmed := strings.TrimSpace(t)
		return trimmed, trimmed != ""
	case []any:
		return t, len(t) > 0
	case map[string]any:
		return t, len(t) > 0
	default:
		return v, true
	}
}

// scalarString renders a scalar value as text. Objects and lists render
// empty; they are handled by the list flattener instead.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return ""
	default:
		return ""
	}
}

func scalarStrings(values []any) []string {
	var out []string
	for _, v := range values {
		if s := scalarString(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstNumber resolves the chain first, then coerces. A chain whose winning
// value fails numeric coercion yields nil; later sources are not consulted.
func (s source) firstNumber(c fieldChain) *float64 {
	v := s.first(c)
	if v == nil {
		return nil
	}
	return CoerceNumber(v)
}

var remoteWorkModes = []string{"remote", "hybrid", "wfh", "work from home"}

// remoteFlag derives the remote/hybrid flag from the boolean-ish fields and
// the textual work-mode fields.
func (s source) remoteFlag() bool {
	for _, v := range s.collect(remoteFlagChain) {
		if truthy(v) {
			return true
		}
	}
	mode := Normalize(s.firstString(workModeChain))
	if mode == "" {
		return false
	}
	for _, m := range remoteWorkModes {
		if strings.Contains(mode, m) {
			return true
		}
	}
	return false
}

// educationHolderKeys lists where structured education data may live; the
// value may be a single object or a list of entries.
var educationHolderKeys = []string{"education", "educations", "education_details"}

var (
	eduDegreeKeys      = []string{"degree", "degree_name", "qualification"}
	eduMajorKeys       = []string{"major", "specialization", "field_of_study", "stream"}
	eduInstitutionKeys = []string{"institution", "university", "college", "school"}
)

func (s source) educationEntries() []map[string]any {
	var out []map[string]any
	for _, holder := range []map[string]any{s.rec, s.parsed} {
		if holder == nil {
			continue
		}
		for _, k := range educationHolderKeys {
			switch v := holder[k].(type) {
			case map[string]any:
				out = append(out, v)
			case []any:
				for _, e := range v {
					if m, ok := e.(map[string]any); ok {
						out = append(out, m)
					}
				}
			}
		}
	}
	return out
}

func pickStrings(m map[string]any, keys []string) []string {
	var out []string
	for _, k := range keys {
		if s := scalarString(m[k]); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// educationValues gathers degrees, majors and institutions from the
// top-level chains and from every structured education entry.
func (s source) educationValues() (degrees, majors, institutions []string) {
	degrees = scalarStrings(s.collect(degreeChain))
	majors = scalarStrings(s.collect(majorChain))
	institutions = scalarStrings(s.collect(institutionChain))
	for _, entry := range s.educationEntries() {
		degrees = append(degrees, pickStrings(entry, eduDegreeKeys)...)
		majors = append(majors, pickStrings(entry, eduMajorKeys)...)
		institutions = append(institutions, pickStrings(entry, eduInstitutionKeys)...)
	}
	return degrees, majors, institutions
}
