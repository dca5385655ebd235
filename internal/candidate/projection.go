// Package candidate projects heterogeneous applicant records into the
// normalized text and typed fields the matching engine consumes. Records
// arrive from several generations of ATS exports and resume parsers, so
// every logical field is resolved through an ordered chain of historical
// names with a parsed-resume fallback.
package candidate

import (
	"strings"
)

// Record is one applicant's aggregated ATS and parsed-resume data. Records
// have no fixed schema; the engine reads them through synonym chains and
// never mutates them.
type Record map[string]any

// Clone returns a shallow copy of the record. Nested values are shared.
func (r Record) Clone() Record {
	out := make(Record, len(r)+2)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Projection is the engine-facing view of one record: one normalized
// free-text blob for token search, a role-only text for the role-keyword
// gate, and the typed fields the structured filters compare against. All
// text fields are stored normalized.
type Projection struct {
	ID string

	SearchText   string
	SearchTokens []string
	RoleText     string

	Skills             []string
	CertificationNames []string
	Certifications     []Certification
	Companies          []string
	EducationText      string

	ExperienceYears *float64
	CurrentComp     *float64
	ExpectedComp    *float64

	CurrentLocation   string
	PreferredLocation string
	Remote            bool
}

// Project builds the projection for one record. Extraction never fails:
// malformed or missing fields degrade to zero values rather than errors.
func Project(r Record) Projection {
	src := newSource(r)

	roleParts := scalarStrings(src.collect(roleChain))
	skills := flattenAll(src.collect(skillsChain))
	certs := certifications(src.collect(certificationsChain))
	companies := flattenAll(src.collect(companiesChain))
	degrees, majors, institutions := src.educationValues()

	certNames := make([]string, 0, len(certs))
	for _, c := range certs {
		certNames = append(certNames, c.Name)
	}

	var education []string
	education = append(education, degrees...)
	education = append(education, majors...)
	education = append(education, institutions...)

	currentLocation := src.firstString(currentLocationChain)
	preferredLocation := src.firstString(preferredLocationChain)

	// The free-text blob concatenates every searchable surface of the
	// record; one Normalize call over the joined parts is equivalent to
	// normalizing each part.
	var blob []string
	blob = append(blob, src.firstString(nameChain), src.firstString(emailChain))
	blob = append(blob, roleParts...)
	blob = append(blob, src.firstString(summaryChain))
	blob = append(blob, src.firstString(experienceChain))
	blob = append(blob, src.firstString(resumeTextChain))
	blob = append(blob, skills...)
	blob = append(blob, certNames...)
	blob = append(blob, companies...)
	blob = append(blob, education...)
	blob = append(blob, currentLocation, preferredLocation)

	searchText := Normalize(strings.Join(blob, " "))

	return Projection{
		ID:                 src.firstString(idChain),
		SearchText:         searchText,
		SearchTokens:       strings.Fields(searchText),
		RoleText:           Normalize(strings.Join(roleParts, " ")),
		Skills:             normalizeAll(skills),
		CertificationNames: normalizeAll(certNames),
		Certifications:     certs,
		Companies:          normalizeAll(companies),
		EducationText:      Normalize(strings.Join(education, " ")),
		ExperienceYears:    src.firstNumber(experienceChain),
		CurrentComp:        src.firstNumber(currentCompChain),
		ExpectedComp:       src.firstNumber(expectedCompChain),
		CurrentLocation:    Normalize(currentLocation),
		PreferredLocation:  Normalize(preferredLocation),
		Remote:             src.remoteFlag(),
	}
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}
