package match

import (
	"math"
	"strings"

	"github.com/jonathan/talent-search/internal/candidate"
	"github.com/jonathan/talent-search/internal/query"
)

// Category weights for the composite relevance score. These are tuned
// constants; changing one shifts how much of the 0-100 range that category
// can claim when it is active.
const (
	freeTextWeight       = 35
	skillTokenWeight     = 15
	keywordWeight        = 25
	designationWeight    = 10
	companyWeight        = 8
	certificationWeight  = 8
	eduDegreeWeight      = 6
	eduMajorWeight       = 5
	eduInstitutionWeight = 6

	locationCurrentWeight   = 6
	locationPreferredWeight = 5
	remoteWeight            = 4
	experienceWeight        = 5
	salaryWeight            = 4
	activeCertsWeight       = 3
)

// scoreAccumulator builds the weighted relevance score for one candidate.
// Only categories active for the request are added, so a sparse request is
// not penalized for criteria it never set.
type scoreAccumulator struct {
	score float64
	max   float64
}

// add records one category: weight scaled by the fraction matched.
func (a *scoreAccumulator) add(weight int, ratio float64) {
	a.max += float64(weight)
	a.score += float64(weight) * ratio
}

// value renders the final integer score. No active categories means no
// signal, which scores zero rather than full marks.
func (a *scoreAccumulator) value() int {
	if a.max == 0 {
		return 0
	}
	v := int(math.Round(100 * a.score / a.max))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// computeScore runs the weighted categories for a candidate that has passed
// every gate. textMatched is the fuzzy token hit count already computed for
// the coverage gate.
func computeScore(p candidate.Projection, q query.Analysis, f activeFilters, textMatched int) int {
	var acc scoreAccumulator

	if !q.Empty() {
		total := float64(len(q.Tokens))
		acc.add(freeTextWeight, float64(textMatched)/total)

		skillsText := strings.Join(p.Skills, " ")
		skillsTokens := strings.Fields(skillsText)
		hits := 0
		for _, tok := range q.Tokens {
			if tokenMatches(tok, skillsText, skillsTokens) {
				hits++
			}
		}
		acc.add(skillTokenWeight, float64(hits)/total)
	}

	if n := len(f.keywords); n > 0 {
		acc.add(keywordWeight, float64(countListMatches(f.keywords, p.Skills))/float64(n))
	}
	if n := len(f.designations); n > 0 {
		acc.add(designationWeight, float64(countTextMatches(f.designations, p.RoleText))/float64(n))
	}
	if n := len(f.companies); n > 0 {
		acc.add(companyWeight, float64(countListMatches(f.companies, p.Companies))/float64(n))
	}
	if n := len(f.certifications); n > 0 {
		acc.add(certificationWeight, float64(countListMatches(f.certifications, p.CertificationNames))/float64(n))
	}
	if n := len(f.eduDegrees); n > 0 {
		acc.add(eduDegreeWeight, float64(countTextMatches(f.eduDegrees, p.EducationText))/float64(n))
	}
	if n := len(f.eduMajors); n > 0 {
		acc.add(eduMajorWeight, float64(countTextMatches(f.eduMajors, p.EducationText))/float64(n))
	}
	if n := len(f.eduInstitutions); n > 0 {
		acc.add(eduInstitutionWeight, float64(countTextMatches(f.eduInstitutions, p.EducationText))/float64(n))
	}

	// Boolean categories: the gates already guaranteed satisfaction, so an
	// active one contributes its full weight.
	if f.locCurrent != "" {
		acc.add(locationCurrentWeight, 1)
	}
	if f.locPreferred != "" {
		acc.add(locationPreferredWeight, 1)
	}
	if f.remote {
		acc.add(remoteWeight, 1)
	}
	if f.expLo != nil || f.expHi != nil {
		acc.add(experienceWeight, 1)
	}
	if f.salLo != nil || f.salHi != nil {
		acc.add(salaryWeight, 1)
	}
	if f.activeCertsOnly {
		acc.add(activeCertsWeight, 1)
	}

	return acc.value()
}
