package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// neutralCertScore is returned when the job requires no certifications, so
// the certification dimension neither rewards nor penalizes anyone.
const neutralCertScore = 0.5

var parentheticalPattern = regexp.MustCompile(`\(([^)]+)\)`)

// CertificationScore matches each required certification by its literal name
// or by an abbreviation taken from parenthetical text in the requirement
// string, e.g. "Amazon Web Services (AWS)" also matches on "aws".
func CertificationScore(resumeText string, criteria *types.JobCriteria) (float64, []string) {
	if len(criteria.RequiredCertifications) == 0 {
		return neutralCertScore, nil
	}

	text := strings.ToLower(resumeText)
	var matched []string

	for _, cert := range criteria.RequiredCertifications {
		if certificationMatches(text, cert) {
			matched = append(matched, cert)
		}
	}

	return float64(len(matched)) / float64(len(criteria.RequiredCertifications)), matched
}

func certificationMatches(text, cert string) bool {
	name := strings.ToLower(strings.Join(strings.Fields(parentheticalPattern.ReplaceAllString(cert, "")), " "))
	if name != "" && strings.Contains(text, name) {
		return true
	}
	for _, m := range parentheticalPattern.FindAllStringSubmatch(cert, -1) {
		if abbr := strings.ToLower(strings.TrimSpace(m[1])); abbr != "" && strings.Contains(text, abbr) {
			return true
		}
	}
	return false
}
