package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const remotePartialScore = 0.8

// LocationScore gives full credit when the job location appears in the
// resume, partial credit when either side mentions remote work, and zero
// otherwise. Jobs flagged location-flexible score everyone at 1.0.
func LocationScore(resumeText string, criteria *types.JobCriteria) float64 {
	if criteria.LocationFlexible {
		return 1.0
	}

	location := strings.ToLower(strings.TrimSpace(criteria.Location))
	if location == "" {
		return 1.0
	}

	text := strings.ToLower(resumeText)
	if strings.Contains(text, location) {
		return 1.0
	}
	if strings.Contains(text, "remote") || strings.Contains(location, "remote") {
		return remotePartialScore
	}
	return 0
}
