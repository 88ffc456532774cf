package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	// maxPlausibleYears discards obviously wrong extractions, e.g. a year
	// range spanning an address or an ID number.
	maxPlausibleYears = 40

	aboveRangeScore    = 0.9
	oneYearShortScore  = 0.8
	earliestCareerYear = 1980
)

var (
	explicitYearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*years?`)
	yearRangePattern     = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*[-–to]+\s*(19\d{2}|20\d{2}|present|current)\b`)
	sinceYearPattern     = regexp.MustCompile(`\bsince\s+(19\d{2}|20\d{2})\b`)
)

// ExperienceScore extracts the candidate's years of experience and compares
// them against the job's [minimum, preferred] range: full credit inside the
// range, 0.9 above it, 0.8 within one year below the minimum, otherwise
// proportional to the minimum.
func ExperienceScore(resumeText string, criteria *types.JobCriteria) (float64, int) {
	years := DetectExperienceYears(resumeText)

	minYears := criteria.ExperienceRequirements.MinimumYears
	maxYears := criteria.ExperienceRequirements.PreferredYears
	if maxYears < minYears {
		maxYears = minYears
	}
	if minYears <= 0 {
		return 1.0, years
	}

	detected := float64(years)
	switch {
	case detected >= minYears && detected <= maxYears:
		return 1.0, years
	case detected > maxYears:
		return aboveRangeScore, years
	case detected >= minYears-1:
		return oneYearShortScore, years
	default:
		return detected / minYears, years
	}
}

// DetectExperienceYears applies every extraction pattern and returns the
// maximum plausible value found.
func DetectExperienceYears(resumeText string) int {
	text := strings.ToLower(resumeText)
	currentYear := time.Now().Year()
	best := 0

	for _, m := range explicitYearsPattern.FindAllStringSubmatch(text, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil {
			best = maxPlausible(best, years)
		}
	}

	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil || start < earliestCareerYear {
			continue
		}
		end := currentYear
		if m[2] != "present" && m[2] != "current" {
			if parsed, err := strconv.Atoi(m[2]); err == nil {
				end = parsed
			}
		}
		if end >= start {
			best = maxPlausible(best, end-start)
		}
	}

	for _, m := range sinceYearPattern.FindAllStringSubmatch(text, -1) {
		if start, err := strconv.Atoi(m[1]); err == nil && start >= earliestCareerYear && start <= currentYear {
			best = maxPlausible(best, currentYear-start)
		}
	}

	return best
}

func maxPlausible(best, candidate int) int {
	if candidate > best && candidate <= maxPlausibleYears {
		return candidate
	}
	return best
}
