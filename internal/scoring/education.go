package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Education levels, ordered. Doctorate and professional degrees share the top
// level.
const (
	levelHighSchool = 1
	levelAssociate  = 2
	levelBachelor   = 3
	levelMaster     = 4
	levelDoctorate  = 5
)

const (
	nonStrictOneBelowScore = 0.8
	nonStrictFloorScore    = 0.3
)

// educationKeywords maps resume phrasings to a level. Longer phrasings are
// listed before their substrings so the table reads top-down; detection takes
// the maximum level found, so ordering does not affect the result.
var educationKeywords = []struct {
	keyword string
	level   int
}{
	{"ph.d", levelDoctorate},
	{"phd", levelDoctorate},
	{"doctorate", levelDoctorate},
	{"doctoral", levelDoctorate},
	{"m.d.", levelDoctorate},
	{"j.d.", levelDoctorate},
	{"master", levelMaster},
	{"m.s.", levelMaster},
	{"m.sc", levelMaster},
	{"msc", levelMaster},
	{"mba", levelMaster},
	{"m.tech", levelMaster},
	{"bachelor", levelBachelor},
	{"b.s.", levelBachelor},
	{"b.sc", levelBachelor},
	{"bsc", levelBachelor},
	{"b.tech", levelBachelor},
	{"b.e.", levelBachelor},
	{"undergraduate", levelBachelor},
	{"associate", levelAssociate},
	{"diploma", levelAssociate},
	{"high school", levelHighSchool},
	{"secondary school", levelHighSchool},
	{"ged", levelHighSchool},
}

var educationLevelNames = map[string]int{
	"high school": levelHighSchool,
	"high_school": levelHighSchool,
	"associate":   levelAssociate,
	"bachelor":    levelBachelor,
	"master":      levelMaster,
	"doctorate":   levelDoctorate,
	"phd":         levelDoctorate,
}

// EducationScore compares the highest education level mentioned in the resume
// against the job's minimum. Strict requirements give full credit only
// at-or-above the minimum and a linear fraction below it; non-strict
// requirements still give 0.8 one level short, with a 0.3 floor further down.
func EducationScore(resumeText string, criteria *types.JobCriteria) float64 {
	required := requiredEducationLevel(criteria.EducationRequirements.MinimumLevel)
	if required == 0 {
		return 1.0
	}

	detected := DetectEducationLevel(resumeText)

	if criteria.EducationRequirements.Strict {
		if detected >= required {
			return 1.0
		}
		return float64(detected) / float64(required)
	}

	switch {
	case detected >= required:
		return 1.0
	case detected == required-1:
		return nonStrictOneBelowScore
	default:
		return nonStrictFloorScore
	}
}

// DetectEducationLevel returns the highest level mentioned in the text, or 0
// when no education keyword is found.
func DetectEducationLevel(resumeText string) int {
	text := strings.ToLower(resumeText)
	highest := 0
	for _, entry := range educationKeywords {
		if entry.level > highest && strings.Contains(text, entry.keyword) {
			highest = entry.level
		}
	}
	return highest
}

func requiredEducationLevel(minimum string) int {
	return educationLevelNames[strings.ToLower(strings.TrimSpace(minimum))]
}
