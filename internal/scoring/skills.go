// Package scoring implements the per-dimension candidate scorers (skills,
// experience, location, certifications, education, professional development)
// and the weighted composite that combines them.
package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// SkillScore checks resume text against each required skill's acceptable
// phrasings. A skill counts as matched when any phrasing occurs in the text,
// or when every individual word of a multi-word skill appears somewhere.
// Returns matched/required and the list of matched skill names.
func SkillScore(resumeText string, criteria *types.JobCriteria) (float64, []string) {
	if len(criteria.RequiredSkills) == 0 {
		return 0, nil
	}

	text := strings.ToLower(resumeText)
	var matched []string

	for _, skill := range criteria.RequiredSkills {
		if skillMatches(text, skill, criteria.VariantsFor(skill)) {
			matched = append(matched, skill)
		}
	}

	return float64(len(matched)) / float64(len(criteria.RequiredSkills)), matched
}

func skillMatches(text, skill string, variants []string) bool {
	for _, variant := range variants {
		if v := strings.ToLower(strings.TrimSpace(variant)); v != "" && strings.Contains(text, v) {
			return true
		}
	}

	// Fallback for multi-word skills: every word present somewhere counts.
	words := strings.Fields(strings.ToLower(skill))
	if len(words) < 2 {
		return false
	}
	for _, word := range words {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}
