// Package ranking applies tie-break bonuses, assigns duplicate-aware ranks,
// and merges new score records into persisted results across incremental
// runs.
package ranking

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Bonus sizes applied on top of the composite score.
const (
	filenameSkillBonus   = 0.05 // per skill name appearing in the filename
	certificationBonus   = 0.10 // any required certification matched
	leadershipUnitBonus  = 0.02 // per leadership keyword found
	leadershipBonusLimit = 0.10
)

var leadershipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bled\b`),
	regexp.MustCompile(`\blead(er|ership)?\b`),
	regexp.MustCompile(`\bmanaged\b`),
	regexp.MustCompile(`\bmentored\b`),
	regexp.MustCompile(`\bsupervised\b`),
	regexp.MustCompile(`\bhead of\b`),
	regexp.MustCompile(`\bdirector\b`),
	regexp.MustCompile(`\bprincipal\b`),
	regexp.MustCompile(`\barchitected\b`),
}

// ApplyBonuses computes the adjusted score for one candidate: composite score
// plus the filename-skill, certification and leadership bonuses, capped at
// 1.0.
func ApplyBonuses(score *types.CandidateScore, resumeText string, criteria *types.JobCriteria) {
	adjusted := score.FinalScore +
		filenameBonus(score.FilePath, criteria.RequiredSkills) +
		certBonus(score) +
		leadershipBonus(resumeText)
	if adjusted > 1.0 {
		adjusted = 1.0
	}
	score.AdjustedScore = adjusted
}

// filenameBonus rewards resumes whose filename names a required skill
// exactly, a strong signal of a targeted submission.
func filenameBonus(path string, requiredSkills []string) float64 {
	name := strings.ToLower(filepath.Base(path))
	bonus := 0.0
	for _, skill := range requiredSkills {
		if s := strings.ToLower(strings.TrimSpace(skill)); s != "" && strings.Contains(name, s) {
			bonus += filenameSkillBonus
		}
	}
	return bonus
}

func certBonus(score *types.CandidateScore) float64 {
	if len(score.MatchedCertifications) > 0 {
		return certificationBonus
	}
	return 0
}

func leadershipBonus(resumeText string) float64 {
	text := strings.ToLower(resumeText)
	bonus := 0.0
	for _, pattern := range leadershipPatterns {
		if pattern.MatchString(text) {
			bonus += leadershipUnitBonus
		}
	}
	if bonus > leadershipBonusLimit {
		bonus = leadershipBonusLimit
	}
	return bonus
}
