package scoring

import (
	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	pdMultiplierThreshold = 0.7
	pdMultiplier          = 1.05
)

// ScoreCandidate runs every dimension scorer over one resume and combines
// them into a candidate score record. AdjustedScore starts equal to
// FinalScore; the ranking stage applies bonuses on top of it.
func ScoreCandidate(filePath, resumeText string, criteria *types.JobCriteria) *types.CandidateScore {
	score := &types.CandidateScore{FilePath: filePath}

	score.SkillScore, score.MatchedSkills = SkillScore(resumeText, criteria)
	score.ExperienceScore, score.DetectedYears = ExperienceScore(resumeText, criteria)
	score.LocationScore = LocationScore(resumeText, criteria)
	score.CertificationScore, score.MatchedCertifications = CertificationScore(resumeText, criteria)
	score.EducationScore = EducationScore(resumeText, criteria)
	score.ProfDevScore = ProfessionalDevelopmentScore(resumeText)

	score.FinalScore = CompositeScore(score, criteria.ScoringWeights.Normalized())
	score.AdjustedScore = score.FinalScore
	return score
}

// CompositeScore is the weighted sum of the five primary sub-scores. A
// professional-development score above 0.7 multiplies the result by 1.05,
// capped at 1.0.
func CompositeScore(score *types.CandidateScore, weights types.ScoringWeights) float64 {
	final := weights.Skills*score.SkillScore +
		weights.Experience*score.ExperienceScore +
		weights.Location*score.LocationScore +
		weights.Certifications*score.CertificationScore +
		weights.Education*score.EducationScore

	if score.ProfDevScore > pdMultiplierThreshold {
		final *= pdMultiplier
	}
	if final > 1.0 {
		final = 1.0
	}
	if final < 0 {
		final = 0
	}
	return final
}
