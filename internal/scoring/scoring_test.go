package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criteriaWithSkills(skills []string, variants map[string][]string) *types.JobCriteria {
	return &types.JobCriteria{
		RequiredSkills: skills,
		SkillVariants:  variants,
		ScoringWeights: types.DefaultScoringWeights(),
	}
}

func TestSkillScore_VariantMatch(t *testing.T) {
	criteria := criteriaWithSkills(
		[]string{"Kubernetes", "Go"},
		map[string][]string{
			"Kubernetes": {"k8s"},
			"Go":         {"golang"},
		},
	)

	score, matched := SkillScore("Deployed services on k8s clusters.", criteria)

	assert.InDelta(t, 0.5, score, 1e-9)
	assert.Equal(t, []string{"Kubernetes"}, matched)
}

func TestSkillScore_AllWordsFallbackForMultiWordSkill(t *testing.T) {
	criteria := criteriaWithSkills([]string{"machine learning"}, nil)

	score, matched := SkillScore(
		"Built learning pipelines on a machine cluster.", criteria)

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, []string{"machine learning"}, matched)
}

func TestSkillScore_NoFallbackForSingleWordSkill(t *testing.T) {
	criteria := criteriaWithSkills([]string{"Rust"}, nil)

	score, matched := SkillScore("Experienced Go developer.", criteria)

	assert.Zero(t, score)
	assert.Empty(t, matched)
}

func TestSkillScore_NoRequiredSkills(t *testing.T) {
	score, matched := SkillScore("anything", criteriaWithSkills(nil, nil))
	assert.Zero(t, score)
	assert.Empty(t, matched)
}

func TestCertificationScore_LiteralAndAbbreviation(t *testing.T) {
	criteria := &types.JobCriteria{
		RequiredCertifications: []string{
			"Amazon Web Services (AWS) Solutions Architect",
			"Project Management Professional (PMP)",
		},
	}

	score, matched := CertificationScore("AWS certified since 2022.", criteria)

	assert.InDelta(t, 0.5, score, 1e-9)
	require.Len(t, matched, 1)
	assert.Contains(t, matched[0], "Amazon Web Services")
}

func TestCertificationScore_NeutralWhenNoneRequired(t *testing.T) {
	score, matched := CertificationScore("anything", &types.JobCriteria{})
	assert.Equal(t, 0.5, score)
	assert.Empty(t, matched)
}

func TestEducationScore_StrictRequirement(t *testing.T) {
	criteria := &types.JobCriteria{
		EducationRequirements: types.EducationRequirements{
			MinimumLevel: "master",
			Strict:       true,
		},
	}

	assert.Equal(t, 1.0, EducationScore("M.S. in Computer Science", criteria))
	assert.Equal(t, 1.0, EducationScore("PhD in Physics", criteria))
	// Bachelor (3) against master (4): linear fraction.
	assert.InDelta(t, 0.75, EducationScore("Bachelor of Science", criteria), 1e-9)
}

func TestEducationScore_NonStrictRequirement(t *testing.T) {
	criteria := &types.JobCriteria{
		EducationRequirements: types.EducationRequirements{MinimumLevel: "master"},
	}

	assert.Equal(t, 1.0, EducationScore("Master of Engineering", criteria))
	assert.Equal(t, 0.8, EducationScore("Bachelor of Science", criteria))
	assert.Equal(t, 0.3, EducationScore("High school diploma", criteria))
}

func TestEducationScore_NoRequirement(t *testing.T) {
	assert.Equal(t, 1.0, EducationScore("anything", &types.JobCriteria{}))
}

func TestDetectEducationLevel(t *testing.T) {
	tests := []struct {
		text  string
		level int
	}{
		{"completed high school in 2010", 1},
		{"Associate degree in nursing", 2},
		{"B.Tech in Computer Science", 3},
		{"MBA from a business school", 4},
		{"Ph.D in Mathematics", 5},
		{"no education mentioned", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, DetectEducationLevel(tt.text), tt.text)
	}
}

func TestExperienceScore_WithinRange(t *testing.T) {
	criteria := &types.JobCriteria{
		ExperienceRequirements: types.ExperienceRequirements{MinimumYears: 3, PreferredYears: 7},
	}

	score, years := ExperienceScore("5 years of backend development", criteria)

	assert.Equal(t, 1.0, score)
	assert.Equal(t, 5, years)
}

func TestExperienceScore_AboveAndBelowRange(t *testing.T) {
	criteria := &types.JobCriteria{
		ExperienceRequirements: types.ExperienceRequirements{MinimumYears: 5, PreferredYears: 8},
	}

	score, _ := ExperienceScore("12 years of experience", criteria)
	assert.Equal(t, 0.9, score)

	score, _ = ExperienceScore("4 years of experience", criteria)
	assert.Equal(t, 0.8, score)

	score, _ = ExperienceScore("2 years of experience", criteria)
	assert.InDelta(t, 0.4, score, 1e-9)
}

func TestExperienceScore_NoRequirement(t *testing.T) {
	score, _ := ExperienceScore("2 years of experience", &types.JobCriteria{})
	assert.Equal(t, 1.0, score)
}

func TestDetectExperienceYears_Patterns(t *testing.T) {
	assert.Equal(t, 7, DetectExperienceYears("7+ years of experience"))
	assert.Equal(t, 5, DetectExperienceYears("Software Engineer, 2015-2020"))

	since := fmt.Sprintf("working as an engineer since %d", time.Now().Year()-4)
	assert.Equal(t, 4, DetectExperienceYears(since))
}

func TestDetectExperienceYears_MaxOfAllPatterns(t *testing.T) {
	years := DetectExperienceYears("3 years at Acme, then 2012-2020 at Globex")
	assert.Equal(t, 8, years)
}

func TestDetectExperienceYears_ImplausibleValuesDiscarded(t *testing.T) {
	// A range spanning 45 years exceeds the plausibility bound.
	assert.Zero(t, DetectExperienceYears("1975 to 2020"))
	assert.Zero(t, DetectExperienceYears("no experience mentioned"))
}

func TestLocationScore(t *testing.T) {
	criteria := &types.JobCriteria{Location: "San Francisco"}

	assert.Equal(t, 1.0, LocationScore("Based in San Francisco, CA", criteria))
	assert.Equal(t, 0.8, LocationScore("Open to remote work", criteria))
	assert.Equal(t, 0.0, LocationScore("Based in Austin, TX", criteria))
}

func TestLocationScore_FlexibleJob(t *testing.T) {
	criteria := &types.JobCriteria{Location: "San Francisco", LocationFlexible: true}
	assert.Equal(t, 1.0, LocationScore("Based in Austin, TX", criteria))
}

func TestLocationScore_RemoteJob(t *testing.T) {
	criteria := &types.JobCriteria{Location: "Remote"}
	assert.Equal(t, 0.8, LocationScore("Based in Austin, TX", criteria))
}

func TestProfessionalDevelopmentScore_Axes(t *testing.T) {
	text := fmt.Sprintf(
		"AWS Certified Solutions Architect (%d). Completed Coursera courses. "+
			"Presented at a conference. Maintainer of an open source project.",
		time.Now().Year())

	score := ProfessionalDevelopmentScore(text)

	assert.Greater(t, score, 0.5)
	assert.LessOrEqual(t, score, 1.0)
}

func TestProfessionalDevelopmentScore_Empty(t *testing.T) {
	assert.Zero(t, ProfessionalDevelopmentScore("plain work history, nothing else"))
}

func TestRecencyDecay(t *testing.T) {
	tests := []struct {
		yearsAgo int
		want     float64
	}{
		{0, 1.0}, {1, 0.9}, {2, 0.8}, {3, 0.6}, {4, 0.4}, {5, 0.4}, {6, 0.2}, {10, 0.2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, recencyDecay(tt.yearsAgo), "yearsAgo=%d", tt.yearsAgo)
	}
}

func TestCompositeScore_WorkedExample(t *testing.T) {
	score := &types.CandidateScore{
		SkillScore:         0.8,
		ExperienceScore:    1.0,
		LocationScore:      1.0,
		CertificationScore: 0.5,
		EducationScore:     1.0,
	}
	weights := types.ScoringWeights{
		Skills: 0.35, Experience: 0.30, Location: 0.15,
		Certifications: 0.10, Education: 0.10,
	}

	assert.InDelta(t, 0.88, CompositeScore(score, weights), 1e-9)
}

func TestCompositeScore_ProfDevMultiplier(t *testing.T) {
	score := &types.CandidateScore{
		SkillScore: 1.0, ExperienceScore: 1.0, LocationScore: 1.0,
		CertificationScore: 0.5, EducationScore: 1.0,
		ProfDevScore: 0.8,
	}
	weights := types.DefaultScoringWeights()

	base := weights.Skills + weights.Experience + weights.Location +
		weights.Certifications*0.5 + weights.Education
	want := base * 1.05
	if want > 1.0 {
		want = 1.0
	}

	assert.InDelta(t, want, CompositeScore(score, weights), 1e-9)
}

func TestCompositeScore_CappedAtOne(t *testing.T) {
	score := &types.CandidateScore{
		SkillScore: 1.0, ExperienceScore: 1.0, LocationScore: 1.0,
		CertificationScore: 1.0, EducationScore: 1.0,
		ProfDevScore: 0.9,
	}

	assert.Equal(t, 1.0, CompositeScore(score, types.DefaultScoringWeights()))
}

func TestScoreCandidate_AllSubScoresInRange(t *testing.T) {
	criteria := &types.JobCriteria{
		RequiredSkills:         []string{"Go", "Kubernetes"},
		SkillVariants:          map[string][]string{"Go": {"golang"}},
		RequiredCertifications: []string{"AWS Certified (AWS)"},
		Location:               "Seattle",
		ExperienceRequirements: types.ExperienceRequirements{MinimumYears: 3, PreferredYears: 6},
		EducationRequirements:  types.EducationRequirements{MinimumLevel: "bachelor"},
		ScoringWeights:         types.DefaultScoringWeights(),
	}
	text := "Golang engineer in Seattle. 5 years of experience. B.S. in CS. AWS certified."

	score := ScoreCandidate("resume.txt", text, criteria)

	for name, v := range map[string]float64{
		"skill":         score.SkillScore,
		"experience":    score.ExperienceScore,
		"location":      score.LocationScore,
		"certification": score.CertificationScore,
		"education":     score.EducationScore,
		"profdev":       score.ProfDevScore,
		"final":         score.FinalScore,
		"adjusted":      score.AdjustedScore,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
	assert.Equal(t, score.FinalScore, score.AdjustedScore)
	assert.Equal(t, 5, score.DetectedYears)
}
