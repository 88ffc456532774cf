package types

import "math"

// weightTolerance is the floating tolerance used when checking that weights sum to 1.0.
const weightTolerance = 1e-6

// JobCriteria carries the externally supplied requirements and weights for one
// open position. It is read-only for the duration of a filtering run.
type JobCriteria struct {
	JobTitle               string                 `json:"job_title,omitempty"`
	RequiredSkills         []string               `json:"required_skills" validate:"omitempty,dive,min=1"`
	SkillVariants          map[string][]string    `json:"skill_variants,omitempty"` // skill -> acceptable phrasings
	ScoringWeights         ScoringWeights         `json:"scoring_weights"`
	ExperienceRequirements ExperienceRequirements `json:"experience_requirements"`
	EducationRequirements  EducationRequirements  `json:"education_requirements"`
	RequiredCertifications []string               `json:"required_certifications,omitempty"`
	Location               string                 `json:"location,omitempty"`
	LocationFlexible       bool                   `json:"location_flexible,omitempty"` // location is unimportant for this job
}

// VariantsFor returns the acceptable phrasings for a required skill, always
// including the skill name itself.
func (c *JobCriteria) VariantsFor(skill string) []string {
	variants := []string{skill}
	for _, v := range c.SkillVariants[skill] {
		if v != skill {
			variants = append(variants, v)
		}
	}
	return variants
}

// ScoringWeights are the per-category weights of the composite score.
// They are expected to sum to 1.0; Normalized repairs them defensively if not.
type ScoringWeights struct {
	Skills         float64 `json:"skills" validate:"gte=0"`
	Experience     float64 `json:"experience" validate:"gte=0"`
	Location       float64 `json:"location" validate:"gte=0"`
	Certifications float64 `json:"certifications" validate:"gte=0"`
	Education      float64 `json:"education" validate:"gte=0"`
}

// Sum returns the total of all weights.
func (w ScoringWeights) Sum() float64 {
	return w.Skills + w.Experience + w.Location + w.Certifications + w.Education
}

// IsNormalized reports whether the weights already sum to 1.0 within tolerance.
func (w ScoringWeights) IsNormalized() bool {
	return math.Abs(w.Sum()-1.0) < weightTolerance
}

// Normalized returns a copy of the weights scaled to sum to 1.0.
// A zero weight set falls back to DefaultScoringWeights.
func (w ScoringWeights) Normalized() ScoringWeights {
	sum := w.Sum()
	if sum <= 0 {
		return DefaultScoringWeights()
	}
	return ScoringWeights{
		Skills:         w.Skills / sum,
		Experience:     w.Experience / sum,
		Location:       w.Location / sum,
		Certifications: w.Certifications / sum,
		Education:      w.Education / sum,
	}
}

// DefaultScoringWeights returns the deterministic fallback weights used when a
// job supplies none (or when the external criteria analysis fails).
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Skills:         0.35,
		Experience:     0.30,
		Location:       0.15,
		Certifications: 0.10,
		Education:      0.10,
	}
}

// ExperienceRequirements bound the years of experience a job asks for.
type ExperienceRequirements struct {
	MinimumYears   float64 `json:"minimum_years" validate:"gte=0"`
	PreferredYears float64 `json:"preferred_years" validate:"gte=0"`
}

// EducationRequirements describe the minimum education level for a job.
// When Strict is set, candidates below MinimumLevel score a linear fraction
// instead of the softer near-miss scale.
type EducationRequirements struct {
	MinimumLevel string `json:"minimum_level,omitempty"` // high_school, associate, bachelor, master, doctorate
	Strict       bool   `json:"strict,omitempty"`
}
