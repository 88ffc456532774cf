// Package criteria loads, validates and defaults the job criteria object that
// drives a filtering run, whether it came from a file or from the external
// job-analysis call.
package criteria

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
)

const criteriaSchemaPath = "schemas/job_criteria.schema.json"

var validate = validator.New()

// Load reads a job-criteria JSON file, validates it against the criteria
// schema when the schema file can be resolved, and applies defaults.
func Load(path string) (*types.JobCriteria, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve criteria path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(criteriaSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, absPath); err != nil {
			return nil, fmt.Errorf("criteria file %s is invalid: %w", path, err)
		}
	}

	return Parse(data)
}

// Parse unmarshals and validates raw criteria JSON, then applies defaults.
func Parse(data []byte) (*types.JobCriteria, error) {
	var criteria types.JobCriteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		return nil, fmt.Errorf("failed to parse criteria JSON: %w", err)
	}

	if err := validate.Struct(&criteria); err != nil {
		return nil, fmt.Errorf("criteria failed validation: %w", err)
	}

	ApplyDefaults(&criteria)
	return &criteria, nil
}

// ApplyDefaults fills missing fields so absent criteria degrade to documented
// defaults instead of failing: weights are normalized (or defaulted when all
// zero) and every required skill gets at least its own name as a variant.
func ApplyDefaults(criteria *types.JobCriteria) {
	criteria.ScoringWeights = criteria.ScoringWeights.Normalized()

	if criteria.SkillVariants == nil {
		criteria.SkillVariants = make(map[string][]string)
	}
	if criteria.ExperienceRequirements.PreferredYears < criteria.ExperienceRequirements.MinimumYears {
		criteria.ExperienceRequirements.PreferredYears = criteria.ExperienceRequirements.MinimumYears
	}
}

// Default returns the deterministic fallback criteria used when the external
// job analysis fails: default weights and whatever skills were explicitly
// supplied.
func Default(jobTitle string, explicitSkills []string) *types.JobCriteria {
	criteria := &types.JobCriteria{
		JobTitle:         jobTitle,
		RequiredSkills:   explicitSkills,
		ScoringWeights:   types.DefaultScoringWeights(),
		LocationFlexible: true,
	}
	ApplyDefaults(criteria)
	return criteria
}
