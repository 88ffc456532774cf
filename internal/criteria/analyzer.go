package criteria

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/candidate-ranker/internal/llm"
	"github.com/jonathan/candidate-ranker/internal/prompts"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Analyzer infers job criteria from a raw job description via the LLM client.
// Analysis is called once per job, never per candidate.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze extracts criteria from a job description. On any failure (missing
// client, call error, malformed response) it falls back to the deterministic
// default criteria so scoring always completes.
func (a *Analyzer) Analyze(ctx context.Context, jobTitle, jobDescription string, explicitSkills []string) (*types.JobCriteria, error) {
	if a.client == nil {
		return Default(jobTitle, explicitSkills), nil
	}

	inferred, err := a.analyzeWithLLM(ctx, jobDescription)
	if err != nil {
		return Default(jobTitle, explicitSkills), fmt.Errorf("job analysis failed, using default criteria: %w", err)
	}

	if inferred.JobTitle == "" {
		inferred.JobTitle = jobTitle
	}
	inferred.RequiredSkills = mergeSkills(inferred.RequiredSkills, explicitSkills)
	ApplyDefaults(inferred)
	return inferred, nil
}

func (a *Analyzer) analyzeWithLLM(ctx context.Context, jobDescription string) (*types.JobCriteria, error) {
	schema := llm.JobCriteriaSchema()
	if system, err := prompts.Get("criteria.json", "analyze_system"); err == nil && system != "" {
		schema.Description = system
	}
	prompt := llm.BuildExtractionPrompt(schema, jobDescription)

	response, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}

	var inferred types.JobCriteria
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &inferred); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return &inferred, nil
}

// mergeSkills appends explicitly supplied skills the inference missed.
func mergeSkills(inferred, explicit []string) []string {
	seen := make(map[string]bool, len(inferred))
	for _, s := range inferred {
		seen[s] = true
	}
	merged := inferred
	for _, s := range explicit {
		if !seen[s] {
			merged = append(merged, s)
		}
	}
	return merged
}
