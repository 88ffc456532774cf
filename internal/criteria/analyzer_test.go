package criteria

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/candidate-ranker/internal/llm"
	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned responses for analyzer tests.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

func TestAnalyze_NilClientUsesDefaults(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	criteria, err := analyzer.Analyze(context.Background(), "Backend Engineer", "job text", []string{"Go"})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", criteria.JobTitle)
	assert.Equal(t, []string{"Go"}, criteria.RequiredSkills)
	assert.Equal(t, types.DefaultScoringWeights(), criteria.ScoringWeights)
}

func TestAnalyze_LLMFailureFallsBack(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{err: errors.New("timeout")})

	criteria, err := analyzer.Analyze(context.Background(), "Backend Engineer", "job text", []string{"Go"})

	// The fallback criteria still come back usable alongside the error.
	assert.Error(t, err)
	require.NotNil(t, criteria)
	assert.Equal(t, []string{"Go"}, criteria.RequiredSkills)
	assert.Equal(t, types.DefaultScoringWeights(), criteria.ScoringWeights)
}

func TestAnalyze_MalformedResponseFallsBack(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{response: "not json at all"})

	criteria, err := analyzer.Analyze(context.Background(), "Backend Engineer", "job text", nil)

	assert.Error(t, err)
	require.NotNil(t, criteria)
	assert.Equal(t, types.DefaultScoringWeights(), criteria.ScoringWeights)
}

func TestAnalyze_ParsesInferredCriteria(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{response: `{
		"job_title": "Platform Engineer",
		"required_skills": ["Kubernetes"],
		"scoring_weights": {"skills": 0.5, "experience": 0.5},
		"location": "Remote"
	}`})

	criteria, err := analyzer.Analyze(context.Background(), "", "job text", []string{"Go"})
	require.NoError(t, err)

	assert.Equal(t, "Platform Engineer", criteria.JobTitle)
	assert.Equal(t, []string{"Kubernetes", "Go"}, criteria.RequiredSkills, "explicit skills merged in")
	assert.True(t, criteria.ScoringWeights.IsNormalized())
	assert.Equal(t, "Remote", criteria.Location)
}

func TestAnalyze_MarkdownWrappedResponse(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{response: "```json\n{\"required_skills\": [\"Go\"]}\n```"})

	criteria, err := analyzer.Analyze(context.Background(), "Backend Engineer", "job text", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, criteria.RequiredSkills)
}
