package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ranker/internal/types"
)

func sampleResult() *types.RankedResult {
	return &types.RankedResult{
		JobTitle:    "Backend Engineer",
		GeneratedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Candidates: []types.CandidateScore{
			{
				FilePath:      "resumes/john_smith.txt",
				FinalScore:    0.82,
				AdjustedScore: 0.92,
				FinalRank:     1,
				MatchedSkills: []string{"Go", "Kubernetes"},
				HasDuplicates: true,
				Duplicates:    []string{"resumes/j_smith.txt"},
			},
			{
				FilePath:      "resumes/j_smith.txt",
				FinalScore:    0.80,
				AdjustedScore: 0.80,
				FinalRank:     1,
				DuplicateOf:   "resumes/john_smith.txt",
			},
			{
				FilePath:      "resumes/jane_doe.txt",
				FinalScore:    0.75,
				AdjustedScore: 0.75,
				FinalRank:     2,
			},
		},
	}
}

func sampleSummary() *types.DuplicateSummary {
	return &types.DuplicateSummary{
		GroupCount:      1,
		DuplicateCount:  1,
		TotalCandidates: 3,
		Groups: []types.DuplicateGroup{
			{Primary: "resumes/john_smith.txt", Members: []string{"resumes/john_smith.txt", "resumes/j_smith.txt"}},
		},
	}
}

func TestWriteRankedResult(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteRankedResult(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, RankedResultFile, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.RankedResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Candidates, 3)
	assert.Equal(t, 1, decoded.Candidates[0].FinalRank)
}

func TestWriteDuplicateSummary(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteDuplicateSummary(sampleSummary())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded types.DuplicateSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.GroupCount)
}

func TestWriteReport(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "nested", "out"))

	criteria := &types.JobCriteria{
		JobTitle:       "Backend Engineer",
		RequiredSkills: []string{"Go", "Kubernetes"},
	}

	path, err := w.WriteReport(sampleResult(), sampleSummary(), criteria)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "CANDIDATE FILTERING REPORT")
	assert.Contains(t, content, "Backend Engineer")
	assert.Contains(t, content, "john_smith.txt")
	assert.Contains(t, content, "duplicate of john_smith.txt")
	assert.Contains(t, content, "1 groups, 1 duplicate submissions")
}

func TestBuildReport_Empty(t *testing.T) {
	content := BuildReport(&types.RankedResult{}, &types.DuplicateSummary{}, nil)

	assert.Contains(t, content, "No candidates were ranked.")
	assert.Contains(t, content, "No duplicate submissions detected.")
}

func TestBuildReport_BonusShown(t *testing.T) {
	result := sampleResult()
	content := BuildReport(result, nil, nil)

	// Adjusted and base scores differ for the first candidate
	assert.Contains(t, content, "0.920")
	assert.Contains(t, content, "base 0.820")
}
