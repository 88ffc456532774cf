package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score", "--in", "resume.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScoreCommand_ScoresResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(`John Smith
john@example.com

SKILLS
Go, Kubernetes

EXPERIENCE
5 years of backend work.
`), 0644))

	criteriaPath := filepath.Join(dir, "criteria.json")
	require.NoError(t, os.WriteFile(criteriaPath, []byte(`{
		"job_title": "Backend Engineer",
		"required_skills": ["Go", "Kubernetes"],
		"experience_requirements": {"minimum_years": 3, "preferred_years": 6},
		"location_flexible": true
	}`), 0644))

	cmd := exec.Command(binaryPath, "score", "--in", resumePath, "--criteria", criteriaPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "score failed: %s", output)

	var score map[string]any
	require.NoError(t, json.Unmarshal(output, &score))

	assert.Equal(t, float64(1), score["skill_score"])
	final, ok := score["final_score"].(float64)
	require.True(t, ok)
	assert.Greater(t, final, 0.5)
}
