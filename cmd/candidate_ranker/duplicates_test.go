package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicatesCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "duplicates")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestDuplicatesCommand_DetectsSharedEmail(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumeDir := t.TempDir()
	for name, content := range map[string]string{
		"a.txt": "John Smith\njohn@example.com\n",
		"b.txt": "J. Smith\njohn@example.com\n",
		"c.txt": "Jane Doe\njane@example.com\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(resumeDir, name), []byte(content), 0644))
	}

	outFile := filepath.Join(t.TempDir(), "summary.json")
	cmd := exec.Command(binaryPath, "duplicates", "--resumes", resumeDir, "--out", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "duplicates failed: %s", output)

	assert.Contains(t, string(output), "DUPLICATE GROUPS")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"group_count": 1`)
}
