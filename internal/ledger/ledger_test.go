package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_ChangesWithModTime(t *testing.T) {
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	fp1 := Fingerprint("resume.pdf", base)
	fp2 := Fingerprint("resume.pdf", base.Add(time.Second))

	assert.NotEqual(t, fp1, fp2)
	assert.Equal(t, fp1, Fingerprint("resume.pdf", base))
	assert.Len(t, fp1, fingerprintLength)
}

func TestFingerprint_ChangesWithFilename(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.NotEqual(t, Fingerprint("a.pdf", at), Fingerprint("b.pdf", at))
}

func TestLoad_MissingFileYieldsEmptyLedger(t *testing.T) {
	l := Load(filepath.Join(t.TempDir(), "nonexistent.json"))
	assert.Equal(t, 0, l.Len())
}

func TestLoad_CorruptedFileYieldsEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l := Load(path)
	assert.Equal(t, 0, l.Len())
}

func TestLedger_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	l := Load(path)
	l.Record("fp1", Entry{
		FilePath:    "resume.pdf",
		CandidateID: "abc123",
		FinalScore:  0.88,
		ProcessedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, l.Save())

	reloaded := Load(path)
	assert.True(t, reloaded.Has("fp1"))
	assert.False(t, reloaded.Has("fp2"))
	assert.Equal(t, 1, reloaded.Len())
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.json")

	l := Load(path)
	l.Record("fp", Entry{FilePath: "r.pdf"})
	require.NoError(t, l.Save())

	assert.FileExists(t, path)
}

func TestFingerprintFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	fp, err := FingerprintFile(path)
	require.NoError(t, err)
	assert.Len(t, fp, fingerprintLength)

	_, err = FingerprintFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
