// Package ledger persists the processed-resume ledger: a fingerprint to
// metadata map that lets incremental runs skip resumes already scored.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const fingerprintLength = 16

// Entry records processing metadata for one resume.
type Entry struct {
	FilePath    string    `json:"file_path"`
	CandidateID string    `json:"candidate_id,omitempty"`
	FinalScore  float64   `json:"final_score"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Ledger maps resume fingerprints to processing metadata. Entries are added
// after a resume's score is fully computed and never removed automatically,
// so aborting a batch between resumes leaves no partial state.
type Ledger struct {
	path    string
	entries map[string]Entry
}

// Fingerprint derives the ledger key for a resume from its filename and
// modification marker, so an edited file is re-processed.
func Fingerprint(filePath string, modTime time.Time) string {
	base := filepath.Base(filePath) + "|" + strconv.FormatInt(modTime.UnixNano(), 10)
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}

// FingerprintFile stats the file and returns its fingerprint.
func FingerprintFile(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	return Fingerprint(filePath, info.ModTime()), nil
}

// Load reads a ledger file. A missing, corrupted or unreadable file yields an
// empty ledger (full re-processing), never an error.
func Load(path string) *Ledger {
	l := &Ledger{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return l
	}
	l.entries = entries
	return l
}

// Has reports whether a fingerprint has already been processed.
func (l *Ledger) Has(fingerprint string) bool {
	_, ok := l.entries[fingerprint]
	return ok
}

// Record adds an entry for a newly processed resume.
func (l *Ledger) Record(fingerprint string, entry Entry) {
	l.entries[fingerprint] = entry
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Save writes the ledger back to its file, creating parent directories as
// needed.
func (l *Ledger) Save() error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}
