// Package report writes the run artifacts: ranked JSON, duplicate summary,
// and a human-readable text report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Artifact file names within the output directory
const (
	RankedResultFile     = "ranked_candidates.json"
	DuplicateSummaryFile = "duplicate_summary.json"
	ReportFile           = "report.txt"
)

// Writer persists run artifacts under a single output directory.
type Writer struct {
	OutputDir string
}

// NewWriter creates a Writer rooted at the given output directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{OutputDir: outputDir}
}

// writeJSON marshals content to an indented JSON file, creating the output
// directory if needed.
func (w *Writer) writeJSON(filename string, content any) (string, error) {
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", filename, err)
	}

	path := filepath.Join(w.OutputDir, filename)
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return path, nil
}

// validateAgainst checks a written JSON file against a schema, if the schema
// file can be located. A missing schema is not an error.
func validateAgainst(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}
	return schemas.ValidateJSON(schemaPath, jsonPath)
}

// WriteRankedResult writes the ranked JSON artifact and validates it against
// the ranked-result schema.
func (w *Writer) WriteRankedResult(result *types.RankedResult) (string, error) {
	path, err := w.writeJSON(RankedResultFile, result)
	if err != nil {
		return "", err
	}
	if err := validateAgainst("schemas/ranked_result.schema.json", path); err != nil {
		return "", fmt.Errorf("ranked result failed schema validation: %w", err)
	}
	return path, nil
}

// WriteDuplicateSummary writes the duplicate summary artifact and validates it
// against the duplicate-summary schema.
func (w *Writer) WriteDuplicateSummary(summary *types.DuplicateSummary) (string, error) {
	path, err := w.writeJSON(DuplicateSummaryFile, summary)
	if err != nil {
		return "", err
	}
	if err := validateAgainst("schemas/duplicate_summary.schema.json", path); err != nil {
		return "", fmt.Errorf("duplicate summary failed schema validation: %w", err)
	}
	return path, nil
}

// ReadRankedResult loads a previously written ranked result. A missing file
// returns (nil, nil) so first runs and incremental runs share one code path.
func ReadRankedResult(path string) (*types.RankedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ranked result: %w", err)
	}

	var result types.RankedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ranked result: %w", err)
	}
	return &result, nil
}

// WriteReport renders and writes the human-readable text report.
func (w *Writer) WriteReport(result *types.RankedResult, summary *types.DuplicateSummary, criteria *types.JobCriteria) (string, error) {
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.OutputDir, ReportFile)
	if err := os.WriteFile(path, []byte(BuildReport(result, summary, criteria)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// BuildReport renders the text report for one filtering run.
func BuildReport(result *types.RankedResult, summary *types.DuplicateSummary, criteria *types.JobCriteria) string {
	var sb strings.Builder

	sb.WriteString("CANDIDATE FILTERING REPORT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	if criteria != nil && criteria.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job:       %s\n", criteria.JobTitle))
	}
	generatedAt := time.Now().UTC()
	if result != nil && !result.GeneratedAt.IsZero() {
		generatedAt = result.GeneratedAt
	}
	sb.WriteString(fmt.Sprintf("Generated: %s\n", generatedAt.Format(time.RFC3339)))
	if result != nil {
		sb.WriteString(fmt.Sprintf("Candidates: %d\n", len(result.Candidates)))
	}
	sb.WriteString("\n")

	if criteria != nil && len(criteria.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Required skills: %s\n\n", strings.Join(criteria.RequiredSkills, ", ")))
	}

	sb.WriteString("RANKING\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	if result == nil || len(result.Candidates) == 0 {
		sb.WriteString("No candidates were ranked.\n")
	} else {
		for _, c := range result.Candidates {
			sb.WriteString(fmt.Sprintf("%3d. %-40s %.3f", c.FinalRank, filepath.Base(c.FilePath), c.AdjustedScore))
			if c.AdjustedScore != c.FinalScore {
				sb.WriteString(fmt.Sprintf(" (base %.3f)", c.FinalScore))
			}
			sb.WriteString("\n")
			if len(c.MatchedSkills) > 0 {
				sb.WriteString(fmt.Sprintf("     skills: %s\n", strings.Join(c.MatchedSkills, ", ")))
			}
			if c.DuplicateOf != "" {
				sb.WriteString(fmt.Sprintf("     duplicate of %s\n", filepath.Base(c.DuplicateOf)))
			}
		}
	}
	sb.WriteString("\n")

	sb.WriteString("DUPLICATES\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	if summary == nil || summary.GroupCount == 0 {
		sb.WriteString("No duplicate submissions detected.\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d groups, %d duplicate submissions\n", summary.GroupCount, summary.DuplicateCount))
		for _, g := range summary.Groups {
			sb.WriteString(fmt.Sprintf("  %s\n", g.Primary))
			for _, m := range g.Members {
				if m == g.Primary {
					continue
				}
				sb.WriteString(fmt.Sprintf("    -> %s\n", m))
			}
		}
	}

	return sb.String()
}
