// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobCriteria outputs a human-readable summary of the criteria driving a
// filtering run.
func (p *Printer) PrintJobCriteria(criteria *types.JobCriteria) {
	if criteria == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:      %s\n", criteria.JobTitle))
	if criteria.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", criteria.Location))
	}
	sb.WriteString("\n")

	if len(criteria.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(criteria.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := criteria.RequiredSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill))
			if variants := criteria.SkillVariants[skill]; len(variants) > 0 {
				sb.WriteString(fmt.Sprintf(" (%s)", strings.Join(variants, ", ")))
			}
			sb.WriteString("\n")
		}
		if len(criteria.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(criteria.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	w := criteria.ScoringWeights
	sb.WriteString("Weights:\n")
	sb.WriteString(fmt.Sprintf("  skills %.2f  experience %.2f  location %.2f\n", w.Skills, w.Experience, w.Location))
	sb.WriteString(fmt.Sprintf("  certifications %.2f  education %.2f", w.Certifications, w.Education))

	p.printBox("JOB CRITERIA", sb.String())
}

// PrintRankedCandidates outputs the top N candidates with scores and matched
// skills.
func (p *Printer) PrintRankedCandidates(result *types.RankedResult) {
	if result == nil || len(result.Candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(result.Candidates)))

	count := min(len(result.Candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := result.Candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.FinalRank, c.FilePath))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", c.AdjustedScore))
		if c.AdjustedScore != c.FinalScore {
			sb.WriteString(fmt.Sprintf(" (base: %.2f)", c.FinalScore))
		}
		sb.WriteString("\n")
		if len(c.MatchedSkills) > 0 {
			skills := strings.Join(c.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if c.DuplicateOf != "" {
			sb.WriteString(fmt.Sprintf("    Duplicate of: %s\n", c.DuplicateOf))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.Candidates)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintDuplicateSummary outputs detected duplicate groups, or a clean bill of
// health when there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDuplicateSummary(summary *types.DuplicateSummary) {
	if summary == nil || summary.GroupCount == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO DUPLICATES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d groups covering %d duplicate submissions:\n\n",
		summary.GroupCount, summary.DuplicateCount))

	for i, g := range summary.Groups {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", g.Primary))
		for _, member := range g.Members {
			if member == g.Primary {
				continue
			}
			sb.WriteString(fmt.Sprintf("  ↳ %s\n", member))
		}
		if i < len(summary.Groups)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DUPLICATE GROUPS", sb.String())
}

// PrintIdentityRecord outputs the identifiers extracted from one resume.
func (p *Printer) PrintIdentityRecord(record *types.IdentityRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:    %s\n", record.Filename))
	if len(record.Names) > 0 {
		sb.WriteString(fmt.Sprintf("Names:   %s\n", strings.Join(record.Names, ", ")))
	}
	if len(record.Emails) > 0 {
		sb.WriteString(fmt.Sprintf("Emails:  %s\n", strings.Join(record.Emails, ", ")))
	}
	if len(record.Phones) > 0 {
		sb.WriteString(fmt.Sprintf("Phones:  %s\n", strings.Join(record.Phones, ", ")))
	}
	if record.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:  %s\n", record.GitHub))
	}
	if record.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", record.LinkedIn))
	}

	p.printBox("IDENTITY RECORD", strings.TrimSuffix(sb.String(), "\n"))
}
