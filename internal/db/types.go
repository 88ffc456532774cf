package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a filtering run record
type Run struct {
	ID             uuid.UUID  `json:"id"`
	JobTitle       string     `json:"job_title"`
	ResumeDir      string     `json:"resume_dir"`
	Status         string     `json:"status"`
	CandidateCount int        `json:"candidate_count"`
	DuplicateCount int        `json:"duplicate_count"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Artifact step constants for known artifact types
const (
	StepJobCriteria      = "job_criteria"
	StepRankedResult     = "ranked_result"
	StepDuplicateSummary = "duplicate_summary"
	StepReport           = "report"
)
