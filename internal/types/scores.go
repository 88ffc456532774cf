package types

import "time"

// CandidateScore is the per-candidate score record produced by stage-1 scoring
// and mutated by stage-2 bonus/ranking. All sub-scores and both composite
// scores lie in [0,1].
type CandidateScore struct {
	FilePath    string `json:"file_path"`
	CandidateID string `json:"candidate_id,omitempty"`

	SkillScore         float64 `json:"skill_score"`
	ExperienceScore    float64 `json:"experience_score"`
	LocationScore      float64 `json:"location_score"`
	CertificationScore float64 `json:"certification_score"`
	EducationScore     float64 `json:"education_score"`
	ProfDevScore       float64 `json:"professional_development_score"`

	FinalScore    float64 `json:"final_score"`    // weighted composite
	AdjustedScore float64 `json:"adjusted_score"` // final score plus ranking bonuses, capped at 1.0

	MatchedSkills         []string `json:"matched_skills,omitempty"`
	MatchedCertifications []string `json:"matched_certifications,omitempty"`
	DetectedYears         int      `json:"detected_experience_years"`

	// Duplicate metadata attached from the repository's group scan.
	HasDuplicates  bool     `json:"has_duplicates"`
	DuplicateCount int      `json:"duplicate_count,omitempty"`
	Duplicates     []string `json:"duplicates,omitempty"`
	DuplicateOf    string   `json:"duplicate_of,omitempty"`

	FinalRank int `json:"final_rank"`
}

// IsGroupPrimary reports whether this candidate represents its duplicate group
// (or is a singleton).
func (s *CandidateScore) IsGroupPrimary() bool {
	return s.DuplicateOf == ""
}

// RankedResult is the ranked JSON output artifact for one job, merged across
// incremental runs.
type RankedResult struct {
	JobTitle    string           `json:"job_title,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
	Candidates  []CandidateScore `json:"candidates"`
}

// FindByPath returns the score record for a file path, or nil if absent.
func (r *RankedResult) FindByPath(path string) *CandidateScore {
	for i := range r.Candidates {
		if r.Candidates[i].FilePath == path {
			return &r.Candidates[i]
		}
	}
	return nil
}
