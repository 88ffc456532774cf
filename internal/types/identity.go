// Package types provides type definitions for structured data used throughout the candidate-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IdentityRecord holds the structured identifiers extracted from one resume.
// It is created once at ingestion and never mutated afterwards. Absent fields
// degrade to empty collections rather than errors.
type IdentityRecord struct {
	Filename       string   `json:"filename"`
	Emails         []string `json:"emails"`          // lower-cased, placeholder domains removed
	Phones         []string `json:"phones"`          // normalized to last 10 digits
	Names          []string `json:"names"`           // heuristically extracted candidate names
	GitHub         string   `json:"github,omitempty"`
	LinkedIn       string   `json:"linkedin,omitempty"`
	ContentHash    string   `json:"content_hash,omitempty"`
	EducationHash  string   `json:"education_hash,omitempty"`
	ExperienceHash string   `json:"experience_hash,omitempty"`
}

// HasEmail reports whether the record contains the given (already lower-cased) email.
func (r *IdentityRecord) HasEmail(email string) bool {
	for _, e := range r.Emails {
		if e == email {
			return true
		}
	}
	return false
}

// HasPhone reports whether the record contains the given normalized phone number.
func (r *IdentityRecord) HasPhone(phone string) bool {
	for _, p := range r.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// SharesEmail reports whether two records have at least one email in common.
func (r *IdentityRecord) SharesEmail(other *IdentityRecord) bool {
	for _, e := range r.Emails {
		if other.HasEmail(e) {
			return true
		}
	}
	return false
}

// SharesPhone reports whether two records have at least one phone number in common.
func (r *IdentityRecord) SharesPhone(other *IdentityRecord) bool {
	for _, p := range r.Phones {
		if other.HasPhone(p) {
			return true
		}
	}
	return false
}

// DuplicateGroup is a set of resumes believed to represent one real person.
// Primary is the representative member; Members lists every filename in the
// group, primary first.
type DuplicateGroup struct {
	Primary string   `json:"primary"`
	Members []string `json:"members"`
}

// Size returns the number of resumes in the group.
func (g *DuplicateGroup) Size() int {
	return len(g.Members)
}

// Contains reports whether the group includes the given filename.
func (g *DuplicateGroup) Contains(filename string) bool {
	for _, m := range g.Members {
		if m == filename {
			return true
		}
	}
	return false
}

// DuplicateSummary is the duplicate-detection output artifact for one run.
type DuplicateSummary struct {
	GroupCount      int              `json:"group_count"`
	DuplicateCount  int              `json:"duplicate_count"` // resumes beyond each group's primary
	Groups          []DuplicateGroup `json:"groups,omitempty"`
	TotalCandidates int              `json:"total_candidates"`
}
