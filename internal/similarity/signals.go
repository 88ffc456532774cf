package similarity

import "github.com/jonathan/candidate-ranker/internal/types"

// hashMatchScore is the contribution of a matching fixed-size digest. Digests
// are strong evidence but weaker than a shared account identifier, so they do
// not score a full 1.0.
const hashMatchScore = 0.8

// Signals is the pairwise signal vector between two identity records.
// Every component lies in [0,1].
type Signals struct {
	EmailMatch        float64 `json:"email_match"`
	PhoneMatch        float64 `json:"phone_match"`
	NameSimilarity    float64 `json:"name_similarity"`
	GitHubMatch       float64 `json:"github_match"`
	LinkedInMatch     float64 `json:"linkedin_match"`
	ContentSimilarity float64 `json:"content_similarity"`
	EducationMatch    float64 `json:"education_match"`
	ExperienceMatch   float64 `json:"experience_match"`
}

// Compare computes the signal vector for a pair of identity records.
// Compare is symmetric: Compare(a, b) == Compare(b, a).
func Compare(a, b *types.IdentityRecord) Signals {
	s := Signals{
		NameSimilarity: NameSimilarity(a.Names, b.Names),
	}

	if a.SharesEmail(b) {
		s.EmailMatch = 1
	}
	if a.SharesPhone(b) {
		s.PhoneMatch = 1
	}
	if a.GitHub != "" && a.GitHub == b.GitHub {
		s.GitHubMatch = 1
	}
	if a.LinkedIn != "" && a.LinkedIn == b.LinkedIn {
		s.LinkedInMatch = 1
	}

	// An equal content hash means the normalized body text is identical.
	if a.ContentHash != "" && a.ContentHash == b.ContentHash {
		s.ContentSimilarity = 1
	}
	if a.EducationHash != "" && a.EducationHash == b.EducationHash {
		s.EducationMatch = hashMatchScore
	}
	if a.ExperienceHash != "" && a.ExperienceHash == b.ExperienceHash {
		s.ExperienceMatch = hashMatchScore
	}

	return s
}
