package similarity

import (
	"fmt"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	// nameFloorForPhone: a shared phone with name similarity below this value
	// is treated as different people (phones are shared and recycled).
	nameFloorForPhone = 0.5

	// corroborationRequired is how many strong indicators must accompany a
	// phone match before it counts as a duplicate.
	corroborationRequired = 3

	strongNameThreshold    = 0.8
	strongContentThreshold = 0.9
	strongHashThreshold    = 0.8

	// Weighted-composite coefficients for the fallback rule.
	weightName      = 0.30
	weightEducation = 0.25
	weightWork      = 0.25
	weightContent   = 0.20

	compositeThreshold = 0.9
)

// Decision is the classifier output for one pair of identity records.
type Decision struct {
	IsDuplicate bool    `json:"is_duplicate"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

// Classify converts a signal vector into a duplicate decision. Rules are
// evaluated in order; the first applicable rule wins.
func Classify(s Signals) Decision {
	// Rule 1: a shared email is conclusive regardless of name dissimilarity.
	if s.EmailMatch == 1 {
		return Decision{IsDuplicate: true, Confidence: 1.0, Reason: "same email"}
	}

	// Rule 2: a shared phone is never conclusive on its own.
	if s.PhoneMatch == 1 {
		if s.NameSimilarity < nameFloorForPhone {
			return Decision{Reason: "same phone, very different names; likely different people"}
		}
		if n := countStrongIndicators(s); n >= corroborationRequired {
			return Decision{
				IsDuplicate: true,
				Confidence:  0.95,
				Reason:      fmt.Sprintf("same phone with %d corroborating signals", n),
			}
		}
		return Decision{Reason: "same phone without sufficient corroboration"}
	}

	// Rule 3: profile handles are unique per person.
	if s.GitHubMatch == 1 {
		return Decision{IsDuplicate: true, Confidence: 0.95, Reason: "same github profile"}
	}
	if s.LinkedInMatch == 1 {
		return Decision{IsDuplicate: true, Confidence: 0.95, Reason: "same linkedin profile"}
	}

	// Rule 4: identical body text.
	if s.ContentSimilarity == 1 {
		return Decision{IsDuplicate: true, Confidence: 0.9, Reason: "identical resume content"}
	}

	// Rule 5: weighted composite of the soft signals.
	weighted := weightName*s.NameSimilarity +
		weightEducation*s.EducationMatch +
		weightWork*s.ExperienceMatch +
		weightContent*s.ContentSimilarity

	allStrong := s.NameSimilarity > strongNameThreshold &&
		s.EducationMatch >= strongHashThreshold &&
		s.ExperienceMatch >= strongHashThreshold
	if allStrong || weighted > compositeThreshold {
		return Decision{
			IsDuplicate: true,
			Confidence:  weighted,
			Reason:      "matching name, education and experience history",
		}
	}

	return Decision{Reason: "insufficient identity signals"}
}

// countStrongIndicators counts the corroborating signals that may back up a
// phone match.
func countStrongIndicators(s Signals) int {
	count := 0
	if s.NameSimilarity > strongNameThreshold {
		count++
	}
	if s.ContentSimilarity > strongContentThreshold {
		count++
	}
	if s.GitHubMatch == 1 {
		count++
	}
	if s.LinkedInMatch == 1 {
		count++
	}
	if s.EducationMatch >= strongHashThreshold {
		count++
	}
	if s.ExperienceMatch >= strongHashThreshold {
		count++
	}
	return count
}

// DifferentPeople is the overriding guard applied before a phone-based
// duplicate flag is accepted: records with different first-name tokens and
// different emails are forced to distinct, protecting against a shared
// household or recruiter phone number merging unrelated applicants.
func DifferentPeople(a, b *types.IdentityRecord) bool {
	if len(a.Emails) == 0 || len(b.Emails) == 0 || a.SharesEmail(b) {
		return false
	}

	firstsA := FirstNameTokens(a.Names)
	firstsB := FirstNameTokens(b.Names)
	if len(firstsA) == 0 || len(firstsB) == 0 {
		return false
	}
	for _, fa := range firstsA {
		for _, fb := range firstsB {
			if fa == fb {
				return false
			}
		}
	}
	return true
}
