package similarity

import (
	"testing"

	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_SameEmailIsConclusive(t *testing.T) {
	// Email match wins even when the names are entirely dissimilar.
	d := Classify(Signals{EmailMatch: 1, NameSimilarity: 0.0})

	assert.True(t, d.IsDuplicate)
	assert.Equal(t, 1.0, d.Confidence)
	assert.Equal(t, "same email", d.Reason)
}

func TestClassify_SamePhoneVeryDifferentNames(t *testing.T) {
	d := Classify(Signals{PhoneMatch: 1, NameSimilarity: 0.2})

	assert.False(t, d.IsDuplicate)
	assert.Contains(t, d.Reason, "different people")
}

func TestClassify_SamePhoneWithoutCorroboration(t *testing.T) {
	// Similar names but only one strong indicator: not enough.
	d := Classify(Signals{PhoneMatch: 1, NameSimilarity: 0.9})

	assert.False(t, d.IsDuplicate)
	assert.Contains(t, d.Reason, "corroboration")
}

func TestClassify_SamePhoneWithThreeStrongIndicators(t *testing.T) {
	d := Classify(Signals{
		PhoneMatch:     1,
		NameSimilarity: 0.9,
		GitHubMatch:    1,
		EducationMatch: 0.8,
	})

	assert.True(t, d.IsDuplicate)
	assert.Equal(t, 0.95, d.Confidence)
}

func TestClassify_SharedProfileHandles(t *testing.T) {
	d := Classify(Signals{GitHubMatch: 1})
	assert.True(t, d.IsDuplicate)
	assert.Equal(t, 0.95, d.Confidence)

	d = Classify(Signals{LinkedInMatch: 1})
	assert.True(t, d.IsDuplicate)
	assert.Equal(t, 0.95, d.Confidence)
}

func TestClassify_IdenticalContent(t *testing.T) {
	d := Classify(Signals{ContentSimilarity: 1})

	assert.True(t, d.IsDuplicate)
	assert.Equal(t, 0.9, d.Confidence)
	assert.Equal(t, "identical resume content", d.Reason)
}

func TestClassify_WeightedCompositeAllStrong(t *testing.T) {
	d := Classify(Signals{
		NameSimilarity:  0.95,
		EducationMatch:  0.8,
		ExperienceMatch: 0.8,
	})

	assert.True(t, d.IsDuplicate)
	assert.Greater(t, d.Confidence, 0.0)
}

func TestClassify_NoSignals(t *testing.T) {
	d := Classify(Signals{})

	assert.False(t, d.IsDuplicate)
	assert.Equal(t, "insufficient identity signals", d.Reason)
}

func TestCompare_Symmetric(t *testing.T) {
	a := &types.IdentityRecord{
		Emails:        []string{"x@y.com"},
		Phones:        []string{"5551234567"},
		Names:         []string{"John Smith"},
		GitHub:        "jsmith",
		ContentHash:   "abc123",
		EducationHash: "def456",
	}
	b := &types.IdentityRecord{
		Emails:        []string{"z@y.com"},
		Phones:        []string{"5551234567"},
		Names:         []string{"Jon Smith"},
		GitHub:        "jsmith",
		ContentHash:   "abc999",
		EducationHash: "def456",
	}

	assert.Equal(t, Compare(a, b), Compare(b, a))
}

func TestCompare_Signals(t *testing.T) {
	a := &types.IdentityRecord{
		Emails:      []string{"x@y.com"},
		Phones:      []string{"5551234567"},
		Names:       []string{"John Smith"},
		ContentHash: "abc123",
	}
	b := &types.IdentityRecord{
		Emails:      []string{"x@y.com"},
		Phones:      []string{"9999999999"},
		Names:       []string{"John Smith"},
		ContentHash: "abc123",
	}

	s := Compare(a, b)
	assert.Equal(t, 1.0, s.EmailMatch)
	assert.Equal(t, 0.0, s.PhoneMatch)
	assert.Equal(t, 1.0, s.ContentSimilarity)
	assert.InDelta(t, 1.0, s.NameSimilarity, 1e-9)
	// Absent hashes never match each other
	assert.Equal(t, 0.0, s.EducationMatch)
	assert.Equal(t, 0.0, s.ExperienceMatch)
}

func TestCompare_HashMatchesScoreBelowFull(t *testing.T) {
	a := &types.IdentityRecord{EducationHash: "h1", ExperienceHash: "h2"}
	b := &types.IdentityRecord{EducationHash: "h1", ExperienceHash: "h2"}

	s := Compare(a, b)
	assert.Equal(t, 0.8, s.EducationMatch)
	assert.Equal(t, 0.8, s.ExperienceMatch)
}

func TestDifferentPeople_Guard(t *testing.T) {
	amit := &types.IdentityRecord{
		Emails: []string{"amit@x.com"},
		Names:  []string{"Amit Shah"},
	}
	priya := &types.IdentityRecord{
		Emails: []string{"priya@y.com"},
		Names:  []string{"Priya Nair"},
	}
	amitAlt := &types.IdentityRecord{
		Emails: []string{"other@z.com"},
		Names:  []string{"Amit Kumar"},
	}

	assert.True(t, DifferentPeople(amit, priya))
	// Shared first name token: guard does not apply
	assert.False(t, DifferentPeople(amit, amitAlt))
}

func TestDifferentPeople_RequiresBothIdentifiers(t *testing.T) {
	noEmail := &types.IdentityRecord{Names: []string{"Amit Shah"}}
	noName := &types.IdentityRecord{Emails: []string{"a@b.com"}}
	full := &types.IdentityRecord{Emails: []string{"c@d.com"}, Names: []string{"Priya Nair"}}

	assert.False(t, DifferentPeople(noEmail, full))
	assert.False(t, DifferentPeople(noName, full))
}

func TestDifferentPeople_SharedEmailNeverDifferent(t *testing.T) {
	a := &types.IdentityRecord{Emails: []string{"x@y.com"}, Names: []string{"Amit Shah"}}
	b := &types.IdentityRecord{Emails: []string{"x@y.com"}, Names: []string{"Priya Nair"}}

	assert.False(t, DifferentPeople(a, b))
}
