package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSimilarity_IdenticalNames(t *testing.T) {
	sim := NameSimilarity([]string{"John Smith"}, []string{"John Smith"})
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestNameSimilarity_TokenOrderInsensitive(t *testing.T) {
	sim := NameSimilarity([]string{"Smith John"}, []string{"John Smith"})
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestNameSimilarity_UnrelatedNamesStayLow(t *testing.T) {
	sim := NameSimilarity([]string{"Amit Shah"}, []string{"Priya Nair"})
	assert.Less(t, sim, 0.5)
}

func TestNameSimilarity_PhoneticBoostForSpellingVariant(t *testing.T) {
	// "Jon" and "John" share a Soundex code; the high fuzzy score may be raised.
	sim := NameSimilarity([]string{"John Smith"}, []string{"Jon Smith"})
	assert.Greater(t, sim, 0.85)
}

func TestNameSimilarity_BoostsNeverManufactureHighMatch(t *testing.T) {
	// Shared surname only: first names differ, so the fuzzy score is scaled
	// down and containment may raise it to at most 0.4.
	sim := NameSimilarity([]string{"Amit Shah"}, []string{"Priya Shah"})
	assert.LessOrEqual(t, sim, 0.4)
}

func TestNameSimilarity_ContainmentRaisesToCeiling(t *testing.T) {
	// One name fully contained in the other with different first tokens.
	sim := NameSimilarity([]string{"Shah Kumar"}, []string{"Ravi Shah Kumar Patel"})
	assert.GreaterOrEqual(t, sim, 0.3)
	assert.LessOrEqual(t, sim, 0.6)
}

func TestNameSimilarity_MaxOverAllPairs(t *testing.T) {
	sim := NameSimilarity(
		[]string{"Completely Different", "John Smith"},
		[]string{"John Smith"},
	)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestNameSimilarity_EmptySets(t *testing.T) {
	assert.Zero(t, NameSimilarity(nil, []string{"John Smith"}))
	assert.Zero(t, NameSimilarity([]string{"John Smith"}, nil))
	assert.Zero(t, NameSimilarity(nil, nil))
}

func TestNameSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"John Smith", "Jon Smith"},
		{"Amit Shah", "Amit Kumar Shah"},
		{"Priya Nair", "Nair Priya"},
		{"A B", "C D"},
	}
	for _, p := range pairs {
		ab := NameSimilarity([]string{p[0]}, []string{p[1]})
		ba := NameSimilarity([]string{p[1]}, []string{p[0]})
		assert.InDelta(t, ab, ba, 1e-9, "similarity(%q,%q) must be symmetric", p[0], p[1])
	}
}

func TestFirstNameTokens(t *testing.T) {
	tokens := FirstNameTokens([]string{"John Smith", "  Priya Nair ", ""})
	assert.Equal(t, []string{"john", "priya"}, tokens)
}
