// Package similarity computes pairwise identity signals between two resumes
// and classifies them as duplicate or distinct submissions.
package similarity

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/antzucaro/matchr"
)

const (
	// firstNameGate: fuzzy similarity between names with differing first
	// tokens counts at full strength only above this threshold.
	firstNameGate = 0.7

	// firstNameMismatchScale discounts fuzzy similarity when first tokens
	// differ and the score is below the gate.
	firstNameMismatchScale = 0.3

	// phoneticFloor: a phonetic code match may only raise a similarity that
	// already exceeds this value.
	phoneticFloor = 0.5

	// phoneticBoost is added (not substituted) on a phonetic match.
	phoneticBoost = 0.15

	// containmentCeiling caps the substring-containment raise. Containment is
	// consulted only while the provisional similarity is below containmentGate.
	containmentGate    = 0.6
	containmentCeiling = 0.4
)

var levenshtein = metrics.NewLevenshtein()

// NameSimilarity returns the maximum pairwise similarity over all name pairs
// from the two sets. Empty sets yield 0.
func NameSimilarity(namesA, namesB []string) float64 {
	best := 0.0
	for _, a := range namesA {
		for _, b := range namesB {
			if sim := namePairSimilarity(a, b); sim > best {
				best = sim
			}
		}
	}
	return best
}

// namePairSimilarity scores one pair of name strings in [0,1].
//
// The boosts are deliberately asymmetric in strength: phonetic and substring
// evidence may only raise a similarity that is already plausible, never
// manufacture a high match between two dissimilar names.
func namePairSimilarity(a, b string) float64 {
	tokensA := nameTokens(a)
	tokensB := nameTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	sim := tokenSortRatio(tokensA, tokensB)

	// First tokens are presumed first names; a mismatch there is evidence of
	// different identity.
	if tokensA[0] != tokensB[0] {
		if sim <= firstNameGate {
			sim *= firstNameMismatchScale
		}
	}

	if sim > phoneticFloor && phoneticMatch(tokensA[0], tokensB[0]) {
		sim = clamp01(sim + phoneticBoost)
	}

	if sim < containmentGate && containsName(tokensA, tokensB) {
		if sim < containmentCeiling {
			sim = containmentCeiling
		}
	}

	return clamp01(sim)
}

// tokenSortRatio computes a token-order-insensitive fuzzy ratio between two
// token lists using normalized Levenshtein similarity over sorted tokens.
func tokenSortRatio(tokensA, tokensB []string) float64 {
	sortedA := make([]string, len(tokensA))
	copy(sortedA, tokensA)
	sort.Strings(sortedA)

	sortedB := make([]string, len(tokensB))
	copy(sortedB, tokensB)
	sort.Strings(sortedB)

	return strutil.Similarity(strings.Join(sortedA, " "), strings.Join(sortedB, " "), levenshtein)
}

// phoneticMatch reports whether two tokens share a Soundex code.
func phoneticMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	codeA := matchr.Soundex(a)
	codeB := matchr.Soundex(b)
	return codeA != "" && codeA == codeB
}

// containsName reports whether either token list is fully contained in the
// other, as with "Amit Shah" inside "Amit Kumar Shah".
func containsName(tokensA, tokensB []string) bool {
	return tokenSubset(tokensA, tokensB) || tokenSubset(tokensB, tokensA)
}

// tokenSubset reports whether every token of sub occurs in super.
func tokenSubset(sub, super []string) bool {
	superSet := make(map[string]bool, len(super))
	for _, t := range super {
		superSet[t] = true
	}
	for _, t := range sub {
		if !superSet[t] {
			return false
		}
	}
	return true
}

// nameTokens lower-cases and splits a name into tokens.
func nameTokens(name string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(name)))
}

// FirstNameTokens returns the lower-cased first token of every name in the set.
func FirstNameTokens(names []string) []string {
	var tokens []string
	for _, name := range names {
		if t := nameTokens(name); len(t) > 0 {
			tokens = append(tokens, t[0])
		}
	}
	return tokens
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
