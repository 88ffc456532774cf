package ranking

import (
	"sort"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// SortByAdjustedScore orders candidates by adjusted score descending, file
// path ascending on ties so repeated runs produce identical output.
func SortByAdjustedScore(candidates []types.CandidateScore) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].AdjustedScore != candidates[j].AdjustedScore {
			return candidates[i].AdjustedScore > candidates[j].AdjustedScore
		}
		return candidates[i].FilePath < candidates[j].FilePath
	})
}

// AssignRanks walks the score-sorted list once and assigns duplicate-aware
// ranks: the first member of a duplicate group reached in score order claims
// the current rank for every member of the group, and the whole group
// consumes a single rank slot. Duplicate submissions therefore never receive
// different ranks and never inflate the rank sequence, which keeps ranks a
// contiguous 1..k sequence even when a secondary outscores its primary.
func AssignRanks(candidates []types.CandidateScore, groups []types.DuplicateGroup) {
	groupByMember := memberIndex(groups)

	byPath := make(map[string]*types.CandidateScore, len(candidates))
	for i := range candidates {
		byPath[candidates[i].FilePath] = &candidates[i]
	}

	processed := make(map[string]bool)
	rank := 1
	for i := range candidates {
		c := &candidates[i]
		if processed[c.FilePath] {
			continue
		}

		if group, ok := groupByMember[c.FilePath]; ok {
			for _, member := range group.Members {
				if m, found := byPath[member]; found {
					m.FinalRank = rank
					processed[member] = true
				}
			}
			rank++
			continue
		}

		c.FinalRank = rank
		processed[c.FilePath] = true
		rank++
	}
}

// AttachDuplicateMetadata copies group membership onto each score record:
// primaries list their secondaries, secondaries point back at the primary.
// Any metadata already on a record is overwritten, so the incremental merge
// can re-attach after combining group sets across runs.
func AttachDuplicateMetadata(candidates []types.CandidateScore, groups []types.DuplicateGroup) {
	groupByMember := memberIndex(groups)

	for i := range candidates {
		c := &candidates[i]
		c.HasDuplicates = false
		c.DuplicateCount = 0
		c.Duplicates = nil
		c.DuplicateOf = ""

		group, ok := groupByMember[c.FilePath]
		if !ok {
			continue
		}
		c.HasDuplicates = true
		c.DuplicateCount = group.Size() - 1
		if group.Primary == c.FilePath {
			for _, member := range group.Members {
				if member != c.FilePath {
					c.Duplicates = append(c.Duplicates, member)
				}
			}
		} else {
			c.DuplicateOf = group.Primary
		}
	}
}

func memberIndex(groups []types.DuplicateGroup) map[string]*types.DuplicateGroup {
	index := make(map[string]*types.DuplicateGroup)
	for i := range groups {
		for _, member := range groups[i].Members {
			index[member] = &groups[i]
		}
	}
	return index
}
