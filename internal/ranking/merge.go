package ranking

import (
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Merge folds newly scored candidates into a previously persisted result.
// Records whose file path is already present keep their stored scores, the
// combined list is re-sorted, and ranks and duplicate metadata are recomputed
// over the union of the groups detected this run and the groups an earlier
// run recorded in the prior result. Members grouped in any run therefore keep
// sharing a single rank. Merging zero new candidates returns the prior result
// unchanged, so re-running with no new resumes is byte-for-byte stable.
func Merge(prior *types.RankedResult, fresh []types.CandidateScore, groups []types.DuplicateGroup) *types.RankedResult {
	if len(fresh) == 0 {
		return prior
	}

	merged := &types.RankedResult{
		JobTitle:    prior.JobTitle,
		GeneratedAt: prior.GeneratedAt,
		Candidates:  append([]types.CandidateScore(nil), prior.Candidates...),
	}
	for _, c := range fresh {
		if merged.FindByPath(c.FilePath) != nil {
			continue
		}
		merged.Candidates = append(merged.Candidates, c)
	}

	combined := combineGroups(groupsFromResult(prior), groups)

	SortByAdjustedScore(merged.Candidates)
	AssignRanks(merged.Candidates, combined)
	AttachDuplicateMetadata(merged.Candidates, combined)
	return merged
}

// groupsFromResult rebuilds duplicate groups from the membership metadata a
// persisted result carries. The in-memory repository only ever sees the
// resumes of the current run, so groups formed in earlier runs survive solely
// through the Duplicates lists written into the result.
func groupsFromResult(prior *types.RankedResult) []types.DuplicateGroup {
	var groups []types.DuplicateGroup
	for i := range prior.Candidates {
		c := &prior.Candidates[i]
		if !c.IsGroupPrimary() || len(c.Duplicates) == 0 {
			continue
		}
		members := make([]string, 0, len(c.Duplicates)+1)
		members = append(members, c.FilePath)
		members = append(members, c.Duplicates...)
		groups = append(groups, types.DuplicateGroup{
			Primary: c.FilePath,
			Members: members,
		})
	}
	return groups
}

// combineGroups unions two group sets. Groups sharing any member are folded
// into one; the earlier group's primary takes precedence, so a candidate
// promoted to primary in run one stays primary when a later run links more
// submissions to the group.
func combineGroups(prior, fresh []types.DuplicateGroup) []types.DuplicateGroup {
	if len(prior) == 0 {
		return fresh
	}
	if len(fresh) == 0 {
		return prior
	}

	combined := make([]types.DuplicateGroup, 0, len(prior)+len(fresh))
	byMember := make(map[string]int)

	fold := func(g types.DuplicateGroup) {
		var targets []int
		seen := make(map[int]bool)
		for _, member := range g.Members {
			if idx, ok := byMember[member]; ok && !seen[idx] {
				seen[idx] = true
				targets = append(targets, idx)
			}
		}

		if len(targets) == 0 {
			idx := len(combined)
			combined = append(combined, types.DuplicateGroup{
				Primary: g.Primary,
				Members: append([]string(nil), g.Members...),
			})
			for _, member := range g.Members {
				byMember[member] = idx
			}
			return
		}

		// Fold g and every overlapping group into the first one found.
		dst := targets[0]
		for _, idx := range targets[1:] {
			for _, member := range combined[idx].Members {
				combined[dst].Members = append(combined[dst].Members, member)
				byMember[member] = dst
			}
			combined[idx].Members = nil
		}
		for _, member := range g.Members {
			if _, ok := byMember[member]; !ok {
				combined[dst].Members = append(combined[dst].Members, member)
				byMember[member] = dst
			}
		}
	}

	for _, g := range prior {
		fold(g)
	}
	for _, g := range fresh {
		fold(g)
	}

	result := make([]types.DuplicateGroup, 0, len(combined))
	for _, g := range combined {
		if len(g.Members) > 1 {
			result = append(result, g)
		}
	}
	return result
}
