package registry

import "github.com/jonathan/candidate-ranker/internal/types"

// BuildGroups performs the post-hoc full scan over all stored candidates and
// emits duplicate groups as connected components linked by a shared email or
// phone number. The scan works on raw record identifiers, independent of what
// was registered in the fast-path indexes. The earliest-inserted member of
// each component is its primary.
func (r *Repository) BuildGroups() []types.DuplicateGroup {
	candidates := r.All()
	n := len(candidates)
	if n == 0 {
		return nil
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			// Keep the smaller index as root so the first-inserted member
			// stays primary.
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := candidates[i].Record, candidates[j].Record
			if a.SharesEmail(b) || a.SharesPhone(b) {
				union(i, j)
			}
		}
	}

	members := make(map[int][]string)
	for i, c := range candidates {
		root := find(i)
		members[root] = append(members[root], c.Record.Filename)
	}

	var groups []types.DuplicateGroup
	for i := 0; i < n; i++ {
		if find(i) != i {
			continue
		}
		component := members[i]
		if len(component) < 2 {
			continue
		}
		groups = append(groups, types.DuplicateGroup{
			Primary: component[0],
			Members: component,
		})
	}
	return groups
}

// Summary materializes the duplicate-detection output artifact from the
// group scan.
func (r *Repository) Summary() types.DuplicateSummary {
	groups := r.BuildGroups()
	duplicateCount := 0
	for _, g := range groups {
		duplicateCount += g.Size() - 1
	}
	return types.DuplicateSummary{
		GroupCount:      len(groups),
		DuplicateCount:  duplicateCount,
		Groups:          groups,
		TotalCandidates: r.Len(),
	}
}
