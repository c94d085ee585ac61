package search

import (
	"strings"

	"github.com/qingchang/grimoire-deduce/internal/roles"
)

// sortRoleSlice is a manual insertion sort, matching the catalog
// package's style — the slices here are never long enough for a
// different algorithm to matter.
func sortRoleSlice(rs []roles.Role) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j] < rs[j-1]; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

func multisetKey(rs []roles.Role) string {
	cp := append([]roles.Role(nil), rs...)
	sortRoleSlice(cp)
	var b strings.Builder
	for _, r := range cp {
		b.WriteString(string(r))
		b.WriteByte(',')
	}
	return b.String()
}

// sequenceKey is order-sensitive, used to dedup emitted trueRole
// sequences (the search engine's actual results) across workers.
func sequenceKey(rs []roles.Role) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(string(r))
		b.WriteByte(',')
	}
	return b.String()
}

// combinations returns every distinct size-k sub-multiset of items,
// deduplicated by role content (a deck with duplicate role entries
// otherwise yields duplicate index-combinations that look identical).
func combinations(items []roles.Role, k int) [][]roles.Role {
	n := len(items)
	if k == 0 {
		return [][]roles.Role{{}}
	}
	if k < 0 || k > n {
		return nil
	}
	var out [][]roles.Role
	seen := make(map[string]bool)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]roles.Role, k)
		for i, ix := range idx {
			combo[i] = items[ix]
		}
		key := multisetKey(combo)
		if !seen[key] {
			seen[key] = true
			out = append(out, combo)
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// combineGroups Cartesian-combines one subset per group into full
// size-N role multisets.
func combineGroups(vSub []roles.Role, oSubs, mSubs, dSubs [][]roles.Role) [][]roles.Role {
	var out [][]roles.Role
	for _, o := range oSubs {
		for _, m := range mSubs {
			for _, d := range dSubs {
				combo := make([]roles.Role, 0, len(vSub)+len(o)+len(m)+len(d))
				combo = append(combo, vSub...)
				combo = append(combo, o...)
				combo = append(combo, m...)
				combo = append(combo, d...)
				out = append(out, combo)
			}
		}
	}
	return out
}

// permute enumerates every distinct permutation of items across len(items)
// seats, pruning a branch as soon as confirmed[pos] rules it out. emit is
// called once per complete, confirmed-consistent permutation.
func permute(items []roles.Role, confirmed []roles.Role, emit func([]roles.Role)) {
	n := len(items)
	sorted := append([]roles.Role(nil), items...)
	sortRoleSlice(sorted)
	used := make([]bool, n)
	current := make([]roles.Role, n)

	var dfs func(pos int)
	dfs = func(pos int) {
		if pos == n {
			emit(current)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			if i > 0 && sorted[i] == sorted[i-1] && !used[i-1] {
				continue
			}
			if confirmed != nil && confirmed[pos] != unknown && confirmed[pos] != sorted[i] {
				continue
			}
			used[i] = true
			current[pos] = sorted[i]
			dfs(pos + 1)
			used[i] = false
		}
	}
	dfs(0)
}

func distinctRolesInGroup(deck []roles.Role, g roles.Group) []roles.Role {
	seen := make(map[roles.Role]bool)
	var out []roles.Role
	for _, r := range deck {
		if r.Group() == g && !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func distinctNonEvilRoles(deck []roles.Role) []roles.Role {
	seen := make(map[roles.Role]bool)
	var out []roles.Role
	for _, r := range deck {
		if r.Alignment() == roles.Good && !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func toRoleSet(rs []roles.Role) map[roles.Role]bool {
	set := make(map[roles.Role]bool, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

func villagerRolesNotInPlay(deck []roles.Role, inPlay map[roles.Role]bool) []roles.Role {
	var out []roles.Role
	for _, r := range distinctRolesInGroup(deck, roles.Villager) {
		if !inPlay[r] {
			out = append(out, r)
		}
	}
	return out
}

func villagerRolesInPlay(r []roles.Role) []roles.Role {
	return distinctRolesInGroup(r, roles.Villager)
}
