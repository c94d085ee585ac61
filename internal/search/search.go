package search

import (
	"sync"

	"github.com/qingchang/grimoire-deduce/internal/corruption"
	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

// Solve enumerates every trueRole sequence consistent with deck,
// visible, confirmed, observed, and quotas. Ordering of results is not
// guaranteed to be stable across runs with different worker counts;
// callers wanting canonical output should sort by roles.Less.
func Solve(deck []roles.Role, visible, confirmed []roles.Role, observed []statement.Statement, quotas Quotas, opts Options) [][]roles.Role {
	vSubs := combinations(deckGroupRoles(deck, roles.Villager), quotas.Villagers)
	oSubs := combinations(deckGroupRoles(deck, roles.Outcast), quotas.Outcasts)
	mSubs := combinations(deckGroupRoles(deck, roles.Minion), quotas.Minions)
	dSubs := combinations(deckGroupRoles(deck, roles.Demon), quotas.Demons)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	work := make(chan []roles.Role)
	local := make([][][]roles.Role, workers)
	var wg sync.WaitGroup
	for wid := 0; wid < workers; wid++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var mine [][]roles.Role
			for vSub := range work {
				mine = append(mine, solveVillagerSubset(deck, vSub, oSubs, mSubs, dSubs, visible, confirmed, observed)...)
			}
			local[id] = mine
		}(wid)
	}
	for _, v := range vSubs {
		work <- v
	}
	close(work)
	wg.Wait()

	seen := make(map[string]bool)
	var out [][]roles.Role
	for _, mine := range local {
		for _, r := range mine {
			key := sequenceKey(r)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, r)
		}
	}
	return out
}

// deckGroupRoles returns the deck's roles of group g, repeats
// preserved, for combinations to choose a quota-sized subset from.
func deckGroupRoles(deck []roles.Role, g roles.Group) []roles.Role {
	var out []roles.Role
	for _, r := range deck {
		if r.Group() == g {
			out = append(out, r)
		}
	}
	return out
}

// solveVillagerSubset is the unit of work partitioned across workers:
// one villager-group subset, combined with every outcast/minion/demon
// subset, carried through layers 2-5.
func solveVillagerSubset(deck, vSub []roles.Role, oSubs, mSubs, dSubs [][]roles.Role, visible, confirmed []roles.Role, observed []statement.Statement) [][]roles.Role {
	var results [][]roles.Role
	for _, R := range combineGroups(vSub, oSubs, mSubs, dSubs) {
		for _, variant := range counsellorVariants(deck, R) {
			permute(variant, confirmed, func(perm []roles.Role) {
				if !counsellorHasOutcastNeighbor(perm) {
					return
				}
				if solveAssignments(deck, perm, visible, observed) {
					results = append(results, append([]roles.Role(nil), perm...))
				}
			})
		}
	}
	return results
}

// counsellorVariants implements layer 2: a Counsellor-bearing multiset
// passes through unchanged and also yields one variant per (present
// Villager, eligible Outcast-not-in-play) substitution.
func counsellorVariants(deck, R []roles.Role) [][]roles.Role {
	if !toRoleSet(R)[roles.Counsellor] {
		return [][]roles.Role{R}
	}
	variants := [][]roles.Role{append([]roles.Role(nil), R...)}
	present := toRoleSet(R)
	outcastRoster := distinctRolesInGroup(deck, roles.Outcast)
	for i, r := range R {
		if r.Group() != roles.Villager {
			continue
		}
		for _, oc := range outcastRoster {
			if present[oc] {
				continue
			}
			variant := append([]roles.Role(nil), R...)
			variant[i] = oc
			variants = append(variants, variant)
		}
	}
	return variants
}

// counsellorHasOutcastNeighbor implements the layer-3 Counsellor
// pruning rule: every Counsellor seat needs an Outcast-group direct
// neighbour.
func counsellorHasOutcastNeighbor(perm []roles.Role) bool {
	n := len(perm)
	for i, r := range perm {
		if r != roles.Counsellor {
			continue
		}
		left := perm[world.Neighbor(n, i, -1)]
		right := perm[world.Neighbor(n, i, 1)]
		if left.Group() != roles.Outcast && right.Group() != roles.Outcast {
			return false
		}
	}
	return true
}

// solveAssignments implements layers 4-5 for one fixed trueRole
// permutation: it depth-first searches Wretch and disguise
// assignments, pruning by visible as soon as a seat's disguise is
// chosen, and for each complete assignment asks the corruption engine
// for bitmaps to test the observed statements against. It returns
// true — and stops searching — on the first satisfying combination.
func solveAssignments(deck []roles.Role, trueRole, visible []roles.Role, observed []statement.Statement) bool {
	n := len(trueRole)
	minionRoster := distinctRolesInGroup(deck, roles.Minion)
	nonEvilRoster := distinctNonEvilRoles(deck)
	inPlay := toRoleSet(trueRole)
	villagerNotInPlay := villagerRolesNotInPlay(deck, inPlay)
	villagerInPlay := villagerRolesInPlay(trueRole)

	wretchRole := make([]roles.Role, n)
	disguiseRole := make([]roles.Role, n)

	var dfs func(i int) bool
	dfs = func(i int) bool {
		if i == n {
			w := world.World{
				TrueRole:     trueRole,
				WretchRole:   append([]roles.Role(nil), wretchRole...),
				DisguiseRole: append([]roles.Role(nil), disguiseRole...),
			}
			return satisfiesSomeCorruption(w, observed)
		}

		role := trueRole[i]

		var wretchOptions []roles.Role
		if role == roles.Wretch {
			wretchOptions = minionRoster
		} else {
			wretchOptions = []roles.Role{role}
		}

		var disguiseOptions []roles.Role
		switch {
		case role == roles.DoppelGanger:
			disguiseOptions = villagerInPlay
		case role.Group() == roles.Demon:
			disguiseOptions = villagerNotInPlay
		case role.Group() == roles.Minion:
			disguiseOptions = nonEvilRoster
		default:
			disguiseOptions = []roles.Role{role}
		}

		for _, wr := range wretchOptions {
			wretchRole[i] = wr
			for _, dr := range disguiseOptions {
				if visible[i] != unknown && visible[i] != dr {
					continue
				}
				disguiseRole[i] = dr
				if dfs(i + 1) {
					return true
				}
			}
		}
		return false
	}

	return dfs(0)
}

func satisfiesSomeCorruption(w world.World, observed []statement.Statement) bool {
	for _, cfg := range corruption.Enumerate(w) {
		ctx := statement.Context{World: w, Corrupted: cfg.Corrupted, Cleared: cfg.Cleared}
		all := true
		for i, st := range observed {
			if !statement.Accepts(ctx, i, st) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
