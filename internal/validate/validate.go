// Package validate implements the validator (§4.E): given one
// candidate trueRole sequence and the same observation inputs the
// search engine takes, it runs the Wretch/disguise/corruption layers
// without the combination/permutation search and reports either
// success or a list of human-readable reasons the candidate fails.
// It shares core logic with internal/search but never prunes away a
// branch without explaining why, since its purpose is diagnosis, not
// throughput.
package validate

import (
	"fmt"

	"github.com/qingchang/grimoire-deduce/internal/corruption"
	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

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

// Validate reports whether trueRole, together with some Wretch and
// disguise assignment and some corruption bitmap, satisfies every
// observed statement and the visible/confirmed locks. On failure it
// returns the most diagnostic reasons it could assemble — the
// unsatisfied statements under the disguise/corruption combination
// that came closest to working, plus any confirmed mismatch, which is
// cheap to check directly against the candidate.
func Validate(deck []roles.Role, trueRole, visible, confirmed []roles.Role, observed []statement.Statement) (bool, []string) {
	var reasons []string
	for i, c := range confirmed {
		if c != roles.NoRole && c != trueRole[i] {
			reasons = append(reasons, fmt.Sprintf("seat %d: confirmed role %s does not match candidate true role %s", i, c, trueRole[i]))
		}
	}

	bestSatisfied := -1
	var bestReport []string
	found := enumerateAssignments(deck, trueRole, visible, func(w world.World) bool {
		for _, cfg := range corruption.Enumerate(w) {
			ctx := statement.Context{World: w, Corrupted: cfg.Corrupted, Cleared: cfg.Cleared}
			satisfied := 0
			var report []string
			for i, st := range observed {
				if statement.Accepts(ctx, i, st) {
					satisfied++
				} else {
					report = append(report, fmt.Sprintf(
						"seat %d: statement is inconsistent with visible role %s under the best-fit corruption bitmap",
						i, w.DisguiseRole[i]))
				}
			}
			if satisfied == len(observed) {
				return true
			}
			if satisfied > bestSatisfied {
				bestSatisfied = satisfied
				bestReport = report
			}
		}
		return false
	})

	if found && len(reasons) == 0 {
		return true, nil
	}
	reasons = append(reasons, bestReport...)
	if len(reasons) == 0 {
		reasons = append(reasons, "no disguise assignment is consistent with the visible observations")
	}
	return false, reasons
}

// enumerateAssignments walks every Wretch/disguise assignment
// consistent with visible, calling visit on each complete world.
// Enumeration stops as soon as visit reports success.
func enumerateAssignments(deck []roles.Role, trueRole, visible []roles.Role, visit func(world.World) bool) bool {
	n := len(trueRole)
	minionRoster := distinctRolesInGroup(deck, roles.Minion)
	nonEvilRoster := distinctNonEvilRoles(deck)
	inPlay := make(map[roles.Role]bool, n)
	for _, r := range trueRole {
		inPlay[r] = true
	}
	villagerInPlay := distinctRolesInGroup(trueRole, roles.Villager)
	var villagerNotInPlay []roles.Role
	for _, r := range distinctRolesInGroup(deck, roles.Villager) {
		if !inPlay[r] {
			villagerNotInPlay = append(villagerNotInPlay, r)
		}
	}

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
			return visit(w)
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
				if visible[i] != roles.NoRole && visible[i] != dr {
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
