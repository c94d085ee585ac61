package search

import (
	"testing"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

func unk(n int) []roles.Role {
	out := make([]roles.Role, n)
	for i := range out {
		out[i] = roles.NoRole
	}
	return out
}

func noStatements(n int) []statement.Statement {
	out := make([]statement.Statement, n)
	for i := range out {
		out[i] = statement.None
	}
	return out
}

// S1: Confessor triad - unique world.
func TestScenarioConfessorTriad(t *testing.T) {
	deck := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	quotas := Quotas{Villagers: 2, Minions: 1}
	visible := []roles.Role{roles.Confessor, roles.Confessor, roles.Confessor}
	confirmed := unk(3)
	observed := []statement.Statement{
		statement.ConfessorGood(),
		statement.ConfessorGood(),
		statement.ConfessorDizzy(),
	}

	results := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 2})
	if len(results) != 1 {
		t.Fatalf("expected exactly one world, got %d: %v", len(results), results)
	}
	want := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	for i := range want {
		if results[0][i] != want[i] {
			t.Errorf("seat %d: got %s, want %s", i, results[0][i], want[i])
		}
	}
}

// A Minion-group seat may disguise as any non-Evil deck role (§4.D/4),
// and DoppelGanger — Outcast group, Good alignment — qualifies whenever
// it's in the deck. With every visible face unknown, the DFS is free to
// try that disguise; it must not panic, silent being DoppelGanger's
// registered grammar either way.
func TestScenarioMinionDisguisedAsDoppelGanger(t *testing.T) {
	deck := []roles.Role{roles.Confessor, roles.DoppelGanger, roles.Minion}
	quotas := Quotas{Villagers: 1, Outcasts: 1, Minions: 1}
	visible := unk(3)
	confirmed := unk(3)
	observed := noStatements(3)

	results := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 2})
	if len(results) == 0 {
		t.Fatal("expected at least one consistent world")
	}
}

// S2: Lover pair locates the Minion at seat 4.
func TestScenarioLoverPair(t *testing.T) {
	deck := []roles.Role{roles.Lover, roles.Lover, roles.Confessor, roles.Confessor, roles.Minion}
	quotas := Quotas{Villagers: 4, Minions: 1}
	visible := []roles.Role{roles.Lover, roles.Lover, roles.NoRole, roles.NoRole, roles.NoRole}
	confirmed := unk(5)
	observed := []statement.Statement{
		statement.Lover(1),
		statement.Lover(0),
		statement.None,
		statement.None,
		statement.None,
	}

	results := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 2})
	if len(results) == 0 {
		t.Fatal("expected at least one solution")
	}
	for _, sol := range results {
		if sol[4].Alignment() != roles.Evil {
			t.Errorf("expected Evil at seat 4, got world %v", sol)
		}
	}
}

// S4: confirmed Knight pins down the unique world.
func TestScenarioConfirmedKnight(t *testing.T) {
	deck := []roles.Role{roles.Knight, roles.Minion}
	quotas := Quotas{Villagers: 1, Minions: 1}
	visible := []roles.Role{roles.Knight, roles.Knight}
	confirmed := []roles.Role{roles.Knight, roles.NoRole}
	observed := noStatements(2)

	results := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 1})
	if len(results) != 1 {
		t.Fatalf("expected exactly one world, got %d: %v", len(results), results)
	}
	if results[0][0] != roles.Knight || results[0][1] != roles.Minion {
		t.Errorf("got %v, want [Knight Minion]", results[0])
	}
}

// Boundary: empty deck, all-zero quotas, N=0 returns a single empty world.
func TestEmptyTableReturnsSingleEmptyWorld(t *testing.T) {
	results := Solve(nil, nil, nil, nil, Quotas{}, Options{})
	if len(results) != 1 {
		t.Fatalf("expected exactly one (empty) world, got %d", len(results))
	}
	if len(results[0]) != 0 {
		t.Errorf("expected empty world, got %v", results[0])
	}
}

// Boundary: an unsatisfiable visible lock returns an empty list, never an error.
func TestOverconstrainedReturnsEmpty(t *testing.T) {
	deck := []roles.Role{roles.Confessor, roles.Minion}
	quotas := Quotas{Villagers: 1, Minions: 1}
	// Both seats are locked to a Wretch face, but Wretch is not in the
	// deck: the Confessor shows only itself and the Minion only non-Evil
	// deck roles (Confessor), so no disguise matches.
	visible := []roles.Role{roles.Wretch, roles.Wretch}
	confirmed := unk(2)
	observed := noStatements(2)

	results := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 1})
	if len(results) != 0 {
		t.Fatalf("expected no solutions, got %d: %v", len(results), results)
	}
}

func TestSolveIsDeterministicAcrossRuns(t *testing.T) {
	deck := []roles.Role{roles.Lover, roles.Lover, roles.Confessor, roles.Confessor, roles.Minion}
	quotas := Quotas{Villagers: 4, Minions: 1}
	visible := []roles.Role{roles.Lover, roles.Lover, roles.NoRole, roles.NoRole, roles.NoRole}
	confirmed := unk(5)
	observed := []statement.Statement{
		statement.Lover(1),
		statement.Lover(0),
		statement.None,
		statement.None,
		statement.None,
	}

	first := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 1})
	second := Solve(deck, visible, confirmed, observed, quotas, Options{Workers: 3})

	toSet := func(ws [][]roles.Role) map[string]bool {
		set := make(map[string]bool, len(ws))
		for _, w := range ws {
			key := ""
			for _, r := range w {
				key += string(r) + "|"
			}
			set[key] = true
		}
		return set
	}

	a, b := toSet(first), toSet(second)
	if len(a) != len(b) {
		t.Fatalf("worker count changed the result set size: %d vs %d", len(a), len(b))
	}
	for k := range a {
		if !b[k] {
			t.Errorf("world %q present with 1 worker but missing with 3 workers", k)
		}
	}
}
