// Package search implements the five-layer search engine (§4.D): it
// drives combination, permutation, Wretch/disguise assignment, and
// corruption resolution, calling into internal/statement and
// internal/corruption, and collects every world consistent with the
// observations.
package search

import "github.com/qingchang/grimoire-deduce/internal/roles"

// Quotas is the required per-group seat count for a valid world.
type Quotas struct {
	Villagers int
	Outcasts  int
	Minions   int
	Demons    int
}

// N is the table size implied by the quotas.
func (q Quotas) N() int { return q.Villagers + q.Outcasts + q.Minions + q.Demons }

// Options tunes the engine's execution without changing its results.
type Options struct {
	// Workers is the worker-pool size for the outermost (villager
	// subset) partition described in §5. Zero or negative means 1.
	Workers int
}

// unknown is the sentinel for an absent visible/confirmed observation.
const unknown = roles.NoRole
