// Package world defines the candidate World the search engine builds
// and the statement/corruption/validate packages evaluate against: an
// ordered, fixed-length sequence of per-seat role assignments.
package world

import "github.com/qingchang/grimoire-deduce/internal/roles"

// World is a fully-resolved candidate assignment of roles to seats on
// a circular table of N = len(TrueRole) seats.
type World struct {
	// TrueRole[i] is the role actually dealt to seat i.
	TrueRole []roles.Role
	// WretchRole[i] equals TrueRole[i] unless TrueRole[i] is Wretch, in
	// which case it is the Minion-group role the Wretch impersonates
	// to itself.
	WretchRole []roles.Role
	// DisguiseRole[i] is the face seat i shows to the table.
	DisguiseRole []roles.Role
}

// N returns the table size.
func (w World) N() int { return len(w.TrueRole) }

// Neighbor computes a circular seat index offset from i by delta
// (positive or negative), modulo N.
func Neighbor(n, i, delta int) int {
	return ((i+delta)%n + n) % n
}

// Clone returns a deep-enough copy for a search engine to mutate
// per-seat without aliasing the original slices.
func (w World) Clone() World {
	cp := World{
		TrueRole:     make([]roles.Role, len(w.TrueRole)),
		WretchRole:   make([]roles.Role, len(w.WretchRole)),
		DisguiseRole: make([]roles.Role, len(w.DisguiseRole)),
	}
	copy(cp.TrueRole, w.TrueRole)
	copy(cp.WretchRole, w.WretchRole)
	copy(cp.DisguiseRole, w.DisguiseRole)
	return cp
}
