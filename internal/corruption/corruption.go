// Package corruption implements the corruption engine (§4.C): from a
// candidate world it enumerates every corruption bitmap the Demon,
// Poisoner, and PlagueDoctor can jointly produce, then runs Alchemist
// clearing once per bitmap. Callers test a world's observed
// statements against each resulting (bitmap, cleared-counts) pair and
// accept the world if any one pair satisfies every seat.
package corruption

import (
	"fmt"
	"strings"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/seatset"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

// Config is one corruption configuration a world can be checked
// against: the corrupted-seat bitmap plus the Alchemist's per-seat
// cleared-corruption counts under that bitmap.
type Config struct {
	Corrupted seatset.Set
	Cleared   []int
}

// elector models one mandatory choice among a set of candidate
// targets. An empty Options list means the elector had nothing
// eligible and contributes no branching at all.
type elector struct {
	Options []int
}

// Enumerate runs the Pooka -> Poisoner -> PlagueDoctor -> Alchemist
// cascade and returns the distinct (bitmap, cleared) pairs a world's
// statements must be tried against.
func Enumerate(w world.World) []Config {
	electors := collectElectors(w)
	bitmaps := expand(electors)

	seen := make(map[string]bool, len(bitmaps))
	out := make([]Config, 0, len(bitmaps))
	for _, bm := range bitmaps {
		final, cleared := clearAlchemists(w, bm)
		key := configKey(final, cleared)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Config{Corrupted: final, Cleared: cleared})
	}
	return out
}

func collectElectors(w world.World) []elector {
	n := w.N()
	var electors []elector

	// Pooka: one forced, single-target elector per eligible neighbour —
	// this is the "one elector per eligible neighbour" decomposition
	// §9 calls out; it can admit duplicate final bitmaps across
	// multiple Pooka seats, which Enumerate dedups away.
	for p := 0; p < n; p++ {
		if w.TrueRole[p] != roles.Pooka {
			continue
		}
		for _, nb := range []int{world.Neighbor(n, p, -1), world.Neighbor(n, p, 1)} {
			if w.TrueRole[nb].Group() == roles.Villager {
				electors = append(electors, elector{Options: []int{nb}})
			}
		}
	}

	// Poisoner: choose exactly one eligible neighbour; if none, the
	// elector contributes nothing.
	for p := 0; p < n; p++ {
		if w.TrueRole[p] != roles.Poisoner {
			continue
		}
		var opts []int
		for _, nb := range []int{world.Neighbor(n, p, -1), world.Neighbor(n, p, 1)} {
			if w.TrueRole[nb].Group() == roles.Villager {
				opts = append(opts, nb)
			}
		}
		if len(opts) > 0 {
			electors = append(electors, elector{Options: opts})
		}
	}

	// PlagueDoctor: choose exactly one Villager-group seat anywhere.
	for p := 0; p < n; p++ {
		if w.TrueRole[p] != roles.PlagueDoctor {
			continue
		}
		var opts []int
		for s := 0; s < n; s++ {
			if w.TrueRole[s].Group() == roles.Villager {
				opts = append(opts, s)
			}
		}
		if len(opts) > 0 {
			electors = append(electors, elector{Options: opts})
		}
	}

	return electors
}

// expand runs the Cartesian product of every elector's options,
// skipping an option whose seat is already corrupted by an earlier
// elector, and passing a bitmap through unchanged when an elector has
// no fresh target left.
func expand(electors []elector) []seatset.Set {
	bitmaps := []seatset.Set{seatset.Empty()}
	for _, e := range electors {
		next := make([]seatset.Set, 0, len(bitmaps))
		for _, bm := range bitmaps {
			fresh := false
			for _, opt := range e.Options {
				if bm.Has(opt) {
					continue
				}
				fresh = true
				next = append(next, bm.With(opt))
			}
			if !fresh {
				next = append(next, bm)
			}
		}
		bitmaps = next
	}
	return bitmaps
}

// clearAlchemists runs the single Alchemist-clearing pass over bm:
// every uncorrupted, truthfully-speaking Alchemist face clears
// corrupted neighbours at offsets 1 and 2 and truthfully claims how
// many it cleared.
func clearAlchemists(w world.World, bm seatset.Set) (seatset.Set, []int) {
	n := w.N()
	cleared := make([]int, n)
	toClear := seatset.Empty()

	for i := 0; i < n; i++ {
		if w.DisguiseRole[i] != roles.Alchemist {
			continue
		}
		if bm.Has(i) || w.TrueRole[i].LiesByDefault() {
			continue
		}
		candidates := seatset.New(
			world.Neighbor(n, i, -1), world.Neighbor(n, i, 1),
			world.Neighbor(n, i, -2), world.Neighbor(n, i, 2),
		)
		corruptedNeighbors := candidates.Intersect(bm)
		cleared[i] = corruptedNeighbors.Len()
		for _, s := range corruptedNeighbors.Slice() {
			toClear = toClear.With(s)
		}
	}

	final := bm
	for _, s := range toClear.Slice() {
		final = final.Without(s)
	}
	return final, cleared
}

func configKey(bm seatset.Set, cleared []int) string {
	var b strings.Builder
	for _, s := range bm.Slice() {
		fmt.Fprintf(&b, "%d,", s)
	}
	b.WriteByte('|')
	for _, c := range cleared {
		fmt.Fprintf(&b, "%d,", c)
	}
	return b.String()
}
