package statement

import (
	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/seatset"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

// Neighbors returns the two seats at the given offset from i, circularly.
// When N is even and offset == N/2 both land on the same seat; the
// returned set then has a single member.
func Neighbors(n, i, offset int) seatset.Set {
	return seatset.New(world.Neighbor(n, i, -offset), world.Neighbor(n, i, offset))
}

// ClosestEvilDistance returns the smallest offset d>=1 at which either
// neighbour of i is Evil-aligned. Absent any Evil within the table,
// it returns N — the policy floor §8 settles on, not the legacy 1.
func ClosestEvilDistance(tr []roles.Role, i int) int {
	n := len(tr)
	max := (n + 1) / 2
	for d := 1; d <= max; d++ {
		if tr[world.Neighbor(n, i, -d)].Alignment() == roles.Evil || tr[world.Neighbor(n, i, d)].Alignment() == roles.Evil {
			return d
		}
	}
	return n
}

// ClosestEvilDirection walks offsets 1..floor((N+1)/2); the first
// offset with Evil on exactly one side yields that side, Equidistant
// if both sides tie or no Evil is found at all.
func ClosestEvilDirection(tr []roles.Role, i int) Direction {
	n := len(tr)
	max := (n + 1) / 2
	for d := 1; d <= max; d++ {
		ccw := tr[world.Neighbor(n, i, -d)].Alignment() == roles.Evil
		cw := tr[world.Neighbor(n, i, d)].Alignment() == roles.Evil
		switch {
		case ccw && cw:
			return Equidistant
		case cw:
			return Clockwise
		case ccw:
			return CounterClockwise
		}
	}
	return Equidistant
}

// ClosestCorruptDistance returns the smallest d>=1 at which either
// neighbour of i is corrupted, and whether any was found at all.
func ClosestCorruptDistance(corrupted seatset.Set, n, i int) (int, bool) {
	max := (n + 1) / 2
	for d := 1; d <= max; d++ {
		if corrupted.Has(world.Neighbor(n, i, -d)) || corrupted.Has(world.Neighbor(n, i, d)) {
			return d, true
		}
	}
	return 0, false
}

func countByAlignment(tr []roles.Role, seats []int, a roles.Alignment) int {
	c := 0
	for _, s := range seats {
		if tr[s].Alignment() == a {
			c++
		}
	}
	return c
}

func countByGroup(tr []roles.Role, seats []int, g roles.Group) int {
	c := 0
	for _, s := range seats {
		if tr[s].Group() == g {
			c++
		}
	}
	return c
}

func evilInPlay(tr []roles.Role) int {
	c := 0
	for _, r := range tr {
		if r.Alignment() == roles.Evil {
			c++
		}
	}
	return c
}

// adjacentEvilPairs counts circularly-adjacent seat pairs that are
// both Evil-aligned.
func adjacentEvilPairs(tr []roles.Role) int {
	n := len(tr)
	c := 0
	for i := 0; i < n; i++ {
		j := world.Neighbor(n, i, 1)
		if tr[i].Alignment() == roles.Evil && tr[j].Alignment() == roles.Evil {
			c++
		}
	}
	return c
}

// architectSides splits the other N-1 seats into the arc reached
// faster clockwise (right) versus counter-clockwise (left) from i; a
// seat exactly opposite (only possible when N is even) belongs to
// neither side.
func architectSides(n, i int) (left, right []int) {
	for d := 1; d < n; d++ {
		j := world.Neighbor(n, i, d)
		switch {
		case d < n-d:
			right = append(right, j)
		case d > n-d:
			left = append(left, j)
		}
	}
	return left, right
}

func architectSide(tr []roles.Role, i int) Side {
	n := len(tr)
	left, right := architectSides(n, i)
	le := countByAlignment(tr, left, roles.Evil)
	re := countByAlignment(tr, right, roles.Evil)
	switch {
	case re > le:
		return Right
	case le > re:
		return Left
	default:
		return Equal
	}
}
