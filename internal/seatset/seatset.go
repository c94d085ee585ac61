// Package seatset provides the fixed-width bit-packed seat sets the
// specification calls for: target-index sets carried by statements,
// and the corruption bitmap produced by the corruption engine. Set
// equality and membership are backed by github.com/bits-and-blooms/bitset,
// so both are constant-word operations regardless of table size.
package seatset

import "github.com/bits-and-blooms/bitset"

// Set is an immutable-by-convention set of seat indices in [0, N).
// Callers should treat values returned by New/constructors as owned;
// mutate only through With/Without, which copy.
type Set struct {
	bits *bitset.BitSet
}

// New builds a Set from the given seat indices.
func New(seats ...int) Set {
	bs := bitset.New(0)
	for _, s := range seats {
		bs.Set(uint(s))
	}
	return Set{bits: bs}
}

// Empty returns the empty set.
func Empty() Set { return Set{bits: bitset.New(0)} }

// Has reports whether seat is a member.
func (s Set) Has(seat int) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Test(uint(seat))
}

// With returns a copy of s with seat added.
func (s Set) With(seat int) Set {
	cp := s.clone()
	cp.bits.Set(uint(seat))
	return cp
}

// Without returns a copy of s with seat removed.
func (s Set) Without(seat int) Set {
	cp := s.clone()
	cp.bits.Clear(uint(seat))
	return cp
}

// Len reports the number of member seats.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Equal reports set equality by membership, irrespective of order —
// the representation is a word-for-word compare under the hood.
func (s Set) Equal(o Set) bool {
	a, b := s.bits, o.bits
	if a == nil {
		a = bitset.New(0)
	}
	if b == nil {
		b = bitset.New(0)
	}
	// bitset.Equal also compares bit lengths, which can differ for sets
	// with the same members (Without never shrinks); count differing bits.
	return a.SymmetricDifferenceCardinality(b) == 0
}

// Intersect returns the intersection of s and o.
func (s Set) Intersect(o Set) Set {
	cp := s.clone()
	if o.bits != nil {
		cp.bits.InPlaceIntersection(o.bits)
	} else {
		cp.bits = bitset.New(0)
	}
	return cp
}

// Slice returns the member seats in ascending order.
func (s Set) Slice() []int {
	if s.bits == nil {
		return nil
	}
	out := make([]int, 0, s.bits.Count())
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func (s Set) clone() Set {
	if s.bits == nil {
		return Set{bits: bitset.New(0)}
	}
	return Set{bits: s.bits.Clone()}
}
