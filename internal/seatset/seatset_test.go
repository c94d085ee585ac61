package seatset

import "testing"

func TestMembershipAndEquality(t *testing.T) {
	a := New(1, 3, 5)
	b := New(5, 3, 1)
	if !a.Equal(b) {
		t.Error("sets built from the same members in different order should be equal")
	}
	if !a.Has(3) || a.Has(4) {
		t.Error("membership test is wrong")
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
}

func TestWithAndWithoutDoNotMutateReceiver(t *testing.T) {
	a := New(1, 2)
	b := a.With(3)
	if a.Has(3) {
		t.Error("With must not mutate the receiver")
	}
	if !b.Has(3) {
		t.Error("With must add the seat to the returned copy")
	}
	c := b.Without(1)
	if !b.Has(1) {
		t.Error("Without must not mutate the receiver")
	}
	if c.Has(1) {
		t.Error("Without must remove the seat from the returned copy")
	}
}

func TestEmptySet(t *testing.T) {
	e := Empty()
	if e.Len() != 0 {
		t.Errorf("Empty().Len() = %d, want 0", e.Len())
	}
	if e.Has(0) {
		t.Error("Empty set should have no members")
	}
}
