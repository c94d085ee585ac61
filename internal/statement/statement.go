// Package statement implements the statement algebra: the tagged
// payload every speaking role can produce, and the per-role
// truthful/lying predicates a fully-resolved world must satisfy.
//
// A Statement is not a Go sum type (the language has none); it is a
// Kind discriminator plus a handful of generically-named fields shared
// across kinds, documented per constructor. This mirrors the
// dispatch-on-speakerVisibleRole-then-variant shape the algebra calls
// for without reflection or boxed interfaces.
package statement

import "github.com/qingchang/grimoire-deduce/internal/roles"
import "github.com/qingchang/grimoire-deduce/internal/seatset"

// Direction is Enlightened's and the geometry helpers' compass.
type Direction int

const (
	Equidistant Direction = iota
	Clockwise
	CounterClockwise
)

// Side is Architect's comparison outcome.
type Side int

const (
	Equal Side = iota
	Left
	Right
)

// Kind discriminates the Statement payload. KindNone is NoStatement.
type Kind int

const (
	KindNone Kind = iota
	KindConfessor
	KindEnlightened
	KindGemcrafter
	KindHunter
	KindLover
	KindJudge
	KindMedium
	KindScout
	KindEmpress
	KindJester
	KindSlayer
	KindBard
	KindFortuneTeller
	KindOracle
	KindDreamer
	KindDruid
	KindBishop
	KindKnitter
	KindAlchemist
	KindArchitect
	KindPlagueDoctor
)

// Statement is the tagged payload attributed to a seat. Field meaning
// depends on Kind; see the constructors below for the mapping used by
// each role.
type Statement struct {
	Kind Kind

	A, B  int // generic int slots: target seat, distance, count, claimed k
	Role  roles.Role
	Align roles.Alignment
	Dir   Direction
	Side  Side
	Flag  bool // generic bool slot: isLying, isEvil, hasRole, hasDistance
	Flag2 bool // second generic bool slot: PlagueDoctor's hasEvil
	Seats seatset.Set
}

// None is the NoStatement sentinel: absent or unrevealed.
var None = Statement{Kind: KindNone}

func ConfessorGood() Statement  { return Statement{Kind: KindConfessor, Flag: false} }
func ConfessorDizzy() Statement { return Statement{Kind: KindConfessor, Flag: true} }

func Enlightened(d Direction) Statement { return Statement{Kind: KindEnlightened, Dir: d} }

func Gemcrafter(target int) Statement { return Statement{Kind: KindGemcrafter, A: target} }

func Hunter(distance int) Statement { return Statement{Kind: KindHunter, A: distance} }

func Lover(evilCount int) Statement { return Statement{Kind: KindLover, A: evilCount} }

func Judge(target int, isLying bool) Statement {
	return Statement{Kind: KindJudge, A: target, Flag: isLying}
}

func Medium(target int, r roles.Role) Statement {
	return Statement{Kind: KindMedium, A: target, Role: r}
}

// ScoutSome claims an Evil role r sits distance d away.
func ScoutSome(r roles.Role, d int) Statement {
	return Statement{Kind: KindScout, Flag: true, Role: r, A: d}
}

// ScoutNone claims exactly one Evil is in play, with no named target.
func ScoutNone() Statement { return Statement{Kind: KindScout, Flag: false} }

func Empress(seats ...int) Statement {
	return Statement{Kind: KindEmpress, Seats: seatset.New(seats...)}
}

func Jester(evilCount int, seats ...int) Statement {
	return Statement{Kind: KindJester, A: evilCount, Seats: seatset.New(seats...)}
}

func Slayer(target int, a roles.Alignment) Statement {
	return Statement{Kind: KindSlayer, A: target, Align: a}
}

// BardSome claims the nearest corruption is exactly d away.
func BardSome(d int) Statement { return Statement{Kind: KindBard, Flag: true, A: d} }

// BardNone claims no corruption exists nearby.
func BardNone() Statement { return Statement{Kind: KindBard} }

func FortuneTeller(isEvil bool, seats ...int) Statement {
	return Statement{Kind: KindFortuneTeller, Flag: isEvil, Seats: seatset.New(seats...)}
}

func Oracle(r roles.Role, seats ...int) Statement {
	return Statement{Kind: KindOracle, Role: r, Seats: seatset.New(seats...)}
}

func Dreamer(target int, r roles.Role) Statement {
	return Statement{Kind: KindDreamer, A: target, Role: r}
}

// DruidNamed claims some seat in the set has role r.
func DruidNamed(r roles.Role, seats ...int) Statement {
	return Statement{Kind: KindDruid, Flag: true, Role: r, Seats: seatset.New(seats...)}
}

// DruidClean claims no seat in the set is an Outcast.
func DruidClean(seats ...int) Statement {
	return Statement{Kind: KindDruid, Seats: seatset.New(seats...)}
}

func Bishop(seats ...int) Statement {
	return Statement{Kind: KindBishop, Seats: seatset.New(seats...)}
}

func Knitter(k int) Statement { return Statement{Kind: KindKnitter, A: k} }

func Alchemist(k int) Statement { return Statement{Kind: KindAlchemist, A: k} }

func Architect(s Side) Statement { return Statement{Kind: KindArchitect, Side: s} }

// PlagueDoctorClean claims seat c is uncorrupted.
func PlagueDoctorClean(c int) Statement { return Statement{Kind: KindPlagueDoctor, A: c} }

// PlagueDoctorEvil claims seat c is corrupted by the Evil at seat e.
func PlagueDoctorEvil(c, e int) Statement {
	return Statement{Kind: KindPlagueDoctor, A: c, Flag2: true, B: e}
}
