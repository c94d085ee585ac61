package statement

import (
	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/seatset"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

// Context carries everything a predicate needs beyond the speaker's
// seat and its own statement: the world under test, the corruption
// bitmap being tried, and the Alchemist's per-seat cleared counts for
// that bitmap.
type Context struct {
	World     world.World
	Corrupted seatset.Set
	Cleared   []int
}

type predicate func(ctx Context, seat int, stmt Statement) bool

type predicatePair struct {
	truthful predicate
	lying    predicate
}

// silent accepts only NoStatement on both branches.
func silent(ctx Context, seat int, stmt Statement) bool { return stmt.Kind == KindNone }

// negate builds a lying predicate from a truthful one by plain
// negation — the default for every role §4.B does not call out a
// specific lying style for.
func negate(truthful predicate) predicate {
	return func(ctx Context, seat int, stmt Statement) bool { return !truthful(ctx, seat, stmt) }
}

var dispatch map[roles.Role]predicatePair

func init() {
	dispatch = map[roles.Role]predicatePair{
		roles.Confessor:     {confessorTruthful, confessorLying},
		roles.Enlightened:   {enlightenedTruthful, enlightenedLying},
		roles.Gemcrafter:    {gemcrafterTruthful, gemcrafterLying},
		roles.Hunter:        {hunterTruthful, hunterLying},
		roles.Lover:         {loverTruthful, loverLying},
		roles.Judge:         {judgeTruthful, judgeLying},
		roles.Medium:        {mediumTruthful, mediumLying},
		roles.Scout:         {scoutTruthful, scoutLying},
		roles.Empress:       {empressTruthful, empressLying},
		roles.Jester:        {jesterTruthful, jesterLying},
		roles.Slayer:        {slayerTruthful, slayerLying},
		roles.Bard:          {bardTruthful, bardLying},
		roles.FortuneTeller: {fortuneTellerTruthful, fortuneTellerLying},
		roles.Oracle:        {oracleTruthful, negate(oracleTruthful)},
		roles.Dreamer:       {dreamerTruthful, negate(dreamerTruthful)},
		roles.Druid:         {druidTruthful, negate(druidTruthful)},
		roles.Bishop:        {bishopTruthful, negate(bishopTruthful)},
		roles.Knitter:       {knitterTruthful, negate(knitterTruthful)},
		roles.Alchemist:     {alchemistTruthful, negate(alchemistTruthful)},
		roles.Architect:     {architectTruthful, negate(architectTruthful)},
		roles.PlagueDoctor:  {plagueDoctorTruthful, negate(plagueDoctorTruthful)},

		roles.Knight:     {silent, silent},
		roles.Bombardier: {silent, silent},
		roles.Wretch:     {silent, silent},
		roles.Poet:       {silent, silent},
		roles.Baker:      {silent, silent},
		roles.Witness:    {silent, silent},
		// Drunk has no statement grammar in §6 ("others: no parseable
		// statement") and no predicate in §4.B; treated as silent like
		// the roles above rather than invented.
		roles.Drunk: {silent, silent},
		// DoppelGanger has no statement grammar in §6 either, but §4.D/4
		// lets a Minion-group seat disguise as DoppelGanger (a non-Evil
		// deck role), so it must still be dispatchable as a visible
		// face; treated as silent for the same reason as Drunk above.
		roles.DoppelGanger: {silent, silent},
	}
}

// Accepts reports whether the statement attributed to seat is
// consistent with the world under the given corruption context. The
// speaker is judged as its visible face, since that is what the table
// hears; lying is selected by the speaker's true role plus corruption.
// NoStatement (absent or unrevealed) is consistent with every face.
func Accepts(ctx Context, seat int, stmt Statement) bool {
	face := ctx.World.DisguiseRole[seat]
	pair, ok := dispatch[face]
	if !ok {
		panic("statement: no predicate registered for visible role " + string(face))
	}
	if stmt.Kind == KindNone {
		return true
	}
	lies := ctx.World.TrueRole[seat].LiesByDefault() || ctx.Corrupted.Has(seat)
	if lies {
		return pair.lying(ctx, seat, stmt)
	}
	return pair.truthful(ctx, seat, stmt)
}

func confessorTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindConfessor && !stmt.Flag
}
func confessorLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindConfessor && stmt.Flag
}

func enlightenedTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindEnlightened && stmt.Dir == ClosestEvilDirection(ctx.World.TrueRole, seat)
}
func enlightenedLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindEnlightened && stmt.Dir != ClosestEvilDirection(ctx.World.TrueRole, seat)
}

func gemcrafterTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindGemcrafter && ctx.World.TrueRole[stmt.A].Alignment() == roles.Good
}
func gemcrafterLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindGemcrafter && ctx.World.TrueRole[stmt.A].Alignment() == roles.Evil
}

func hunterTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindHunter && stmt.A == ClosestEvilDistance(ctx.World.TrueRole, seat)
}
func hunterLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindHunter && stmt.A != ClosestEvilDistance(ctx.World.TrueRole, seat)
}

func loverEvilCount(ctx Context, seat int) int {
	n := ctx.World.N()
	return countByAlignment(ctx.World.TrueRole, Neighbors(n, seat, 1).Slice(), roles.Evil)
}
func loverTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindLover && stmt.A == loverEvilCount(ctx, seat)
}
func loverLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindLover && stmt.A != loverEvilCount(ctx, seat) && stmt.A <= 2
}

// judgeExpectedLying is the Judge's literal accusation: the target
// lies by default or is corrupted, unless it is disguised as a
// Confessor, in which case the Judge's rule exempts it.
func judgeExpectedLying(ctx Context, target int) bool {
	expected := ctx.World.TrueRole[target].LiesByDefault() || ctx.Corrupted.Has(target)
	return expected && ctx.World.DisguiseRole[target] != roles.Confessor
}
func judgeTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindJudge && stmt.Flag == judgeExpectedLying(ctx, stmt.A)
}
func judgeLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindJudge && stmt.Flag != judgeExpectedLying(ctx, stmt.A)
}

func mediumTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindMedium && stmt.A != seat &&
		ctx.World.TrueRole[stmt.A].Alignment() == roles.Good && stmt.Role == ctx.World.TrueRole[stmt.A]
}
func mediumLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindMedium &&
		ctx.World.TrueRole[stmt.A] != ctx.World.DisguiseRole[stmt.A] && stmt.Role == ctx.World.DisguiseRole[stmt.A]
}

func scoutMatch(ctx Context, stmt Statement) bool {
	for j, r := range ctx.World.TrueRole {
		if r == stmt.Role && r.Alignment() == roles.Evil && ClosestEvilDistance(ctx.World.TrueRole, j) == stmt.A {
			return true
		}
	}
	return false
}
func scoutTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindScout {
		return false
	}
	evil := evilInPlay(ctx.World.TrueRole)
	if !stmt.Flag {
		return evil == 1
	}
	return evil >= 2 && scoutMatch(ctx, stmt)
}
func scoutLying(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindScout {
		return false
	}
	evil := evilInPlay(ctx.World.TrueRole)
	if !stmt.Flag {
		return evil != 1
	}
	return !(evil >= 2 && scoutMatch(ctx, stmt))
}

func empressTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindEmpress && stmt.Seats.Len() == 3 &&
		countByAlignment(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Evil) == 1
}
func empressLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindEmpress && stmt.Seats.Len() == 3 &&
		countByAlignment(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Evil) == 0
}

func jesterTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindJester && stmt.Seats.Len() == 3 &&
		countByAlignment(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Evil) == stmt.A
}
func jesterLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindJester && stmt.Seats.Len() == 3 &&
		countByAlignment(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Evil) != stmt.A
}

func slayerTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindSlayer && stmt.Align == ctx.World.TrueRole[stmt.A].Alignment()
}
func slayerLying(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindSlayer && stmt.Align == roles.Good
}

func bardTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindBard {
		return false
	}
	d, ok := ClosestCorruptDistance(ctx.Corrupted, ctx.World.N(), seat)
	if !ok {
		return !stmt.Flag
	}
	return stmt.Flag && stmt.A == d
}
func bardLying(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindBard {
		return false
	}
	n := ctx.World.N()
	max := (n + 1) / 2
	d, ok := ClosestCorruptDistance(ctx.Corrupted, n, seat)
	if !stmt.Flag {
		return ok
	}
	return stmt.A >= 1 && stmt.A <= max && !(ok && stmt.A == d)
}

func fortuneTellerTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindFortuneTeller || stmt.Seats.Len() != 2 {
		return false
	}
	hasEvil := countByAlignment(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Evil) > 0
	return hasEvil == stmt.Flag
}
func fortuneTellerLying(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindFortuneTeller || stmt.Seats.Len() != 2 {
		return false
	}
	hasEvil := countByAlignment(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Evil) > 0
	return hasEvil != stmt.Flag
}

func oracleTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindOracle || stmt.Seats.Len() != 2 {
		return false
	}
	s := stmt.Seats.Slice()
	a, b := s[0], s[1]
	tr := ctx.World.TrueRole
	return (tr[a].Alignment() == roles.Good && tr[b] == stmt.Role) ||
		(tr[b].Alignment() == roles.Good && tr[a] == stmt.Role)
}

func dreamerTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindDreamer &&
		(ctx.World.TrueRole[stmt.A].Alignment() == roles.Good || ctx.World.TrueRole[stmt.A] == stmt.Role)
}

func druidTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindDruid || stmt.Seats.Len() != 3 {
		return false
	}
	if stmt.Flag {
		for _, s := range stmt.Seats.Slice() {
			if ctx.World.TrueRole[s] == stmt.Role {
				return true
			}
		}
		return false
	}
	return countByGroup(ctx.World.TrueRole, stmt.Seats.Slice(), roles.Outcast) == 0
}

func bishopTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindBishop {
		return false
	}
	seats := stmt.Seats.Slice()
	tr := ctx.World.TrueRole
	return countByGroup(tr, seats, roles.Villager) == 1 &&
		countByGroup(tr, seats, roles.Minion) == 1 &&
		countByGroup(tr, seats, roles.Outcast) <= 1 &&
		countByGroup(tr, seats, roles.Demon) == 0
}

func knitterTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindKnitter && stmt.A == adjacentEvilPairs(ctx.World.TrueRole)
}

func alchemistTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindAlchemist && stmt.A == ctx.Cleared[seat]
}

func architectTruthful(ctx Context, seat int, stmt Statement) bool {
	return stmt.Kind == KindArchitect && stmt.Side == architectSide(ctx.World.TrueRole, seat)
}

func plagueDoctorTruthful(ctx Context, seat int, stmt Statement) bool {
	if stmt.Kind != KindPlagueDoctor {
		return false
	}
	if !stmt.Flag2 {
		return !ctx.Corrupted.Has(stmt.A)
	}
	return ctx.Corrupted.Has(stmt.A) && ctx.World.TrueRole[stmt.B].Alignment() == roles.Evil
}
