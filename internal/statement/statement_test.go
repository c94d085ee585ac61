package statement

import (
	"testing"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/seatset"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

func plainWorld(trueRole []roles.Role) world.World {
	return world.World{
		TrueRole:     trueRole,
		WretchRole:   append([]roles.Role(nil), trueRole...),
		DisguiseRole: append([]roles.Role(nil), trueRole...),
	}
}

func TestConfessorTruthfulAndLying(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Confessor, roles.Confessor, roles.Minion})
	w.DisguiseRole[2] = roles.Confessor
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 3)}

	if !Accepts(ctx, 0, ConfessorGood()) {
		t.Error("truthful Confessor should accept IAmGood")
	}
	if Accepts(ctx, 0, ConfessorDizzy()) {
		t.Error("truthful Confessor should reject IAmDizzy")
	}
	// seat 2 is a Minion (Evil, lies by default) wearing a Confessor face.
	if !Accepts(ctx, 2, ConfessorDizzy()) {
		t.Error("lying Confessor-faced speaker should accept IAmDizzy")
	}
	if Accepts(ctx, 2, ConfessorGood()) {
		t.Error("lying Confessor-faced speaker should reject IAmGood")
	}
}

func TestGemcrafterPointsAtAlignment(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Gemcrafter, roles.Confessor, roles.Minion})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 3)}

	if !Accepts(ctx, 0, Gemcrafter(1)) {
		t.Error("truthful Gemcrafter pointing at a Good seat should be accepted")
	}
	if Accepts(ctx, 0, Gemcrafter(2)) {
		t.Error("truthful Gemcrafter pointing at an Evil seat should be rejected")
	}
}

func TestJudgeConfessorDisguiseException(t *testing.T) {
	w := world.World{
		TrueRole:     []roles.Role{roles.Judge, roles.Minion},
		WretchRole:   []roles.Role{roles.Judge, roles.Minion},
		DisguiseRole: []roles.Role{roles.Judge, roles.Confessor},
	}
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 2)}
	// Seat 1 lies by default (Minion) but is exempted by disguising as
	// Confessor, so the Judge's truthful claim is isLying=false.
	if !Accepts(ctx, 0, Judge(1, false)) {
		t.Error("Judge should truthfully call the Confessor-disguised liar not-lying")
	}
	if Accepts(ctx, 0, Judge(1, true)) {
		t.Error("Judge should reject isLying=true for a Confessor-disguised speaker")
	}
}

func TestLoverCountsEvilNeighbors(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Lover, roles.Minion, roles.Confessor})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 3)}
	if !Accepts(ctx, 0, Lover(1)) {
		t.Error("Lover should truthfully report one Evil neighbor")
	}
	if Accepts(ctx, 0, Lover(0)) {
		t.Error("Lover reporting zero when one exists should be rejected")
	}
}

func TestScoutRequiresPluralityForNamedTarget(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Scout, roles.Minion, roles.Confessor})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 3)}
	// Only one Evil in play: None is the truthful claim.
	if !Accepts(ctx, 0, ScoutNone()) {
		t.Error("Scout should truthfully claim None with exactly one Evil")
	}
	if Accepts(ctx, 0, ScoutSome(roles.Minion, ClosestEvilDistance(w.TrueRole, 1))) {
		t.Error("Scout naming a target requires at least two Evils in play")
	}
}

func TestBardLyingNoneRequiresExistingCorruption(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Baa, roles.Bard, roles.Confessor})
	corrupted := seatset.New(2)
	ctx := Context{World: w, Corrupted: corrupted, Cleared: make([]int, 3)}
	// seat 1 (Bard) is Good and uncorrupted: truthful branch applies.
	d, ok := ClosestCorruptDistance(corrupted, 3, 1)
	if !ok || d != 1 {
		t.Fatalf("expected corrupt distance 1, got %d,%v", d, ok)
	}
	if !Accepts(ctx, 1, BardSome(1)) {
		t.Error("truthful Bard should report the real corrupt distance")
	}
	if Accepts(ctx, 1, BardNone()) {
		t.Error("truthful Bard should not claim None when a corruption exists")
	}

	// A Minion wearing the Bard face lies: None is accepted only while
	// some corruption exists.
	liar := world.World{
		TrueRole:     []roles.Role{roles.Baa, roles.Minion, roles.Confessor},
		WretchRole:   []roles.Role{roles.Baa, roles.Minion, roles.Confessor},
		DisguiseRole: []roles.Role{roles.Baa, roles.Bard, roles.Confessor},
	}
	if !Accepts(Context{World: liar, Corrupted: corrupted, Cleared: make([]int, 3)}, 1, BardNone()) {
		t.Error("lying Bard should be able to claim None while a corruption exists")
	}
	if Accepts(Context{World: liar, Corrupted: seatset.Empty(), Cleared: make([]int, 3)}, 1, BardNone()) {
		t.Error("lying Bard claiming None with no corruption anywhere would be telling the truth")
	}
}

func TestEmpressSetMembershipIsOrderIndependent(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Empress, roles.Minion, roles.Confessor, roles.Confessor})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 4)}
	if !Accepts(ctx, 0, Empress(1, 2, 3)) {
		t.Error("truthful Empress should accept exactly-one-Evil set")
	}
	if !Accepts(ctx, 0, Empress(3, 1, 2)) {
		t.Error("Empress set membership must be order-independent")
	}
}

func TestArchitectComparesBothSides(t *testing.T) {
	// speaker at seat 0; clockwise side {1} is Evil, counterclockwise
	// side {2} is Good, so the table favors Right.
	w := plainWorld([]roles.Role{roles.Architect, roles.Minion, roles.Confessor})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 3)}
	if !Accepts(ctx, 0, Architect(Right)) {
		t.Error("Architect should truthfully report Right when the clockwise side has more Evil")
	}
	if Accepts(ctx, 0, Architect(Left)) {
		t.Error("truthful Architect should reject the wrong side")
	}
}

func TestSilentRolesOnlyAcceptNoStatement(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Knight, roles.Minion})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: make([]int, 2)}
	if !Accepts(ctx, 0, None) {
		t.Error("Knight should accept NoStatement")
	}
	if Accepts(ctx, 0, ConfessorGood()) {
		t.Error("Knight should reject any non-silent statement")
	}
}

func TestAlchemistReportsCorrectedCount(t *testing.T) {
	w := plainWorld([]roles.Role{roles.Alchemist, roles.Minion})
	ctx := Context{World: w, Corrupted: seatset.Empty(), Cleared: []int{2, 0}}
	if !Accepts(ctx, 0, Alchemist(2)) {
		t.Error("Alchemist should truthfully report its cleared count")
	}
	if Accepts(ctx, 0, Alchemist(0)) {
		t.Error("Alchemist misreporting its cleared count should be rejected")
	}
}

func TestPlagueDoctorCleanAndEvilClaims(t *testing.T) {
	w := plainWorld([]roles.Role{roles.PlagueDoctor, roles.Minion, roles.Confessor})
	corrupted := seatset.New(1)
	ctx := Context{World: w, Corrupted: corrupted, Cleared: make([]int, 3)}
	if Accepts(ctx, 0, PlagueDoctorClean(1)) {
		t.Error("PlagueDoctor should not claim a corrupted seat is clean")
	}
	if !Accepts(ctx, 0, PlagueDoctorEvil(1, 1)) {
		t.Error("PlagueDoctor should truthfully name the Evil seat causing the corruption")
	}
}
