package validate

import (
	"testing"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

func TestValidateAcceptsConfessorTriad(t *testing.T) {
	deck := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	trueRole := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	visible := []roles.Role{roles.Confessor, roles.Confessor, roles.Confessor}
	confirmed := []roles.Role{roles.NoRole, roles.NoRole, roles.NoRole}
	observed := []statement.Statement{
		statement.ConfessorGood(),
		statement.ConfessorGood(),
		statement.ConfessorDizzy(),
	}

	ok, reasons := Validate(deck, trueRole, visible, confirmed, observed)
	if !ok {
		t.Fatalf("expected valid, got reasons: %v", reasons)
	}
}

func TestValidateRejectsConfirmedMismatch(t *testing.T) {
	deck := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	trueRole := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	visible := []roles.Role{roles.Confessor, roles.Confessor, roles.Confessor}
	confirmed := []roles.Role{roles.Minion, roles.NoRole, roles.NoRole}
	observed := []statement.Statement{
		statement.ConfessorGood(),
		statement.ConfessorGood(),
		statement.ConfessorDizzy(),
	}

	ok, reasons := Validate(deck, trueRole, visible, confirmed, observed)
	if ok {
		t.Fatal("expected invalid: confirmed role contradicts the candidate")
	}
	if len(reasons) == 0 {
		t.Error("expected at least one diagnostic reason")
	}
}

func TestValidateRejectsInconsistentStatement(t *testing.T) {
	deck := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	trueRole := []roles.Role{roles.Confessor, roles.Confessor, roles.Minion}
	visible := []roles.Role{roles.Confessor, roles.Confessor, roles.Confessor}
	confirmed := []roles.Role{roles.NoRole, roles.NoRole, roles.NoRole}
	observed := []statement.Statement{
		statement.ConfessorDizzy(), // a truthful Confessor cannot say this
		statement.ConfessorGood(),
		statement.ConfessorDizzy(),
	}

	ok, reasons := Validate(deck, trueRole, visible, confirmed, observed)
	if ok {
		t.Fatal("expected invalid: seat 0 cannot truthfully claim dizzy")
	}
	if len(reasons) == 0 {
		t.Error("expected at least one diagnostic reason")
	}
}
