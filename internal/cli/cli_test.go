package cli

import (
	"errors"
	"testing"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

func TestParseArgsConfessorTriad(t *testing.T) {
	puzzle, err := ParseArgs("Confessor,Confessor,Minion", "2", "0", "1", "0",
		[]string{"confessor:?:iamgood", "confessor:?:iamgood", "confessor:?:iamdizzy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if puzzle.Quotas.N() != 3 {
		t.Fatalf("expected 3 seats, got %d", puzzle.Quotas.N())
	}
	if puzzle.Visible[0] != roles.Confessor {
		t.Errorf("seat 0 visible = %s, want Confessor", puzzle.Visible[0])
	}
	if puzzle.Observed[2] != statement.ConfessorDizzy() {
		t.Errorf("seat 2 observed = %+v, want ConfessorDizzy", puzzle.Observed[2])
	}
}

func TestParseArgsUnknownRoleIsInputError(t *testing.T) {
	_, err := ParseArgs("NotARole", "1", "0", "0", "0", []string{"?:?:?"})
	if err == nil {
		t.Fatal("expected an error for an unknown deck role")
	}
	var ierr *InputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InputError, got %T: %v", err, err)
	}
}

func TestParseArgsSeatSpecCountMismatch(t *testing.T) {
	_, err := ParseArgs("Confessor,Minion", "1", "0", "1", "0", []string{"?:?:?"})
	if err == nil {
		t.Fatal("expected an error when seat spec count does not match quotas")
	}
}

func TestParseStatementLiteralJudge(t *testing.T) {
	st, err := ParseStatementLiteral(roles.Judge, "2;lying")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != statement.Judge(2, true) {
		t.Errorf("got %+v, want Judge(2,true)", st)
	}
}

func TestParseStatementLiteralSilentRoleRejectsNonNoStatement(t *testing.T) {
	if _, err := ParseStatementLiteral(roles.Knight, "iamgood"); err == nil {
		t.Fatal("expected an error: Knight is silent")
	}
	st, err := ParseStatementLiteral(roles.Knight, "?")
	if err != nil || st != statement.None {
		t.Fatalf("Knight with \"?\" should parse to NoStatement, got %+v, %v", st, err)
	}
}

func TestParseStatementLiteralEmpressSeatSet(t *testing.T) {
	st, err := ParseStatementLiteral(roles.Empress, "1,2,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, seat := range []int{1, 2, 3} {
		if !st.Seats.Has(seat) {
			t.Errorf("expected seat %d in parsed Empress set, got %+v", seat, st)
		}
	}
	if st.Seats.Len() != 3 {
		t.Errorf("expected exactly 3 seats, got %d", st.Seats.Len())
	}
}

func TestParseClipboardRoundTrip(t *testing.T) {
	text := "Confessor, Confessor, Minion\n2 0 1 0\n1 | Confessor | ? | I am good\n2 | Confessor | ? | I am good\n3 | Confessor | ? | I am dizzy\n"
	puzzle, err := ParseClipboard(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if puzzle.Quotas.N() != 3 {
		t.Fatalf("expected 3 seats, got %d", puzzle.Quotas.N())
	}
	if puzzle.Observed[2] != statement.ConfessorDizzy() {
		t.Errorf("seat 2 (1-based 3) observed = %+v, want ConfessorDizzy", puzzle.Observed[2])
	}
}
