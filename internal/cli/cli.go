// Package cli implements the two external invocations §6 describes:
// the positional argument form and the clipboard form. Neither touches
// the core's semantics; both produce the same (deck, quotas, visible,
// confirmed, observed) tuple that internal/search.Solve and
// internal/validate.Validate take. Malformed input is reported as an
// *InputError and never reaches the core, matching the §7 taxonomy.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/search"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

// InputError is the sole error family crossing the CLI/core boundary
// (§7 taxonomy item 1): an unknown role name, a non-numeric count, an
// ill-formed seat spec, or a statement literal incompatible with its
// seat's visible role.
type InputError struct {
	Context string
	Err     error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Err.Error())
}

func (e *InputError) Unwrap() error { return e.Err }

func inputErr(context string, err error) error { return &InputError{Context: context, Err: err} }

var (
	errUnknownRole       = errors.New("unknown role name")
	errNonNumericCount   = errors.New("count is not a valid non-negative integer")
	errBadSeatSpec       = errors.New("seat spec must have exactly 3 colon-separated fields")
	errStatementMismatch = errors.New("statement literal is incompatible with the seat's visible role")
)

// Puzzle is the fully parsed input both invocations converge on.
type Puzzle struct {
	Deck      []roles.Role
	Quotas    search.Quotas
	Visible   []roles.Role
	Confirmed []roles.Role
	Observed  []statement.Statement
}

// ParseArgs parses invocation 1: `<program> <deck> <nV> <nO> <nM> <nD>
// [seatSpec ...]`. deckCSV is a comma-separated list of role names;
// seatSpecs are "visible:confirmed:statement" triples in seat order,
// where either of the first two fields may be "?".
func ParseArgs(deckCSV string, nVillagers, nOutcasts, nMinions, nDemons string, seatSpecs []string) (Puzzle, error) {
	deck, err := parseDeck(deckCSV)
	if err != nil {
		return Puzzle{}, err
	}

	nv, err := parseCount("villager quota", nVillagers)
	if err != nil {
		return Puzzle{}, err
	}
	no, err := parseCount("outcast quota", nOutcasts)
	if err != nil {
		return Puzzle{}, err
	}
	nm, err := parseCount("minion quota", nMinions)
	if err != nil {
		return Puzzle{}, err
	}
	nd, err := parseCount("demon quota", nDemons)
	if err != nil {
		return Puzzle{}, err
	}
	quotas := search.Quotas{Villagers: nv, Outcasts: no, Minions: nm, Demons: nd}

	n := quotas.N()
	if len(seatSpecs) != n {
		return Puzzle{}, inputErr("seat count", fmt.Errorf("quotas imply %d seats, got %d seat specs", n, len(seatSpecs)))
	}

	visible := make([]roles.Role, n)
	confirmed := make([]roles.Role, n)
	observed := make([]statement.Statement, n)
	for i, spec := range seatSpecs {
		v, c, st, err := parseSeatSpec(i, spec)
		if err != nil {
			return Puzzle{}, err
		}
		visible[i] = v
		confirmed[i] = c
		observed[i] = st
	}

	return Puzzle{Deck: deck, Quotas: quotas, Visible: visible, Confirmed: confirmed, Observed: observed}, nil
}

func parseDeck(csv string) ([]roles.Role, error) {
	fields := strings.Split(csv, ",")
	out := make([]roles.Role, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		r, ok := roles.Parse(f)
		if !ok {
			return nil, inputErr("deck", fmt.Errorf("%w: %q", errUnknownRole, f))
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCount(label, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, inputErr(label, fmt.Errorf("%w: %q", errNonNumericCount, s))
	}
	return n, nil
}

func parseOptionalRole(field string) (roles.Role, error) {
	field = strings.TrimSpace(field)
	if field == "" || field == "?" {
		return roles.NoRole, nil
	}
	r, ok := roles.Parse(field)
	if !ok {
		return roles.NoRole, fmt.Errorf("%w: %q", errUnknownRole, field)
	}
	return r, nil
}

func parseSeatSpec(seat int, spec string) (visible, confirmed roles.Role, st statement.Statement, err error) {
	fields := strings.SplitN(spec, ":", 3)
	if len(fields) != 3 {
		return roles.NoRole, roles.NoRole, statement.None, inputErr(
			fmt.Sprintf("seat %d spec %q", seat, spec), errBadSeatSpec)
	}

	visible, verr := parseOptionalRole(fields[0])
	if verr != nil {
		return roles.NoRole, roles.NoRole, statement.None, inputErr(fmt.Sprintf("seat %d visible field", seat), verr)
	}
	confirmed, cerr := parseOptionalRole(fields[1])
	if cerr != nil {
		return roles.NoRole, roles.NoRole, statement.None, inputErr(fmt.Sprintf("seat %d confirmed field", seat), cerr)
	}

	st, serr := ParseStatementLiteral(visible, fields[2])
	if serr != nil {
		return roles.NoRole, roles.NoRole, statement.None, inputErr(fmt.Sprintf("seat %d statement field", seat), serr)
	}
	return visible, confirmed, st, nil
}
