package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

// ParseStatementLiteral parses the positional-form statement field for
// a seat whose visible role is vis, per §6's per-role literal grammar.
// "?" and "unrevealed" both mean NoStatement for any role; the silent
// roles (Knight, Bombardier, Wretch, Poet, Baker, Witness) accept only
// that. Roles §6 marks "no parseable statement" for return an error if
// given anything but "?"/"unrevealed".
func ParseStatementLiteral(vis roles.Role, field string) (statement.Statement, error) {
	field = strings.TrimSpace(field)
	if field == "" || field == "?" || strings.EqualFold(field, "unrevealed") {
		return statement.None, nil
	}

	switch vis {
	case roles.Knight, roles.Bombardier, roles.Wretch, roles.Poet, roles.Baker, roles.Witness:
		return statement.Statement{}, fmt.Errorf("%w: %s is silent, only \"?\" or \"unrevealed\" accepted", errStatementMismatch, vis)

	case roles.Confessor:
		switch strings.ToLower(field) {
		case "iamgood":
			return statement.ConfessorGood(), nil
		case "iamdizzy":
			return statement.ConfessorDizzy(), nil
		}
		return statement.Statement{}, fmt.Errorf("%w: confessor literal must be iamgood|iamdizzy, got %q", errStatementMismatch, field)

	case roles.Enlightened:
		switch strings.ToLower(field) {
		case "clockwise":
			return statement.Enlightened(statement.Clockwise), nil
		case "counterclockwise":
			return statement.Enlightened(statement.CounterClockwise), nil
		case "equidistant":
			return statement.Enlightened(statement.Equidistant), nil
		}
		return statement.Statement{}, fmt.Errorf("%w: enlightened literal must be clockwise|counterclockwise|equidistant, got %q", errStatementMismatch, field)

	case roles.Gemcrafter:
		t, err := parseSeatIndex(field)
		if err != nil {
			return statement.Statement{}, wrapMismatch("gemcrafter", err)
		}
		return statement.Gemcrafter(t), nil

	case roles.Hunter:
		d, err := parseInt(field)
		if err != nil {
			return statement.Statement{}, wrapMismatch("hunter", err)
		}
		return statement.Hunter(d), nil

	case roles.Lover:
		c, err := parseInt(field)
		if err != nil {
			return statement.Statement{}, wrapMismatch("lover", err)
		}
		return statement.Lover(c), nil

	case roles.Judge:
		parts := strings.SplitN(field, ";", 2)
		if len(parts) != 2 {
			return statement.Statement{}, fmt.Errorf("%w: judge literal must be <seat>;<truthy|lying>, got %q", errStatementMismatch, field)
		}
		t, err := parseSeatIndex(parts[0])
		if err != nil {
			return statement.Statement{}, wrapMismatch("judge", err)
		}
		var isLying bool
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "truthy", "truth":
			isLying = false
		case "lying":
			isLying = true
		default:
			return statement.Statement{}, fmt.Errorf("%w: judge second field must be truthy|lying, got %q", errStatementMismatch, parts[1])
		}
		return statement.Judge(t, isLying), nil

	case roles.Medium:
		parts := strings.SplitN(field, ";", 2)
		if len(parts) != 2 {
			return statement.Statement{}, fmt.Errorf("%w: medium literal must be <seat>;<role>, got %q", errStatementMismatch, field)
		}
		t, err := parseSeatIndex(parts[0])
		if err != nil {
			return statement.Statement{}, wrapMismatch("medium", err)
		}
		r, ok := roles.Parse(parts[1])
		if !ok {
			return statement.Statement{}, fmt.Errorf("%w: %q", errUnknownRole, parts[1])
		}
		return statement.Medium(t, r), nil

	case roles.Scout:
		if strings.EqualFold(field, "none") {
			return statement.ScoutNone(), nil
		}
		parts := strings.SplitN(field, ";", 2)
		if len(parts) != 2 {
			return statement.Statement{}, fmt.Errorf("%w: scout literal must be <role>;<distance> or none, got %q", errStatementMismatch, field)
		}
		r, ok := roles.Parse(parts[0])
		if !ok {
			return statement.Statement{}, fmt.Errorf("%w: %q", errUnknownRole, parts[0])
		}
		d, err := parseInt(parts[1])
		if err != nil {
			return statement.Statement{}, wrapMismatch("scout", err)
		}
		return statement.ScoutSome(r, d), nil

	case roles.Empress:
		seats, err := parseSeatList(field, 3)
		if err != nil {
			return statement.Statement{}, wrapMismatch("empress", err)
		}
		return statement.Empress(seats...), nil

	case roles.Jester:
		parts := strings.SplitN(field, ";", 2)
		if len(parts) != 2 {
			return statement.Statement{}, fmt.Errorf("%w: jester literal must be <idx,idx,idx>;<evilCount>, got %q", errStatementMismatch, field)
		}
		seats, err := parseSeatList(parts[0], 3)
		if err != nil {
			return statement.Statement{}, wrapMismatch("jester", err)
		}
		k, err := parseInt(parts[1])
		if err != nil {
			return statement.Statement{}, wrapMismatch("jester", err)
		}
		return statement.Jester(k, seats...), nil

	case roles.Slayer:
		parts := strings.SplitN(field, ";", 2)
		if len(parts) != 2 {
			return statement.Statement{}, fmt.Errorf("%w: slayer literal must be <seat>;<good|evil>, got %q", errStatementMismatch, field)
		}
		t, err := parseSeatIndex(parts[0])
		if err != nil {
			return statement.Statement{}, wrapMismatch("slayer", err)
		}
		var a roles.Alignment
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "good":
			a = roles.Good
		case "evil":
			a = roles.Evil
		default:
			return statement.Statement{}, fmt.Errorf("%w: slayer second field must be good|evil, got %q", errStatementMismatch, parts[1])
		}
		return statement.Slayer(t, a), nil

	case roles.Bard:
		if strings.EqualFold(field, "none") {
			return statement.BardNone(), nil
		}
		d, err := parseInt(field)
		if err != nil {
			return statement.Statement{}, wrapMismatch("bard", err)
		}
		return statement.BardSome(d), nil

	case roles.PlagueDoctor:
		parts := strings.SplitN(field, ";", 2)
		if len(parts) == 1 {
			c, err := parseSeatIndex(parts[0])
			if err != nil {
				return statement.Statement{}, wrapMismatch("plaguedoctor", err)
			}
			return statement.PlagueDoctorClean(c), nil
		}
		e, err := parseSeatIndex(parts[0])
		if err != nil {
			return statement.Statement{}, wrapMismatch("plaguedoctor", err)
		}
		c, err := parseSeatIndex(parts[1])
		if err != nil {
			return statement.Statement{}, wrapMismatch("plaguedoctor", err)
		}
		return statement.PlagueDoctorEvil(c, e), nil

	default:
		return statement.Statement{}, fmt.Errorf("%w: %s has no positional-form literal (§6: \"others: no parseable statement\")", errStatementMismatch, vis)
	}
}

func wrapMismatch(role string, err error) error {
	return fmt.Errorf("%w: %s: %s", errStatementMismatch, role, err.Error())
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseSeatIndex(s string) (int, error) {
	return parseInt(s)
}

func parseSeatList(s string, want int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != want {
		return nil, fmt.Errorf("expected exactly %d comma-separated seat indices, got %d", want, len(fields))
	}
	out := make([]int, 0, want)
	for _, f := range fields {
		v, err := parseSeatIndex(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
