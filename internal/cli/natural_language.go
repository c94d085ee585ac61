// Natural-language statement parsing for clipboard mode. §6 specifies
// this as role-specific anchored regexes, one per role (e.g. "#4 is a
// real Hunter", "I am 2 cards away from closest Evil", "One is Evil:
// #8, #1 or #7"); original_source does not carry a literal regex
// table to port, so this implements the pattern for the roles §6 gives
// worked examples for (Medium, Hunter, Empress) plus the
// Confessor/Enlightened/Scout/Slayer/Bard/Judge phrasings that follow
// the same "one anchored regex per role" shape. Roles with no
// parseable literal (§6) have no natural-language form either.
package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

var (
	reMediumClaim      = regexp.MustCompile(`(?i)^\s*#(\d+)\s+is\s+a\s+real\s+([A-Za-z]+)\s*$`)
	reHunterDistance    = regexp.MustCompile(`(?i)^\s*I\s+am\s+(\d+)\s+cards?\s+away\s+from\s+closest\s+Evil\s*$`)
	reEmpressSet        = regexp.MustCompile(`(?i)^\s*One\s+is\s+Evil:\s*(.+)$`)
	reConfessorGood     = regexp.MustCompile(`(?i)^\s*I\s+am\s+good\s*$`)
	reConfessorDizzy    = regexp.MustCompile(`(?i)^\s*I\s+am\s+dizzy\s*$`)
	reEnlightenedLeft   = regexp.MustCompile(`(?i)^\s*closest\s+Evil\s+is\s+to\s+my\s+left\s*$`)
	reEnlightenedRight  = regexp.MustCompile(`(?i)^\s*closest\s+Evil\s+is\s+to\s+my\s+right\s*$`)
	reEnlightenedEqui   = regexp.MustCompile(`(?i)^\s*closest\s+Evil\s+is\s+equidistant\s*$`)
	reScoutNone         = regexp.MustCompile(`(?i)^\s*exactly\s+one\s+Evil\s+in\s+play\s*$`)
	reScoutSome         = regexp.MustCompile(`(?i)^\s*([A-Za-z]+)\s+is\s+(\d+)\s+cards?\s+away\s*$`)
	reSlayerShot        = regexp.MustCompile(`(?i)^\s*#(\d+)\s+is\s+(good|evil)\s*$`)
	reBardSome          = regexp.MustCompile(`(?i)^\s*closest\s+corrupt\s+is\s+(\d+)\s+away\s*$`)
	reBardNone          = regexp.MustCompile(`(?i)^\s*no\s+corruption\s+nearby\s*$`)
	reJudgeLying        = regexp.MustCompile(`(?i)^\s*#(\d+)\s+is\s+lying\s*$`)
	reJudgeTruthy       = regexp.MustCompile(`(?i)^\s*#(\d+)\s+is\s+truthful\s*$`)
)

// ParseNaturalLanguage parses text attributed to a seat whose visible
// role is vis. "?" / "unrevealed" / blank always mean NoStatement.
// "#n" seat references are 1-based, like the clipboard's seat column,
// and are returned as 0-based seat indices.
func ParseNaturalLanguage(vis roles.Role, text string) (statement.Statement, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "?" || strings.EqualFold(trimmed, "unrevealed") {
		return statement.None, nil
	}

	switch vis {
	case roles.Confessor:
		if reConfessorGood.MatchString(trimmed) {
			return statement.ConfessorGood(), nil
		}
		if reConfessorDizzy.MatchString(trimmed) {
			return statement.ConfessorDizzy(), nil
		}
	case roles.Enlightened:
		switch {
		case reEnlightenedLeft.MatchString(trimmed):
			return statement.Enlightened(statement.CounterClockwise), nil
		case reEnlightenedRight.MatchString(trimmed):
			return statement.Enlightened(statement.Clockwise), nil
		case reEnlightenedEqui.MatchString(trimmed):
			return statement.Enlightened(statement.Equidistant), nil
		}
	case roles.Medium:
		if m := reMediumClaim.FindStringSubmatch(trimmed); m != nil {
			t, _ := strconv.Atoi(m[1])
			r, ok := roles.Parse(m[2])
			if !ok {
				return statement.Statement{}, fmt.Errorf("%w: %q", errUnknownRole, m[2])
			}
			return statement.Medium(t-1, r), nil
		}
	case roles.Hunter:
		if m := reHunterDistance.FindStringSubmatch(trimmed); m != nil {
			d, _ := strconv.Atoi(m[1])
			return statement.Hunter(d), nil
		}
	case roles.Scout:
		if reScoutNone.MatchString(trimmed) {
			return statement.ScoutNone(), nil
		}
		if m := reScoutSome.FindStringSubmatch(trimmed); m != nil {
			r, ok := roles.Parse(m[1])
			if !ok {
				return statement.Statement{}, fmt.Errorf("%w: %q", errUnknownRole, m[1])
			}
			d, _ := strconv.Atoi(m[2])
			return statement.ScoutSome(r, d), nil
		}
	case roles.Empress:
		if m := reEmpressSet.FindStringSubmatch(trimmed); m != nil {
			seats, err := parseHashSeatList(m[1])
			if err != nil {
				return statement.Statement{}, wrapMismatch("empress", err)
			}
			return statement.Empress(seats...), nil
		}
	case roles.Slayer:
		if m := reSlayerShot.FindStringSubmatch(trimmed); m != nil {
			t, _ := strconv.Atoi(m[1])
			a := roles.Good
			if strings.EqualFold(m[2], "evil") {
				a = roles.Evil
			}
			return statement.Slayer(t-1, a), nil
		}
	case roles.Bard:
		if reBardNone.MatchString(trimmed) {
			return statement.BardNone(), nil
		}
		if m := reBardSome.FindStringSubmatch(trimmed); m != nil {
			d, _ := strconv.Atoi(m[1])
			return statement.BardSome(d), nil
		}
	case roles.Judge:
		if m := reJudgeLying.FindStringSubmatch(trimmed); m != nil {
			t, _ := strconv.Atoi(m[1])
			return statement.Judge(t-1, true), nil
		}
		if m := reJudgeTruthy.FindStringSubmatch(trimmed); m != nil {
			t, _ := strconv.Atoi(m[1])
			return statement.Judge(t-1, false), nil
		}
	}

	return statement.Statement{}, fmt.Errorf("%w: no natural-language pattern for %s matches %q", errStatementMismatch, vis, trimmed)
}

// parseHashSeatList parses "#8, #1 or #7" into 0-based seat indices.
func parseHashSeatList(s string) ([]int, error) {
	s = strings.ReplaceAll(s, " or ", ",")
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		f = strings.TrimPrefix(f, "#")
		f = strings.TrimSuffix(f, ".")
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad seat reference %q", f)
		}
		out = append(out, v-1)
	}
	return out, nil
}
