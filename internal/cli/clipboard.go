// Clipboard-mode parsing (invocation 2), grounded line-for-line on
// original_source/src/runner.rs's parse_clipboard: a deck line, a
// counts line, then one "seat | visible | confirmed | statement" line
// per seat using 1-based seat indices and natural-language statements.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/search"
	"github.com/qingchang/grimoire-deduce/internal/statement"
)

// ParseClipboard parses the clipboard-mode wire format §6 describes.
func ParseClipboard(content string) (Puzzle, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	// drop trailing blank lines the clipboard often carries
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return Puzzle{}, inputErr("clipboard", fmt.Errorf("expected at least 2 lines (deck and counts), got %d", len(lines)))
	}

	deck, err := parseDeck(lines[0])
	if err != nil {
		return Puzzle{}, err
	}

	countFields := strings.Fields(lines[1])
	if len(countFields) != 4 {
		return Puzzle{}, inputErr("clipboard counts line",
			fmt.Errorf("expected 4 whitespace-separated counts (villagers outcasts minions demons), got %d: %q", len(countFields), lines[1]))
	}
	nv, err := parseCount("villager quota", countFields[0])
	if err != nil {
		return Puzzle{}, err
	}
	no, err := parseCount("outcast quota", countFields[1])
	if err != nil {
		return Puzzle{}, err
	}
	nm, err := parseCount("minion quota", countFields[2])
	if err != nil {
		return Puzzle{}, err
	}
	nd, err := parseCount("demon quota", countFields[3])
	if err != nil {
		return Puzzle{}, err
	}
	quotas := search.Quotas{Villagers: nv, Outcasts: no, Minions: nm, Demons: nd}
	n := quotas.N()

	visible := make([]roles.Role, n)
	confirmed := make([]roles.Role, n)
	observed := make([]statement.Statement, n)

	for lineNo, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}

		idx1, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || idx1 < 1 || idx1 > n {
			return Puzzle{}, inputErr(fmt.Sprintf("clipboard line %d", lineNo+3),
				fmt.Errorf("seat index must be in 1..%d, got %q", n, parts[0]))
		}
		seat := idx1 - 1

		v, err := parseOptionalRole(parts[1])
		if err != nil {
			return Puzzle{}, inputErr(fmt.Sprintf("clipboard line %d visible field", lineNo+3), err)
		}
		visible[seat] = v

		if len(parts) >= 3 {
			c, err := parseOptionalRole(parts[2])
			if err != nil {
				return Puzzle{}, inputErr(fmt.Sprintf("clipboard line %d confirmed field", lineNo+3), err)
			}
			confirmed[seat] = c
		}

		if len(parts) >= 4 && strings.TrimSpace(parts[3]) != "" {
			st, err := ParseNaturalLanguage(v, parts[3])
			if err != nil {
				return Puzzle{}, inputErr(fmt.Sprintf("clipboard line %d statement field", lineNo+3), err)
			}
			observed[seat] = st
		}
	}

	return Puzzle{Deck: deck, Quotas: quotas, Visible: visible, Confirmed: confirmed, Observed: observed}, nil
}
