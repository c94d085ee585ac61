// Package output renders solve results the way §6 specifies: a
// solution count, then (if the count is at or below a threshold) each
// solution's seat-ordered roles coloured by alignment, finally for
// every seat the deduplicated sorted set of roles that appeared there
// across all solutions, coloured by group.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/qingchang/grimoire-deduce/internal/roles"
)

// alignmentColor and groupColor are fixed palettes; Good/Villager in
// green, Evil/Demon in red, Outcast in yellow and Minion in magenta,
// mirroring the kind of alignment-coded output the original tool's
// `colored` dependency produced.
func alignmentColor(a roles.Alignment) *color.Color {
	if a == roles.Evil {
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.FgGreen)
}

func groupColor(g roles.Group) *color.Color {
	switch g {
	case roles.Villager:
		return color.New(color.FgGreen)
	case roles.Outcast:
		return color.New(color.FgYellow)
	case roles.Minion:
		return color.New(color.FgMagenta)
	default: // Demon
		return color.New(color.FgRed, color.Bold)
	}
}

// Render writes solve results to w. noColor forces plain text
// (SOLVER_COLOR=false or stdout is not a terminal); maxPrint caps the
// number of full solutions printed individually, per §6.
func Render(w io.Writer, results [][]roles.Role, n, maxPrint int, noColor bool) {
	c := w
	if noColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		fmt.Fprintln(c, "No solutions found.")
		return
	}
	fmt.Fprintf(c, "%d solution(s) found.\n", len(results))

	if len(results) <= maxPrint {
		for si, sol := range results {
			fmt.Fprintf(c, "Solution %d: ", si+1)
			for i, r := range sol {
				if i > 0 {
					fmt.Fprint(c, ", ")
				}
				alignmentColor(r.Alignment()).Fprintf(c, "%d:%s", i, r)
			}
			fmt.Fprintln(c)
		}
	} else {
		fmt.Fprintf(c, "(more than %d solutions; per-seat role set shown below instead of each solution)\n", maxPrint)
	}

	fmt.Fprintln(c, "Per-seat possible roles across all solutions:")
	for seat := 0; seat < n; seat++ {
		seen := make(map[roles.Role]bool)
		var rs []roles.Role
		for _, sol := range results {
			if !seen[sol[seat]] {
				seen[sol[seat]] = true
				rs = append(rs, sol[seat])
			}
		}
		sort.Slice(rs, func(i, j int) bool { return roles.Less(rs[i], rs[j]) })

		fmt.Fprintf(c, "  seat %d: ", seat)
		for i, r := range rs {
			if i > 0 {
				fmt.Fprint(c, ", ")
			}
			groupColor(r.Group()).Fprint(c, string(r))
		}
		fmt.Fprintln(c)
	}
}
