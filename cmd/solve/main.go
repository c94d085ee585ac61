// Command solve is the CLI surface §6 describes: invocation 1 takes
// the deck, quotas, and seat specs as positional arguments; invocation
// 2 (-clipboard) reads the same puzzle off the system clipboard in its
// line-based wire format. Exit status is 0 on success (including "no
// solutions found", a normal outcome per §7) and non-zero on malformed
// input.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/qingchang/grimoire-deduce/internal/cli"
	"github.com/qingchang/grimoire-deduce/internal/config"
	"github.com/qingchang/grimoire-deduce/internal/observability"
	"github.com/qingchang/grimoire-deduce/internal/output"
	"github.com/qingchang/grimoire-deduce/internal/search"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fromClipboard := fs.Bool("clipboard", false, "read the puzzle from the system clipboard instead of positional arguments")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Load()
	logger, err := observability.SetupLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer logger.Sync()

	var puzzle cli.Puzzle
	if *fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error reading clipboard:", err)
			return 1
		}
		puzzle, err = cli.ParseClipboard(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
	} else {
		rest := fs.Args()
		if len(rest) < 5 {
			fmt.Fprintln(os.Stderr, "usage: solve <deck> <nVillagers> <nOutcasts> <nMinions> <nDemons> [seatSpec ...]")
			fmt.Fprintln(os.Stderr, "   or: solve -clipboard")
			return 2
		}
		puzzle, err = cli.ParseArgs(rest[0], rest[1], rest[2], rest[3], rest[4], rest[5:])
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
	}

	start := time.Now()
	results := search.Solve(puzzle.Deck, puzzle.Visible, puzzle.Confirmed, puzzle.Observed, puzzle.Quotas, search.Options{Workers: cfg.Workers})
	elapsed := time.Since(start)

	logger.Info("solve complete",
		zap.Duration("elapsed", elapsed),
		zap.Int("results", len(results)),
		zap.Int("workers", cfg.Workers),
	)

	noColor := false
	if cfg.Color != nil {
		noColor = !*cfg.Color
		// An explicit setting overrides fatih/color's terminal autodetection.
		color.NoColor = noColor
	}
	output.Render(os.Stdout, results, puzzle.Quotas.N(), cfg.MaxPrint, noColor)
	return 0
}
