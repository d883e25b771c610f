package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dumpGridOnly  bool
	dumpCluesOnly bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpGridOnly, "grid-only", false, "Show only the grid")
	cmd.Flags().BoolVar(&dumpCluesOnly, "clues-only", false, "Show only the clues")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <puzzle>",
		Short: "Human-readable dump of a puzzle",
		Long: `The dump command prints the solution grid and numbered clue lists of a
puzzle in any supported format (puz, text, jpz, ipuz).

Example:
  puzctl dump monday.puz
  puzctl dump monday.jpz --clues-only
  puzctl dump monday.puz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	p, format, err := loadPuzzle(path, nil)
	if err != nil {
		return fmt.Errorf("failed to load puzzle: %w", err)
	}
	printVerbose("Detected format: %s\n", format)

	if jsonOut {
		return printJSON(p)
	}

	if p.Title != "" {
		printInfo("%s", p.Title)
		if p.Author != "" {
			printInfo(" by %s", p.Author)
		}
		printInfo("\n\n")
	}

	if !dumpCluesOnly {
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				c := p.CellAt(x, y)
				switch {
				case c == nil:
					printInfo("  ")
				case c.Solution != "":
					printInfo("%s ", string(c.Solution[0]))
				default:
					printInfo(". ")
				}
			}
			printInfo("\n")
		}
		printInfo("\n")
	}

	if !dumpGridOnly {
		printInfo("Across:\n")
		for _, c := range p.Across {
			printInfo("  %d. %s\n", c.Number, c.Text)
		}
		printInfo("\nDown:\n")
		for _, c := range p.Down {
			printInfo("  %d. %s\n", c.Number, c.Text)
		}
	}

	return nil
}
