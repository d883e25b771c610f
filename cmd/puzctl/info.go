package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosswordnexus/puzkit/pkg/puz"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <puzzle.puz>",
		Short: "Report header metadata of a .puz file",
		Long: `The info command parses a .puz file and displays its header metadata:
dimensions, format version, text encoding, lock state, stored checksums, and
the extension records present.

Example:
  puzctl info monday.puz
  puzctl info monday.puz --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening puzzle: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	d, err := puz.Load(data, nil)
	if err != nil {
		return fmt.Errorf("failed to parse puzzle: %w", err)
	}

	sums := d.StoredChecksums()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":       path,
			"title":      d.Title,
			"author":     d.Author,
			"copyright":  d.Copyright,
			"width":      d.Width,
			"height":     d.Height,
			"clues":      len(d.Clues),
			"version":    d.Version(),
			"encoding":   d.TextEncoding(),
			"locked":     d.IsLocked(),
			"extensions": d.Extensions.Codes(),
			"preamble":   len(d.Preamble),
			"postscript": len(d.Postscript),
			"checksums": map[string]interface{}{
				"global": sums.Global,
				"header": sums.Header,
				"masked": sums.Masked,
			},
		})
	}

	printInfo("\nPuzzle Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Title: %s\n", d.Title)
	printInfo("  Author: %s\n", d.Author)
	printInfo("  Size: %dx%d, %d clues\n", d.Width, d.Height, len(d.Clues))
	printInfo("  Version: %s (%s)\n", d.Version(), d.TextEncoding())
	printInfo("  Locked: %v\n", d.IsLocked())
	if d.Extensions.Len() > 0 {
		printInfo("  Extensions: %s\n", strings.Join(d.Extensions.Codes(), ", "))
	}
	if len(d.Preamble) > 0 {
		printInfo("  Preamble: %d bytes\n", len(d.Preamble))
	}
	if len(d.Postscript) > 0 {
		printInfo("  Postscript: %d bytes\n", len(d.Postscript))
	}
	printInfo("  Checksums: global=0x%04X header=0x%04X masked=0x%016X\n",
		sums.Global, sums.Header, sums.Masked)

	return nil
}
