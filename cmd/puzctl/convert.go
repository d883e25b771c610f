package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosswordnexus/puzkit/pkg/puz"
)

var convertTo string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertTo, "to", "", "Output format: puz or text (default from extension)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between puzzle formats",
		Long: `The convert command reads a puzzle in any supported format (puz, text,
jpz, ipuz) and writes it as an AcrossLite binary or text file. The input
format is detected from the extension and content.

Example:
  puzctl convert monday.jpz monday.puz
  puzctl convert monday.ipuz monday.txt
  puzctl convert monday.puz monday.txt --to text`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	inPath, outPath := args[0], args[1]

	p, format, err := loadPuzzle(inPath, nil)
	if err != nil {
		return fmt.Errorf("failed to load puzzle: %w", err)
	}
	printVerbose("Detected input format: %s\n", format)

	d, err := puz.FromPuzzle(p)
	if err != nil {
		return fmt.Errorf("failed to convert puzzle: %w", err)
	}

	target := convertTo
	if target == "" {
		switch strings.ToLower(filepath.Ext(outPath)) {
		case ".txt":
			target = "text"
		default:
			target = "puz"
		}
	}

	var out []byte
	switch target {
	case "puz":
		out, err = d.Save()
	case "text":
		out, err = d.SaveText()
	default:
		return fmt.Errorf("unsupported output format %q (want puz or text)", target)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize puzzle: %w", err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	printInfo("Wrote %s (%d bytes)\n", outPath, len(out))
	return nil
}
