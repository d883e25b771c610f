package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crosswordnexus/puzkit/internal/logging"
	"github.com/crosswordnexus/puzkit/pkg/puz"
)

var (
	unlockKey     int
	unlockBrute   bool
	unlockTimeout time.Duration
	unlockOutput  string
)

func init() {
	cmd := newUnlockCmd()
	cmd.Flags().IntVar(&unlockKey, "key", 0, "Four-digit unlock key")
	cmd.Flags().BoolVar(&unlockBrute, "brute-force", false, "Search the full key space")
	cmd.Flags().
		DurationVar(&unlockTimeout, "timeout", 0, "Wall-clock limit for the brute-force search (0 = unlimited)")
	cmd.Flags().StringVarP(&unlockOutput, "output", "o", "", "Write the unlocked file here instead of in place")
	rootCmd.AddCommand(cmd)
}

func newUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock <puzzle.puz>",
		Short: "Unscramble a locked solution grid",
		Long: `The unlock command removes the scramble lock from a .puz file, either
with a known four-digit key or by searching the key space.

Example:
  puzctl unlock locked.puz --key 1234
  puzctl unlock locked.puz --brute-force --timeout 30s
  puzctl unlock locked.puz --key 1234 -o unlocked.puz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnlock(args)
		},
	}
	return cmd
}

func runUnlock(args []string) error {
	path := args[0]
	if unlockKey == 0 && !unlockBrute {
		return fmt.Errorf("either --key or --brute-force is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	d, err := puz.Load(data, nil)
	if err != nil {
		return fmt.Errorf("failed to parse puzzle: %w", err)
	}
	if !d.IsLocked() {
		printInfo("Puzzle is not locked\n")
		return nil
	}

	key := unlockKey
	if unlockBrute {
		start := time.Now()
		found, ok := d.BruteForceUnlock(unlockTimeout)
		if !ok {
			return fmt.Errorf("no key found within the search limits")
		}
		key = found
		logging.Debug("brute force finished",
			"key", key, "elapsed", time.Since(start).String())
	} else if !d.UnlockSolution(key) {
		return fmt.Errorf("key %04d does not match this puzzle", key)
	}
	printInfo("Unlocked with key %04d\n", key)

	out, err := d.Save()
	if err != nil {
		return fmt.Errorf("failed to serialize puzzle: %w", err)
	}
	target := unlockOutput
	if target == "" {
		target = path
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	printVerbose("Wrote %s (%d bytes)\n", target, len(out))
	return nil
}
