package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crosswordnexus/puzkit/pkg/puz"
)

var (
	lockKey    int
	lockOutput string
)

func init() {
	cmd := newLockCmd()
	cmd.Flags().IntVar(&lockKey, "key", 0, "Four-digit scramble key")
	cmd.Flags().StringVarP(&lockOutput, "output", "o", "", "Write the locked file here instead of in place")
	rootCmd.AddCommand(cmd)
}

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <puzzle.puz>",
		Short: "Scramble the solution grid under a key",
		Long: `The lock command scrambles the solution of a .puz file with a four-digit
key so that solvers cannot reveal answers without it.

Example:
  puzctl lock monday.puz --key 1234
  puzctl lock monday.puz --key 1234 -o locked.puz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLock(args)
		},
	}
	return cmd
}

func runLock(args []string) error {
	path := args[0]
	if lockKey == 0 {
		return fmt.Errorf("--key is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read puzzle: %w", err)
	}
	d, err := puz.Load(data, nil)
	if err != nil {
		return fmt.Errorf("failed to parse puzzle: %w", err)
	}
	if d.IsLocked() {
		printInfo("Puzzle is already locked\n")
		return nil
	}
	if err := d.LockSolution(lockKey); err != nil {
		return fmt.Errorf("failed to lock puzzle: %w", err)
	}

	out, err := d.Save()
	if err != nil {
		return fmt.Errorf("failed to serialize puzzle: %w", err)
	}
	target := lockOutput
	if target == "" {
		target = path
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	printInfo("Locked with key %04d\n", lockKey)
	return nil
}
