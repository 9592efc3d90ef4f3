// Command wallpath solves "The Wall" puzzle from a plain-text file:
// find the shortest route between two rooms where no two consecutive
// corridors share a color.
//
// Usage:
//
//	wallpath <file> <start> <end> [--budget N]
//
// The route prints one traversal per line ("a ==(red)=> b"); a puzzle
// with no valid route prints "No solution found." and still exits 0 —
// only I/O, parse and validation problems are errors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallpath/altpath"
	"github.com/katalvlaran/wallpath/puzzle"
)

var budget int

var rootCmd = &cobra.Command{
	Use:     "wallpath <file> <start> <end>",
	Short:   "Solve The Wall puzzle: shortest color-alternating route between rooms",
	Args:    cobra.ExactArgs(3),
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, start, end := args[0], args[1], args[2]

		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open puzzle: %w", err)
		}
		defer f.Close()

		g, err := puzzle.Parse(f)
		if err != nil {
			return err
		}

		opts := []altpath.Option{altpath.Start(start), altpath.Goal(end)}
		if budget > 0 {
			opts = append(opts, altpath.WithExpandBudget(budget))
		}
		res, err := altpath.Find(g, opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !res.Found {
			fmt.Fprintln(out, "No solution found.")
			return nil
		}
		if res.Len() == 0 {
			fmt.Fprintf(out, "Already at %s.\n", end)
			return nil
		}
		fmt.Fprint(out, puzzle.FormatSolution(res))

		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&budget, "budget", 0,
		"cap on search-state expansions, 0 = unlimited (guards against malformed puzzles)")
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
