package cmd

import (
	"fmt"
	"os"

	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/pkg/mdiff"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <left> <right> [<left2> <right2>...]",
	Short: "Diff one or more pairs of markdown files",
	Long: `diff reads each left/right file pair, splits both documents into
blocks, runs them through the alignment pipeline, and prints a unified-ish
rendering of the result.

Usage:
  mdiff diff old.md new.md
  mdiff diff old1.md new1.md old2.md new2.md   # batch mode

In batch mode, pairs are processed in natural filename order (so
chapter2.md sorts before chapter10.md), not necessarily the order given on
the command line.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

type filePair struct {
	left, right string
}

func runDiff(cmd *cobra.Command, args []string) error {
	if len(args)%2 != 0 {
		return fmt.Errorf("expected an even number of files (left/right pairs), got %d", len(args))
	}

	pairs := make([]filePair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, filePair{left: args[i], right: args[i+1]})
	}
	sortPairsByLeftName(pairs)

	cfg := config.FromProcess()
	hasErrors := false
	for _, fp := range pairs {
		if err := diffFilePair(fp, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error diffing %s / %s: %v\n", fp.left, fp.right, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("one or more file pairs failed to diff")
	}
	return nil
}

// sortPairsByLeftName reorders pairs in place into natural-sort order of
// their left filename, so e.g. chapter2.md sorts before chapter10.md in
// batch-mode output regardless of the order they were given on the command
// line.
func sortPairsByLeftName(pairs []filePair) {
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.left
	}
	natural.Sort(keys)

	byLeft := make(map[string][]filePair, len(pairs))
	for _, p := range pairs {
		byLeft[p.left] = append(byLeft[p.left], p)
	}
	for i, k := range keys {
		pairs[i] = byLeft[k][0]
		byLeft[k] = byLeft[k][1:]
	}
}

func diffFilePair(fp filePair, cfg mdiff.Config) error {
	leftSrc, err := os.ReadFile(fp.left)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fp.left, err)
	}
	rightSrc, err := os.ReadFile(fp.right)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fp.right, err)
	}

	leftBlocks := mdiff.SplitTextBlocks(string(leftSrc))
	rightBlocks := mdiff.SplitTextBlocks(string(rightSrc))

	out := mdiff.RunPipeline(leftBlocks, rightBlocks, cfg)

	fmt.Printf("--- %s\n+++ %s\n", fp.left, fp.right)
	renderPairs(os.Stdout, out)
	return nil
}
