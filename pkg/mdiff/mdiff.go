// Package mdiff is the public facade over the structural markdown diff
// engine: a Block contract, the DiffPair result type and its factories,
// and RunPipeline, the stage orchestrator.
package mdiff

import (
	"github.com/basisdocs/mdiff/internal/block"
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/move"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/part"
	"github.com/basisdocs/mdiff/internal/repair"
	"github.com/basisdocs/mdiff/internal/split"
)

// Re-exported types so callers depend only on this package.
type (
	Block      = block.Block
	TextBlock  = block.TextBlock
	DiffPair   = pair.DiffPair
	Status     = pair.Status
	InlinePart = part.Part
	Config     = config.Config
	MatchingLevel = config.MatchingLevel
)

// Re-exported status constants, pair factories, and block constructors.
const (
	Equal    = pair.Equal
	Added    = pair.Added
	Removed  = pair.Removed
	Modified = pair.Modified
	Split    = pair.Split

	Strict = config.Strict
	Normal = config.Normal
	Loose  = config.Loose

	KindHeading   = block.KindHeading
	KindParagraph = block.KindParagraph
)

var (
	NewEqualPair    = pair.NewEqual
	NewAddedPair    = pair.NewAdded
	NewRemovedPair  = pair.NewRemoved
	NewModifiedPair = pair.NewModified
	NewSplitPair    = pair.NewSplit

	SplitTextBlocks = block.SplitTextBlocks

	Validate = pair.Validate
)

// Stage is an additional pipeline step a caller may append after the
// default pair-unmatched / detect-splits / detect-moves stages.
type Stage func(pairs []DiffPair) []DiffPair

// RunPipeline aligns leftBlocks against rightBlocks and runs the default
// stage sequence (pair unmatched blocks, detect paragraph splits, detect
// moved text), followed by any caller-supplied extraStages, in order. When
// cfg.Debug is set, the result is validated with Validate (block count,
// document order and part coverage) and violations are reported via the
// debug log rather than aborting; the per-status field shape of each pair
// is not checked.
func RunPipeline(leftBlocks, rightBlocks []Block, cfg Config, extraStages ...Stage) []DiffPair {
	leftTexts := blockTexts(leftBlocks)
	rightTexts := blockTexts(rightBlocks)

	matches := block.FindMatches(leftTexts, rightTexts, cfg.MatchingLevel)
	pairs := pair.CreateInitialPairs(leftBlocks, rightBlocks, matches)

	pairs = repair.PairUnmatched(pairs, cfg.MatchingLevel)
	pairs = split.DetectSplits(pairs)
	pairs = move.DetectMoves(pairs)

	for _, stage := range extraStages {
		pairs = stage(pairs)
	}

	if cfg.Debug {
		pair.Validate(pairs, leftBlocks, rightBlocks)
	}

	return pairs
}

func blockTexts(blocks []Block) []string {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text()
	}
	return texts
}
