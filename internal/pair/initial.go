package pair

import "github.com/basisdocs/mdiff/internal/block"

// CreateInitialPairs walks leftBlocks/rightBlocks against matches (as
// produced by block.FindMatches) and emits removed/added pairs for the
// positions matches skips over, and an equal (if Exact) or modified
// (otherwise) pair for each match. Inline diffs for modified pairs are
// computed by NewModified as each pair is built.
func CreateInitialPairs(leftBlocks, rightBlocks []block.Block, matches []block.Match) []DiffPair {
	var pairs []DiffPair
	li, ri := 0, 0

	for _, m := range matches {
		for li < m.LeftIdx {
			pairs = append(pairs, NewRemoved(leftBlocks[li]))
			li++
		}
		for ri < m.RightIdx {
			pairs = append(pairs, NewAdded(rightBlocks[ri]))
			ri++
		}
		if m.Exact {
			pairs = append(pairs, NewEqual(leftBlocks[li], rightBlocks[ri]))
		} else {
			pairs = append(pairs, NewModified(leftBlocks[li], rightBlocks[ri]))
		}
		li++
		ri++
	}

	for li < len(leftBlocks) {
		pairs = append(pairs, NewRemoved(leftBlocks[li]))
		li++
	}
	for ri < len(rightBlocks) {
		pairs = append(pairs, NewAdded(rightBlocks[ri]))
		ri++
	}
	return pairs
}
