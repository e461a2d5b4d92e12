// Package repair implements unmatched-run repair: upgrading adjacent
// removed/added block runs the aligner didn't pair to modified pairs when
// they share a substantial contiguous word run, without reordering either
// document.
package repair

import (
	"github.com/basisdocs/mdiff/internal/block"
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/similarity"
	"github.com/basisdocs/mdiff/internal/token"
)

// PairUnmatched scans pairs for maximal runs of consecutive removed pairs
// immediately followed by consecutive added pairs, and within each such
// run group greedily upgrades removed/added block pairings to modified
// whenever their longest common contiguous (normalised) word run is at
// least MinSharedForPairing for level. Matching is order-preserving: once
// a removed block is matched to an added block at index j, later removed
// blocks in the same group may only match added blocks after j.
func PairUnmatched(pairs []pair.DiffPair, level config.MatchingLevel) []pair.DiffPair {
	threshold := config.MinSharedForPairing(level)

	var out []pair.DiffPair
	i := 0
	for i < len(pairs) {
		if pairs[i].Status != pair.Removed {
			out = append(out, pairs[i])
			i++
			continue
		}

		removedStart := i
		for i < len(pairs) && pairs[i].Status == pair.Removed {
			i++
		}
		addedStart := i
		for i < len(pairs) && pairs[i].Status == pair.Added {
			i++
		}

		if addedStart == i {
			out = append(out, pairs[removedStart:addedStart]...)
			continue
		}
		out = append(out, repairGroup(pairs[removedStart:addedStart], pairs[addedStart:i], threshold)...)
	}
	return out
}

func repairGroup(removedPairs, addedPairs []pair.DiffPair, threshold int) []pair.DiffPair {
	removedBlocks := make([]block.Block, len(removedPairs))
	for i, p := range removedPairs {
		removedBlocks[i] = p.Left
	}
	addedBlocks := make([]block.Block, len(addedPairs))
	for i, p := range addedPairs {
		addedBlocks[i] = p.Right
	}

	addedWords := make([][]string, len(addedBlocks))
	for i, b := range addedBlocks {
		addedWords[i] = wordStrings(b.Text())
	}

	var result []pair.DiffPair
	lastUsed := -1
	for _, lb := range removedBlocks {
		lw := wordStrings(lb.Text())

		best, bestScore := -1, 0
		for j := lastUsed + 1; j < len(addedBlocks); j++ {
			score := similarity.LongestCommonRunNormalized(lw, addedWords[j])
			if score > bestScore {
				bestScore = score
				best = j
			}
		}

		if best != -1 && bestScore >= threshold {
			for j := lastUsed + 1; j < best; j++ {
				result = append(result, pair.NewAdded(addedBlocks[j]))
			}
			result = append(result, pair.NewModified(lb, addedBlocks[best]))
			lastUsed = best
		} else {
			result = append(result, pair.NewRemoved(lb))
		}
	}
	for j := lastUsed + 1; j < len(addedBlocks); j++ {
		result = append(result, pair.NewAdded(addedBlocks[j]))
	}
	return result
}

func wordStrings(text string) []string {
	words := token.Tokenize(text)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}
