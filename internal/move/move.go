// Package move detects content relocated between blocks: a long,
// non-cosmetic removed run in one modified pair reappearing, largely
// intact, as an added run elsewhere (either inside another modified pair
// or as a whole newly added block).
package move

import (
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/inline"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/part"
	"github.com/basisdocs/mdiff/internal/similarity"
	"github.com/basisdocs/mdiff/internal/token"
)

// paragraphIndicatorAdded/Equal are the synthetic inline diff parts
// attached to an added destination pair once its content is recognised as
// moved-in from elsewhere, so the renderer can show "(content shown
// above)" instead of the full duplicated text.
const paragraphIndicatorAdded = "¶ "
const paragraphIndicatorEqual = "(content shown above)"

type source struct {
	pairIdx int
	partIdx int
	text    string
}

type destKind int

const (
	destAddedBlock destKind = iota
	destModifiedAdded
)

type dest struct {
	pairIdx int
	partIdx int // only meaningful for destModifiedAdded
	kind    destKind
	text    string
}

// DetectMoves collects candidate moved segments from modified pairs'
// inline diffs and whole added-pair blocks, matches removed segments
// against added ones across different pair indices, and rewrites both
// sides of each match.
func DetectMoves(pairs []pair.DiffPair) []pair.DiffPair {
	sources := collectSources(pairs)
	dests := collectDests(pairs)

	out := make([]pair.DiffPair, len(pairs))
	copy(out, pairs)

	usedDest := make(map[int]bool)
	for _, src := range sources {
		bestIdx, bestScore := -1, 0
		srcWords := wordStrings(src.text)
		for di, d := range dests {
			if usedDest[di] || d.pairIdx == src.pairIdx {
				continue
			}
			score := similarity.LongestCommonRunNormalized(srcWords, wordStrings(d.text))
			if score > bestScore {
				bestScore = score
				bestIdx = di
			}
		}
		if bestIdx == -1 || bestScore < config.MinSharedForMoved {
			continue
		}
		usedDest[bestIdx] = true
		d := dests[bestIdx]

		out[src.pairIdx] = rewriteSource(out[src.pairIdx], d.text)
		out[d.pairIdx] = rewriteDest(out[d.pairIdx], d, src.text)
	}
	return out
}

func collectSources(pairs []pair.DiffPair) []source {
	var sources []source
	for i, p := range pairs {
		if p.Status != pair.Modified {
			continue
		}
		for j, part := range p.InlineDiff {
			if part.Type != partRemoved || part.Minor {
				continue
			}
			if len([]rune(part.Value)) > config.MinSegmentLengthForMoved {
				sources = append(sources, source{pairIdx: i, partIdx: j, text: part.Value})
			}
		}
	}
	return sources
}

func collectDests(pairs []pair.DiffPair) []dest {
	var dests []dest
	for i, p := range pairs {
		switch p.Status {
		case pair.Added:
			dests = append(dests, dest{pairIdx: i, kind: destAddedBlock, text: p.Right.Text()})
		case pair.Modified:
			for j, part := range p.InlineDiff {
				if part.Type != partAdded || part.Minor {
					continue
				}
				if len([]rune(part.Value)) > config.MinSegmentLengthForMoved {
					dests = append(dests, dest{pairIdx: i, partIdx: j, kind: destModifiedAdded, text: part.Value})
				}
			}
		}
	}
	return dests
}

// rewriteSource recomputes the source pair's inline diff as though
// destText were appended to its right-side text, then truncates the result
// back to the length of the pair's own right-side text so the
// part-coverage invariant over the pair's actual blocks still holds. The
// moved run matches as equal only against the appended destText, which
// lies past that cut, so in the returned diff it is removed, not equal.
func rewriteSource(p pair.DiffPair, destText string) pair.DiffPair {
	if p.Status != pair.Modified {
		return p
	}
	rightText := p.Right.Text()
	extended := inline.ComputeInlineDiff(p.Left.Text(), rightText+" "+destText)
	p.InlineDiff = truncateToRightLength(extended, len([]rune(rightText)))
	return p
}

// rewriteDest replaces an added block's (or a modified pair's added
// segment's) moved-in content with the paragraph-indicator annotation, or
// downgrades the matching added run to equal.
func rewriteDest(p pair.DiffPair, d dest, srcText string) pair.DiffPair {
	switch d.kind {
	case destAddedBlock:
		p.InlineDiff = []part.Part{
			part.Leaf(paragraphIndicatorAdded, partAdded),
			part.Leaf(paragraphIndicatorEqual, partEqual),
		}
		return p
	case destModifiedAdded:
		srcWords := wordStrings(srcText)
		for i := range p.InlineDiff {
			ip := &p.InlineDiff[i]
			if ip.Type != partAdded || ip.Minor {
				continue
			}
			if similarity.LongestCommonRunNormalized(srcWords, wordStrings(ip.Value)) >= config.MinSharedForMoved {
				ip.Type = partEqual
			}
		}
		return p
	default:
		return p
	}
}

// truncateToRightLength walks parts, keeping only enough of the
// equal/added runs to reconstruct exactly targetRunes characters of
// right-side text, dropping everything the virtual concatenation added
// beyond that point. Past that point, added text is dropped and the rest
// of each equal part is kept as removed, since it is still left-side
// text. A removed part never counts against the budget.
func truncateToRightLength(parts []part.Part, targetRunes int) []part.Part {
	var out []part.Part
	remaining := targetRunes
	for _, pt := range parts {
		if pt.Type == partRemoved {
			out = append(out, pt)
			continue
		}
		runes := []rune(pt.Value)
		if len(runes) <= remaining {
			out = append(out, pt)
			remaining -= len(runes)
			continue
		}
		if remaining > 0 {
			out = append(out, part.Part{Value: string(runes[:remaining]), Type: pt.Type, Minor: pt.Minor})
		}
		if pt.Type == partEqual {
			out = append(out, part.Part{Value: string(runes[remaining:]), Type: partRemoved, Minor: pt.Minor})
		}
		remaining = 0
	}
	return out
}

func wordStrings(text string) []string {
	words := token.Tokenize(text)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}

const (
	partEqual   = part.Equal
	partAdded   = part.Added
	partRemoved = part.Removed
)
