// Package split detects paragraph splits: a single left block whose text
// was broken into two right blocks, one of which the aligner matched
// (modified) and one of which it left unmatched (added).
package split

import (
	"strings"
	"unicode/utf8"

	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/similarity"
)

// DetectSplits scans adjacent pair pairs for the two split patterns and
// replaces each hit with a single split pair.
func DetectSplits(pairs []pair.DiffPair) []pair.DiffPair {
	var out []pair.DiffPair
	i := 0
	for i < len(pairs) {
		if i+1 < len(pairs) {
			if s, ok := matchPatternA(pairs[i], pairs[i+1]); ok {
				out = append(out, s)
				i += 2
				continue
			}
			if s, ok := matchPatternB(pairs[i], pairs[i+1]); ok {
				out = append(out, s)
				i += 2
				continue
			}
		}
		out = append(out, pairs[i])
		i++
	}
	return out
}

// matchPatternA matches added(X) followed by modified(L,R) where
// dice(X + " " + R, L) > threshold: X split off the front of L.
func matchPatternA(a, b pair.DiffPair) (pair.DiffPair, bool) {
	if a.Status != pair.Added || b.Status != pair.Modified {
		return pair.DiffPair{}, false
	}
	x, l, r := a.Right.Text(), b.Left.Text(), b.Right.Text()
	if similarity.Dice(x+" "+r, l) <= config.SplitSimilarityThreshold {
		return pair.DiffPair{}, false
	}
	return pair.NewSplit(b.Left, a.Right, b.Right, splitPoint(l, x)), true
}

// matchPatternB matches modified(L,R) followed by added(X) where
// dice(R + " " + X, L) > threshold: X split off the tail of L.
func matchPatternB(a, b pair.DiffPair) (pair.DiffPair, bool) {
	if a.Status != pair.Modified || b.Status != pair.Added {
		return pair.DiffPair{}, false
	}
	l, r, x := a.Left.Text(), a.Right.Text(), b.Right.Text()
	if similarity.Dice(r+" "+x, l) <= config.SplitSimilarityThreshold {
		return pair.DiffPair{}, false
	}
	return pair.NewSplit(a.Left, a.Right, b.Right, splitPoint(l, r)), true
}

// splitPoint locates the character index in l where firstPartText (trimmed)
// ends, falling back to firstPartText's own length when it can't be found
// verbatim in l (e.g. whitespace was normalised across the split).
func splitPoint(l, firstPartText string) int {
	trimmed := strings.TrimSpace(firstPartText)
	if idx := strings.Index(l, trimmed); idx >= 0 {
		return utf8.RuneCountInString(l[:idx+len(trimmed)])
	}
	return utf8.RuneCountInString(firstPartText)
}
