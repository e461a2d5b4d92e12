package inline

import "github.com/basisdocs/mdiff/internal/part"

// charDiff produces an ordered char-level diff of a against b: equal runs
// as Equal parts, differing runs as Removed/Added parts, using a plain
// longest-common-subsequence alignment over runes.
func charDiff(a, b string) []part.Part {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if ra[i] == rb[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var out []part.Part
	var buf []rune
	bufType := part.Equal
	flush := func() {
		if len(buf) > 0 {
			out = append(out, part.Leaf(string(buf), bufType))
			buf = nil
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case ra[i] == rb[j]:
			if bufType != part.Equal {
				flush()
				bufType = part.Equal
			}
			buf = append(buf, ra[i])
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			if bufType != part.Removed {
				flush()
				bufType = part.Removed
			}
			buf = append(buf, ra[i])
			i++
		default:
			if bufType != part.Added {
				flush()
				bufType = part.Added
			}
			buf = append(buf, rb[j])
			j++
		}
	}
	for i < n {
		if bufType != part.Removed {
			flush()
			bufType = part.Removed
		}
		buf = append(buf, ra[i])
		i++
	}
	for j < m {
		if bufType != part.Added {
			flush()
			bufType = part.Added
		}
		buf = append(buf, rb[j])
		j++
	}
	flush()
	return out
}

// minorPair builds the (removed, added) InlinePart pair for two words that
// are equal under normalisation but differ raw: each side's Children are
// the subset of the shared char-level diff needed to reconstruct that
// side, so both the left and right reconstruction invariants hold.
func minorPair(a, b string) (removed, added part.Part) {
	cd := charDiff(a, b)

	var removedChildren, addedChildren []part.Part
	for _, c := range cd {
		if c.Type != part.Added {
			removedChildren = append(removedChildren, c)
		}
		if c.Type != part.Removed {
			addedChildren = append(addedChildren, c)
		}
	}

	removed = part.Part{Value: a, Type: part.Removed, Minor: true, Children: removedChildren}
	added = part.Part{Value: b, Type: part.Added, Minor: true, Children: addedChildren}
	return removed, added
}
