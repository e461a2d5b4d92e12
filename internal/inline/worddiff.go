package inline

import (
	"github.com/basisdocs/mdiff/internal/part"
	"github.com/basisdocs/mdiff/internal/token"
)

// wordLCSDiff aligns left and right word-by-word using LCS over
// normalised words: matched words become Equal (or a minor case/variant
// pair when their raw forms differ), unmatched runs become per-word
// Removed/Added leaves, with pure-punctuation words flagged minor.
func wordLCSDiff(left, right []token.Word) []part.Part {
	n, m := len(left), len(right)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	norm := func(w token.Word) string { return token.NormalizeWord(w.Word) }
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if norm(left[i]) == norm(right[j]) && norm(left[i]) != "" {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var out []part.Part
	i, j := 0, 0
	for i < n && j < m {
		if norm(left[i]) == norm(right[j]) && norm(left[i]) != "" {
			out = append(out, alignWordPair(left[i], right[j])...)
			i++
			j++
			continue
		}
		if dp[i+1][j] >= dp[i][j+1] {
			out = append(out, removedWordLeaf(left[i]))
			i++
		} else {
			out = append(out, addedWordLeaf(right[j]))
			j++
		}
	}
	for i < n {
		out = append(out, removedWordLeaf(left[i]))
		i++
	}
	for j < m {
		out = append(out, addedWordLeaf(right[j]))
		j++
	}
	return out
}

func removedWordLeaf(w token.Word) part.Part {
	return part.Part{Value: w.Raw, Type: part.Removed, Minor: token.IsPurePunctuation(w.Word)}
}

func addedWordLeaf(w token.Word) part.Part {
	return part.Part{Value: w.Raw, Type: part.Added, Minor: token.IsPurePunctuation(w.Word)}
}

// alignWordPair aligns a matched (normalised-equal) word pair, splitting
// the word body from its trailing whitespace so both sides reconstruct
// exactly even when raw forms or trailing whitespace differ.
func alignWordPair(l, r token.Word) []part.Part {
	var out []part.Part

	if l.Word == r.Word {
		if l.Word != "" {
			out = append(out, part.Leaf(l.Word, part.Equal))
		}
	} else {
		removed, added := minorPair(l.Word, r.Word)
		out = append(out, removed, added)
	}

	lws, rws := trailingWhitespace(l), trailingWhitespace(r)
	switch {
	case lws == rws:
		if lws != "" {
			out = append(out, part.Leaf(lws, part.Equal))
		}
	default:
		if lws != "" {
			out = append(out, part.Leaf(lws, part.Removed))
		}
		if rws != "" {
			out = append(out, part.Leaf(rws, part.Added))
		}
	}
	return out
}

func trailingWhitespace(w token.Word) string {
	if len(w.Raw) < len(w.Word) {
		return ""
	}
	return w.Raw[len(w.Word):]
}
