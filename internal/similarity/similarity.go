// Package similarity computes the text-similarity metrics the block
// aligner and split/move detectors score candidate pairs with.
package similarity

import (
	"github.com/basisdocs/mdiff/internal/token"
)

// Dice returns the bigram Dice coefficient of a and b: 2*|bigrams(a) ∩
// bigrams(b)| / (len(a)-1 + len(b)-1). It returns 1 when a == b and 0 when
// either string has fewer than 2 runes.
func Dice(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := make(map[string]int, len(ra)-1)
	for i := 0; i+1 < len(ra); i++ {
		counts[string(ra[i:i+2])]++
	}

	intersection := 0
	for i := 0; i+1 < len(rb); i++ {
		bg := string(rb[i : i+2])
		if counts[bg] > 0 {
			counts[bg]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(ra)-1+len(rb)-1)
}

// LongestCommonRun returns the length of the longest contiguous run of
// equal raw words shared between a and b.
func LongestCommonRun(a, b []string) int {
	return longestCommonRun(a, b, func(x, y string) bool { return x == y })
}

// LongestCommonRunNormalized is LongestCommonRun under word normalisation.
func LongestCommonRunNormalized(a, b []string) int {
	na := make([]string, len(a))
	for i, w := range a {
		na[i] = token.NormalizeWord(w)
	}
	nb := make([]string, len(b))
	for i, w := range b {
		nb[i] = token.NormalizeWord(w)
	}
	return longestCommonRun(na, nb, func(x, y string) bool { return x == y })
}

// longestCommonRun is a rolling-row DP: row[j] holds the run length ending
// at a[i-1], b[j-1].
func longestCommonRun(a, b []string, eq func(x, y string) bool) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		cur := make([]int, len(b)+1)
		for j := 1; j <= len(b); j++ {
			if eq(a[i-1], b[j-1]) {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			}
		}
		prev = cur
	}
	return best
}

// SharedUniqueWords returns the size of the intersection of a's and b's
// normalised word sets.
func SharedUniqueWords(a, b []string) int {
	seen := make(map[string]struct{}, len(a))
	for _, w := range a {
		seen[token.NormalizeWord(w)] = struct{}{}
	}
	shared := 0
	counted := make(map[string]struct{}, len(b))
	for _, w := range b {
		nw := token.NormalizeWord(w)
		if _, ok := counted[nw]; ok {
			continue
		}
		if _, ok := seen[nw]; ok {
			shared++
			counted[nw] = struct{}{}
		}
	}
	return shared
}

// Metrics bundles every similarity metric computed in one pass over a pair
// of word-token slices.
type Metrics struct {
	Dice                 float64
	LongestRun           int
	LongestRunNormalized int
	SharedUniqueWords    int
}

// ComputeTextSimilarity computes all similarity metrics for aText/bText and
// their pre-split word slices in one call, for callers that need several.
func ComputeTextSimilarity(aText, bText string, aWords, bWords []string) Metrics {
	return Metrics{
		Dice:                 Dice(aText, bText),
		LongestRun:           LongestCommonRun(aWords, bWords),
		LongestRunNormalized: LongestCommonRunNormalized(aWords, bWords),
		SharedUniqueWords:    SharedUniqueWords(aWords, bWords),
	}
}
