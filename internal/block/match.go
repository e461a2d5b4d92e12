package block

import (
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/lcs"
	"github.com/basisdocs/mdiff/internal/similarity"
)

// Match pairs a left block index with a right block index the aligner
// judged similar enough to correspond. Exact marks a near-1.0 similarity
// score (the pair should render as "equal" rather than "modified").
type Match struct {
	LeftIdx, RightIdx int
	Exact             bool
}

// FindMatches precomputes the Dice-similarity matrix between leftTexts and
// rightTexts and runs the weighted block-alignment LCS over it, using the
// similarity threshold for the given matching level.
func FindMatches(leftTexts, rightTexts []string, level config.MatchingLevel) []Match {
	threshold := config.BlockSimilarityThreshold(level)

	sim := make([][]float64, len(leftTexts))
	for i, l := range leftTexts {
		sim[i] = make([]float64, len(rightTexts))
		for j, r := range rightTexts {
			sim[i][j] = similarity.Dice(l, r)
		}
	}

	raw := lcs.WeightedAlign(sim, threshold)
	matches := make([]Match, len(raw))
	for i, m := range raw {
		matches[i] = Match{LeftIdx: m.LeftIdx, RightIdx: m.RightIdx, Exact: m.Exact}
	}
	return matches
}
