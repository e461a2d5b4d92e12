// Package boundary implements the inline-diff boundary optimiser: shifting
// change runs to natural seams (word/line boundaries) and absorbing short
// equal islands between same-type change parts.
package boundary

import (
	"unicode"

	"github.com/basisdocs/mdiff/internal/part"
)

// ShortMatchThreshold is the maximum length of an equal island that may be
// absorbed into its surrounding same-type change parts.
const ShortMatchThreshold = 2

// seamScore scores the character boundary between before and after,
// following the table in spec §4.9.
func seamScore(before, after rune, haveBefore, haveAfter bool) int {
	if !haveBefore || !haveAfter {
		return 150 // edge of the string
	}
	if before == '\n' || after == '\n' {
		return 80
	}
	if isSeparator(before) && unicode.IsSpace(after) {
		return 40
	}
	if unicode.IsSpace(before) != unicode.IsSpace(after) {
		return 20
	}
	if unicode.IsLower(before) && unicode.IsUpper(after) {
		return 10
	}
	return 0
}

func isSeparator(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?':
		return true
	default:
		return false
	}
}

// boundaryScoreAt scores the seam immediately before position pos in s (a
// rune slice), treating pos==0 and pos==len(s) as string edges.
func boundaryScoreAt(s []rune, pos int) int {
	haveBefore := pos > 0
	haveAfter := pos < len(s)
	var before, after rune
	if haveBefore {
		before = s[pos-1]
	}
	if haveAfter {
		after = s[pos]
	}
	return seamScore(before, after, haveBefore, haveAfter)
}

// Optimise shifts each single Added/Removed part that sits directly
// between two Equal parts to the seam position within reach (at most the
// change's own length and the adjoining equal part's length) that
// maximises the sum of its left- and right-boundary scores, then absorbs
// short equal islands between same-type changes to a fixed point. Runs of
// two or more adjacent change parts are not shifted.
func Optimise(parts []part.Part) []part.Part {
	parts = shiftRuns(parts)
	return absorbShortMatches(parts)
}

// shiftRuns attempts, for each maximal equal/change/equal triple, to rotate
// characters between the equal neighbours and the change run so that the
// run's boundaries land on better seams, without altering the meaning of
// the diff (left/right reconstructions are unaffected because a shift only
// ever trades identical characters between an Equal part and an adjoining
// change part of the same "side").
func shiftRuns(parts []part.Part) []part.Part {
	out := make([]part.Part, len(parts))
	copy(out, parts)

	for i := 1; i+1 < len(out); i++ {
		if out[i].Type == part.Equal || out[i-1].Type != part.Equal || out[i+1].Type != part.Equal {
			continue
		}
		shiftOne(out, i)
	}
	return out
}

// shiftOne tries shifting the change part at index i left/right by
// rotating characters with its equal neighbours, picking the reachable
// offset with the best joint boundary score.
func shiftOne(parts []part.Part, i int) {
	before := &parts[i-1]
	change := &parts[i]
	after := &parts[i+1]

	beforeRunes := []rune(before.Value)
	changeRunes := []rune(change.Value)
	afterRunes := []rune(after.Value)
	if len(changeRunes) == 0 {
		return
	}

	maxLeftShift := min(len(beforeRunes), len(changeRunes))
	maxRightShift := min(len(afterRunes), len(changeRunes))

	bestOffset := 0
	bestScore := -1
	// offset > 0 shifts the run right (consuming from after, donating to before);
	// offset < 0 shifts left (consuming from before, donating to after).
	for offset := -maxLeftShift; offset <= maxRightShift; offset++ {
		if !rotationPreservesMeaning(beforeRunes, changeRunes, afterRunes, offset) {
			continue
		}
		leftPos, rightPos := seamPositions(beforeRunes, changeRunes, afterRunes, offset)
		score := boundaryScoreAt(concatRunes(beforeRunes, changeRunes, afterRunes), leftPos) +
			boundaryScoreAt(concatRunes(beforeRunes, changeRunes, afterRunes), rightPos)
		if score > bestScore {
			bestScore = score
			bestOffset = offset
		}
	}

	if bestOffset == 0 {
		return
	}
	applyShift(before, change, after, beforeRunes, changeRunes, afterRunes, bestOffset)
}

// rotationPreservesMeaning requires the characters being rotated in and out
// of the change run to be identical to the characters already at the far
// end of the run, i.e. the run is periodic enough at that edge that
// shifting doesn't change which characters are "changed".
func rotationPreservesMeaning(before, change, after []rune, offset int) bool {
	switch {
	case offset == 0:
		return true
	case offset > 0:
		// Move `offset` runes from the front of `after` to the end of `change`,
		// and the same count from the front of `change` to the end of `before`.
		if offset > len(change) || offset > len(after) {
			return false
		}
		for k := 0; k < offset; k++ {
			if change[k] != after[k] {
				return false
			}
		}
		return true
	default:
		n := -offset
		if n > len(change) || n > len(before) {
			return false
		}
		for k := 0; k < n; k++ {
			if change[len(change)-1-k] != before[len(before)-1-k] {
				return false
			}
		}
		return true
	}
}

func seamPositions(before, change, after []rune, offset int) (left, right int) {
	leftLen := len(before)
	changeLen := len(change)
	switch {
	case offset > 0:
		leftLen += offset
	case offset < 0:
		leftLen += offset
	}
	return leftLen, leftLen + changeLen
}

func concatRunes(parts ...[]rune) []rune {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make([]rune, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func applyShift(before, change, after *part.Part, beforeRunes, changeRunes, afterRunes []rune, offset int) {
	switch {
	case offset > 0:
		newBefore := append(append([]rune{}, beforeRunes...), changeRunes[:offset]...)
		newChange := append(append([]rune{}, changeRunes[offset:]...), afterRunes[:offset]...)
		newAfter := afterRunes[offset:]
		before.Value = string(newBefore)
		change.Value = string(newChange)
		after.Value = string(newAfter)
	case offset < 0:
		n := -offset
		newBefore := beforeRunes[:len(beforeRunes)-n]
		newChange := append(append([]rune{}, beforeRunes[len(beforeRunes)-n:]...), changeRunes[:len(changeRunes)-n]...)
		newAfter := append(append([]rune{}, changeRunes[len(changeRunes)-n:]...), afterRunes...)
		before.Value = string(newBefore)
		change.Value = string(newChange)
		after.Value = string(newAfter)
	}
}

// absorbShortMatches merges a short, whitespace-free Equal island between
// two same-type change parts into one change part, recording the original
// three parts as Children, repeating to a fixed point.
func absorbShortMatches(parts []part.Part) []part.Part {
	for {
		next, changed := absorbPass(parts)
		parts = next
		if !changed {
			return parts
		}
	}
}

func absorbPass(parts []part.Part) ([]part.Part, bool) {
	var out []part.Part
	i := 0
	changed := false
	for i < len(parts) {
		if i+2 < len(parts) &&
			parts[i].Type != part.Equal &&
			parts[i].Type == parts[i+2].Type &&
			parts[i+1].Type == part.Equal &&
			len([]rune(parts[i+1].Value)) <= ShortMatchThreshold &&
			!containsWhitespace(parts[i+1].Value) {
			merged := part.Composite(parts[i].Type, parts[i].Minor && parts[i+2].Minor, parts[i], parts[i+1], parts[i+2])
			out = append(out, merged)
			i += 3
			changed = true
			continue
		}
		out = append(out, parts[i])
		i++
	}
	return out, changed
}

func containsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
