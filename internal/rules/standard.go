package rules

import (
	"strings"

	"github.com/basisdocs/mdiff/internal/part"
	"github.com/basisdocs/mdiff/internal/token"
)

// Standard returns the standard absorption rule set described in spec §4.10,
// in priority order.
func Standard() []Rule {
	return []Rule{
		absorbEqualStopWords(),
		absorbSingleWordLargeChanges(),
		absorbMinorStopWordPair(),
	}
}

// absorbEqualStopWords absorbs an Equal part made entirely of stop-word
// tokens, sandwiched immediately between a change part on each side, into
// those change parts — unless a meaningful (non-stop-word) Equal part sits
// just beyond one of those changes, in which case the island is kept.
func absorbEqualStopWords() Rule {
	return Rule{
		Name:    "absorb-equal-stop-words",
		Pattern: []part.Type{part.Equal},
		Condition: func(ctx Context) bool {
			if len(ctx.Out) == 0 || ctx.Index+1 >= len(ctx.Parts) {
				return false
			}
			if !allStopWords(ctx.Parts[ctx.Index].Value) {
				return false
			}
			before := ctx.Out[len(ctx.Out)-1]
			after := ctx.Parts[ctx.Index+1]
			if before.Type == part.Equal || after.Type == part.Equal {
				return false
			}
			if before.Type == after.Type {
				return false
			}
			if len(ctx.Out) >= 2 && isMeaningfulEqual(ctx.Out[len(ctx.Out)-2]) {
				return false
			}
			if ctx.Index+2 < len(ctx.Parts) && isMeaningfulEqual(ctx.Parts[ctx.Index+2]) {
				return false
			}
			return true
		},
		Transform: func(ctx Context) ([]part.Part, int) {
			value := ctx.Parts[ctx.Index].Value
			before := ctx.Out[len(ctx.Out)-1]
			after := ctx.Parts[ctx.Index+1]

			out := append([]part.Part{}, ctx.Out[:len(ctx.Out)-1]...)
			out = append(out, mergeOnto(before, value, true), mergeOnto(after, value, false))
			return out, 2
		},
	}
}

// absorbSingleWordLargeChanges absorbs an Equal part of exactly one word,
// adjacent to large (multi-word) change parts on both sides, into those
// surrounding changes.
func absorbSingleWordLargeChanges() Rule {
	const largeWordCount = 4

	return Rule{
		Name:    "absorb-single-word-large-changes",
		Pattern: []part.Type{part.Equal},
		Condition: func(ctx Context) bool {
			if len(ctx.Out) == 0 || ctx.Index+1 >= len(ctx.Parts) {
				return false
			}
			if wordCount(ctx.Parts[ctx.Index].Value) != 1 {
				return false
			}
			before := ctx.Out[len(ctx.Out)-1]
			after := ctx.Parts[ctx.Index+1]
			if before.Type == part.Equal || after.Type == part.Equal {
				return false
			}
			return wordCount(before.Value) >= largeWordCount && wordCount(after.Value) >= largeWordCount
		},
		Transform: func(ctx Context) ([]part.Part, int) {
			value := ctx.Parts[ctx.Index].Value
			before := ctx.Out[len(ctx.Out)-1]
			after := ctx.Parts[ctx.Index+1]

			out := append([]part.Part{}, ctx.Out[:len(ctx.Out)-1]...)
			out = append(out, mergeOnto(before, value, true), mergeOnto(after, value, false))
			return out, 2
		},
	}
}

// absorbMinorStopWordPair absorbs an adjacent (removed-minor, added-minor)
// pair whose normalised word is the same stop word into the surrounding
// non-minor changes, when such neighbours exist.
func absorbMinorStopWordPair() Rule {
	return Rule{
		Name:    "absorb-minor-stop-word-pair",
		Pattern: []part.Type{part.Removed, part.Added},
		Condition: func(ctx Context) bool {
			removed := ctx.Parts[ctx.Index]
			added := ctx.Parts[ctx.Index+1]
			if !removed.Minor || !added.Minor {
				return false
			}
			nr, na := token.NormalizeWord(removed.Value), token.NormalizeWord(added.Value)
			if nr != na || !token.IsStopWord(nr) {
				return false
			}
			hasRemovedNeighbor := len(ctx.Out) > 0 && ctx.Out[len(ctx.Out)-1].Type == part.Removed && !ctx.Out[len(ctx.Out)-1].Minor
			hasAddedNeighbor := ctx.Index+2 < len(ctx.Parts) && ctx.Parts[ctx.Index+2].Type == part.Added && !ctx.Parts[ctx.Index+2].Minor
			return hasRemovedNeighbor || hasAddedNeighbor
		},
		Transform: func(ctx Context) ([]part.Part, int) {
			removed := ctx.Parts[ctx.Index]
			added := ctx.Parts[ctx.Index+1]

			out := append([]part.Part{}, ctx.Out...)
			if len(out) > 0 && out[len(out)-1].Type == part.Removed && !out[len(out)-1].Minor {
				out[len(out)-1] = mergeOnto(out[len(out)-1], removed.Value, true)
			} else {
				out = append(out, removed)
			}

			if ctx.Index+2 < len(ctx.Parts) && ctx.Parts[ctx.Index+2].Type == part.Added && !ctx.Parts[ctx.Index+2].Minor {
				// Prepend the minor added value onto the following non-minor
				// added part by consuming it too.
				next := ctx.Parts[ctx.Index+2]
				merged := part.Composite(part.Added, next.Minor, part.Leaf(added.Value, part.Added), next)
				out = append(out, merged)
				return out, 3
			}
			out = append(out, added)
			return out, 2
		},
	}
}

func allStopWords(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !token.IsStopWord(w) {
			return false
		}
	}
	return true
}

func isMeaningfulEqual(p part.Part) bool {
	if p.Type != part.Equal {
		return false
	}
	return !allStopWords(p.Value)
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// mergeOnto appends value onto target's text, prepending instead when
// atEnd is false (used when target lies after the merged position in the
// part sequence, so the absorbed text must come first to keep left/right
// order correct).
func mergeOnto(target part.Part, value string, atEnd bool) part.Part {
	absorbed := part.Leaf(value, target.Type)
	if atEnd {
		return part.Composite(target.Type, target.Minor, target, absorbed)
	}
	return part.Composite(target.Type, target.Minor, absorbed, target)
}
