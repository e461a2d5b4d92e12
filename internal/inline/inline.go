// Package inline computes a word- and character-level diff between two
// strings, producing an ordered sequence of Equal/Added/Removed parts
// whose concatenation reconstructs each side exactly (spec §3's
// InlinePart / part-coverage invariant), except that protected **bold**
// and *italic* spans come back wrapped as <strong>/<em>, so text holding
// such spans does not reconstruct byte for byte.
package inline

import (
	"fmt"

	"github.com/basisdocs/mdiff/internal/boundary"
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/lcs"
	"github.com/basisdocs/mdiff/internal/part"
	"github.com/basisdocs/mdiff/internal/rules"
	"github.com/basisdocs/mdiff/internal/token"
)

// ComputeInlineDiff diffs left against right at word granularity, using
// long shared word runs as anchors, then aligns the residues either side of
// each anchor word-by-word (falling through to char-level diff for
// minor word-pair edits), optimises change-run boundaries onto natural
// seams, and finally normalises the result with the rewrite-rule engine.
func ComputeInlineDiff(left, right string) []part.Part {
	leftWords := token.Tokenize(protect(left))
	rightWords := token.Tokenize(protect(right))

	normLeft := normalizedKeys(leftWords)
	normRight := normalizedKeys(rightWords)

	runs := lcs.AnchorRuns(normLeft, normRight, config.MinAnchorRun)

	var out []part.Part
	li, ri := 0, 0
	for _, run := range runs {
		if run.AI > li || run.BI > ri {
			out = append(out, wordLCSDiff(leftWords[li:run.AI], rightWords[ri:run.BI])...)
		}
		for k := 0; k < run.Len; k++ {
			out = append(out, alignWordPair(leftWords[run.AI+k], rightWords[run.BI+k])...)
		}
		li = run.AI + run.Len
		ri = run.BI + run.Len
	}
	if li < len(leftWords) || ri < len(rightWords) {
		out = append(out, wordLCSDiff(leftWords[li:], rightWords[ri:])...)
	}

	out = boundary.Optimise(out)
	out = rules.ApplyUntilStable(out, rules.Standard(), 0)

	for i := range out {
		out[i] = restoreTree(out[i])
	}
	return out
}

// normalizedKeys returns the per-word normalised form used for anchor
// search, with each empty-normalised word (pure whitespace/punctuation
// that normalises away entirely) replaced by a per-position sentinel so
// it can never spuriously anchor against another empty word.
func normalizedKeys(words []token.Word) []string {
	keys := make([]string, len(words))
	for i, w := range words {
		if n := token.NormalizeWord(w.Word); n != "" {
			keys[i] = n
		} else {
			keys[i] = fmt.Sprintf("\x00%d", i)
		}
	}
	return keys
}

// restoreTree applies restore (markdown-span unprotection) to a part's
// Value and, recursively, to every descendant Child's Value.
func restoreTree(p part.Part) part.Part {
	p.Value = restore(p.Value)
	if p.Children != nil {
		children := make([]part.Part, len(p.Children))
		for i, c := range p.Children {
			children[i] = restoreTree(c)
		}
		p.Children = children
	}
	return p
}
