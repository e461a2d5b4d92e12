// Package rules implements the declarative rewrite-rule engine that
// normalises an inline-diff part sequence to a fixed point: absorbing
// stop-word noise, collapsing minor case-pairs, and cleaning noise-only
// equal segments between real changes.
package rules

import "github.com/basisdocs/mdiff/internal/part"

// Context is the window a Rule's Condition/Transform functions see:
// the full original part sequence for this pass, the index of the part
// currently being considered, and the output accumulated so far (so a
// rule can inspect or extend the part it just emitted).
type Context struct {
	Parts []part.Part
	Index int
	Out   []part.Part
}

// Rule is one entry in the rewrite-rule engine's data-driven rule list.
// Pattern documents the part-type shape the rule targets (for readability
// and tests); Condition performs the detailed semantic check (including
// any look-behind/look-ahead within Context); Transform produces the
// replacement output and reports how many parts of the original input it
// consumed starting at Index.
type Rule struct {
	Name      string
	Pattern   []part.Type
	Condition func(ctx Context) bool
	Transform func(ctx Context) (out []part.Part, consumed int)
}

// DefaultMaxIterations bounds ApplyUntilStable against pathological
// inputs; realistic inputs converge in far fewer passes.
const DefaultMaxIterations = 50

// ApplyUntilStable repeats ApplyPass until the output equals the input or
// maxIterations passes have run.
func ApplyUntilStable(parts []part.Part, ruleset []Rule, maxIterations int) []part.Part {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	for i := 0; i < maxIterations; i++ {
		next, changed := ApplyPass(parts, ruleset)
		if !changed {
			return next
		}
		parts = next
	}
	return parts
}

// ApplyPass scans parts once: at each index, the first rule in list order
// whose pattern gates and whose Condition returns true is applied, and
// scanning resumes after the parts it consumed. Rules are tried in list
// order (priority = position).
func ApplyPass(parts []part.Part, ruleset []Rule) (out []part.Part, changed bool) {
	i := 0
	for i < len(parts) {
		applied := false
		for _, r := range ruleset {
			if !patternGates(r.Pattern, parts, i) {
				continue
			}
			ctx := Context{Parts: parts, Index: i, Out: out}
			if r.Condition != nil && !r.Condition(ctx) {
				continue
			}
			newOut, consumed := r.Transform(ctx)
			if consumed <= 0 {
				continue
			}
			out = newOut
			i += consumed
			changed = true
			applied = true
			break
		}
		if applied {
			continue
		}
		out = append(out, parts[i])
		i++
	}
	return out, changed
}

// patternGates reports whether parts[i:i+len(pattern)] matches pattern's
// required types. An empty pattern always gates (the rule does its own
// matching entirely in Condition).
func patternGates(pattern []part.Type, parts []part.Part, i int) bool {
	if len(pattern) == 0 {
		return true
	}
	if i+len(pattern) > len(parts) {
		return false
	}
	for k, want := range pattern {
		if parts[i+k].Type != want {
			return false
		}
	}
	return true
}
