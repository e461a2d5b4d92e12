package pair

import (
	"github.com/basisdocs/mdiff/internal/block"
	"github.com/basisdocs/mdiff/internal/debuglog"
	"github.com/basisdocs/mdiff/internal/part"
)

// Validate checks pairs against the invariants spec.md §8 requires of the
// final pair list: every original block appears in exactly one pair, in
// document order on each side, and every modified pair's inline diff
// reconstructs both sides' text exactly. Violations are reported via
// debuglog rather than aborting the pipeline, since the caller already has
// the (possibly still useful) result in hand.
func Validate(pairs []DiffPair, leftBlocks, rightBlocks []block.Block) {
	validateOrder(pairs, leftBlocks, rightBlocks)
	for _, p := range pairs {
		if p.Status == Modified {
			validatePartCoverage(p)
		}
	}
}

func validateOrder(pairs []DiffPair, leftBlocks, rightBlocks []block.Block) {
	var leftSeen, rightSeen []block.Block
	for _, p := range pairs {
		if p.Left != nil {
			leftSeen = append(leftSeen, p.Left)
		}
		if p.Right != nil {
			rightSeen = append(rightSeen, p.Right)
		}
		if p.Status == Split {
			if p.FirstPart != nil {
				rightSeen = append(rightSeen, p.FirstPart)
			}
			if p.SecondPart != nil {
				rightSeen = append(rightSeen, p.SecondPart)
			}
		}
	}
	if len(leftSeen) != len(leftBlocks) {
		debuglog.Printf("order invariant violated: left pair count %d != left block count %d", len(leftSeen), len(leftBlocks))
	}
	if len(rightSeen) != len(rightBlocks) {
		debuglog.Printf("order invariant violated: right pair count %d != right block count %d", len(rightSeen), len(rightBlocks))
	}
	for i := 0; i < len(leftSeen) && i < len(leftBlocks); i++ {
		if leftSeen[i].Text() != leftBlocks[i].Text() {
			debuglog.Printf("order invariant violated: left block %d out of document order", i)
			break
		}
	}
	for i := 0; i < len(rightSeen) && i < len(rightBlocks); i++ {
		if rightSeen[i].Text() != rightBlocks[i].Text() {
			debuglog.Printf("order invariant violated: right block %d out of document order", i)
			break
		}
	}
}

func validatePartCoverage(p DiffPair) {
	left := p.Left.Text()
	right := p.Right.Text()
	if got := part.Concat(p.InlineDiff, part.Equal, part.Removed); got != left {
		debuglog.Dump("part-coverage violation (left)", p)
	}
	if got := part.Concat(p.InlineDiff, part.Equal, part.Added); got != right {
		debuglog.Dump("part-coverage violation (right)", p)
	}
}
