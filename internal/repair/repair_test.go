package repair_test

import (
	"testing"

	"github.com/basisdocs/mdiff/internal/block"
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/repair"
)

func tb(s string) block.Block { return block.TextBlock{KindValue: block.KindParagraph, Value: s} }

func TestPairUnmatchedUpgradesSharedRun(t *testing.T) {
	removedText := "the quick brown fox jumps over the lazy dog today"
	addedText := "the quick brown fox jumps over the lazy dog tomorrow"
	pairs := []pair.DiffPair{
		pair.NewRemoved(tb(removedText)),
		pair.NewAdded(tb(addedText)),
	}
	out := repair.PairUnmatched(pairs, config.Normal)
	if len(out) != 1 {
		t.Fatalf("expected a single upgraded pair, got %d: %+v", len(out), out)
	}
	if out[0].Status != pair.Modified {
		t.Errorf("status = %v, want Modified", out[0].Status)
	}
}

func TestPairUnmatchedLeavesUnrelatedPairsAlone(t *testing.T) {
	pairs := []pair.DiffPair{
		pair.NewRemoved(tb("completely unrelated left content here")),
		pair.NewAdded(tb("totally different right content indeed")),
	}
	out := repair.PairUnmatched(pairs, config.Normal)
	if len(out) != 2 {
		t.Fatalf("expected both pairs to remain unmatched, got %d: %+v", len(out), out)
	}
	if out[0].Status != pair.Removed || out[1].Status != pair.Added {
		t.Errorf("expected Removed/Added to survive unchanged, got %v/%v", out[0].Status, out[1].Status)
	}
}

func TestPairUnmatchedIsOrderPreserving(t *testing.T) {
	// Two removed blocks, two added blocks, where both removed blocks
	// share the same five-word run with the FIRST added block. Once the
	// first removed block takes it, the second must not reach back to it;
	// the order-preserving rule must keep position order on both sides.
	pairs := []pair.DiffPair{
		pair.NewRemoved(tb("alpha beta gamma delta epsilon zeta")),
		pair.NewRemoved(tb("alpha beta gamma delta epsilon eta")),
		pair.NewAdded(tb("alpha beta gamma delta epsilon theta")),
		pair.NewAdded(tb("unrelated content block number two")),
	}
	out := repair.PairUnmatched(pairs, config.Normal)

	var leftOrder, rightOrder []string
	for _, p := range out {
		if p.Left != nil {
			leftOrder = append(leftOrder, p.Left.Text())
		}
		if p.Right != nil {
			rightOrder = append(rightOrder, p.Right.Text())
		}
	}
	if leftOrder[0] != "alpha beta gamma delta epsilon zeta" || leftOrder[1] != "alpha beta gamma delta epsilon eta" {
		t.Errorf("left order not preserved: %v", leftOrder)
	}
	if rightOrder[0] != "alpha beta gamma delta epsilon theta" || rightOrder[1] != "unrelated content block number two" {
		t.Errorf("right order not preserved: %v", rightOrder)
	}
}
