package split_test

import (
	"testing"

	"github.com/basisdocs/mdiff/internal/block"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/split"
)

func tb(s string) block.Block { return block.TextBlock{KindValue: block.KindParagraph, Value: s} }

func TestDetectSplitsPatternA(t *testing.T) {
	l := "The quick brown fox. It jumps over the lazy dog."
	x := "The quick brown fox."
	r := "It jumps over the lazy dog."

	pairs := []pair.DiffPair{
		pair.NewAdded(tb(x)),
		pair.NewModified(tb(l), tb(r)),
	}
	out := split.DetectSplits(pairs)
	if len(out) != 1 {
		t.Fatalf("expected pairs to collapse to one split pair, got %d: %+v", len(out), out)
	}
	if out[0].Status != pair.Split {
		t.Fatalf("status = %v, want Split", out[0].Status)
	}
	if out[0].Left.Text() != l {
		t.Errorf("left = %q, want %q", out[0].Left.Text(), l)
	}
	if out[0].FirstPart.Text() != x || out[0].SecondPart.Text() != r {
		t.Errorf("firstPart/secondPart = %q/%q, want %q/%q", out[0].FirstPart.Text(), out[0].SecondPart.Text(), x, r)
	}
	if out[0].SplitPoint != len(x) {
		t.Errorf("splitPoint = %d, want %d", out[0].SplitPoint, len(x))
	}
}

func TestDetectSplitsPatternB(t *testing.T) {
	l := "The quick brown fox. It jumps over the lazy dog."
	r := "The quick brown fox."
	x := "It jumps over the lazy dog."

	pairs := []pair.DiffPair{
		pair.NewModified(tb(l), tb(r)),
		pair.NewAdded(tb(x)),
	}
	out := split.DetectSplits(pairs)
	if len(out) != 1 || out[0].Status != pair.Split {
		t.Fatalf("expected one split pair, got %+v", out)
	}
	if out[0].FirstPart.Text() != r || out[0].SecondPart.Text() != x {
		t.Errorf("firstPart/secondPart = %q/%q, want %q/%q", out[0].FirstPart.Text(), out[0].SecondPart.Text(), r, x)
	}
}

func TestDetectSplitsLeavesUnrelatedPairsAlone(t *testing.T) {
	pairs := []pair.DiffPair{
		pair.NewAdded(tb("completely unrelated new paragraph content")),
		pair.NewModified(tb("some left text here"), tb("some right text here")),
	}
	out := split.DetectSplits(pairs)
	if len(out) != 2 {
		t.Fatalf("expected both pairs to survive unchanged, got %d: %+v", len(out), out)
	}
}
