package pair_test

import (
	"testing"

	"github.com/basisdocs/mdiff/internal/block"
	"github.com/basisdocs/mdiff/internal/config"
	"github.com/basisdocs/mdiff/internal/debuglog"
	"github.com/basisdocs/mdiff/internal/pair"
	"github.com/basisdocs/mdiff/internal/part"
)

func captureDebugLog(messages *[]string) (restore func()) {
	debuglog.SetHook(func(format string, args ...any) {
		*messages = append(*messages, format)
	})
	return func() { debuglog.SetHook(nil) }
}

func tb(s string) block.Block { return block.TextBlock{KindValue: block.KindParagraph, Value: s} }

func TestCreateInitialPairsEmitsExpectedStatuses(t *testing.T) {
	left := []block.Block{tb("alpha one two three"), tb("only on the left side here")}
	right := []block.Block{tb("alpha one two three"), tb("brand new right-only content")}

	leftTexts := []string{left[0].Text(), left[1].Text()}
	rightTexts := []string{right[0].Text(), right[1].Text()}
	matches := block.FindMatches(leftTexts, rightTexts, config.Normal)

	pairs := pair.CreateInitialPairs(left, right, matches)

	var statuses []pair.Status
	for _, p := range pairs {
		statuses = append(statuses, p.Status)
	}
	if len(statuses) == 0 {
		t.Fatal("expected at least one pair")
	}
	if statuses[0] != pair.Equal {
		t.Errorf("expected first pair to be equal, got %v (%+v)", statuses, pairs)
	}

	// every left block and every right block must appear exactly once
	leftCount, rightCount := 0, 0
	for _, p := range pairs {
		if p.Left != nil {
			leftCount++
		}
		if p.Right != nil {
			rightCount++
		}
	}
	if leftCount != len(left) {
		t.Errorf("left coverage = %d, want %d", leftCount, len(left))
	}
	if rightCount != len(right) {
		t.Errorf("right coverage = %d, want %d", rightCount, len(right))
	}
}

func TestNewModifiedComputesInlineDiff(t *testing.T) {
	left := tb("the cat sat on the mat")
	right := tb("the cat sat on the rug")
	p := pair.NewModified(left, right)
	if p.Status != pair.Modified {
		t.Fatalf("status = %v, want Modified", p.Status)
	}
	if len(p.InlineDiff) == 0 {
		t.Fatal("expected a non-empty inline diff")
	}
	gotLeft := part.Concat(p.InlineDiff, part.Equal, part.Removed)
	gotRight := part.Concat(p.InlineDiff, part.Equal, part.Added)
	if gotLeft != left.Text() {
		t.Errorf("left reconstruction = %q, want %q", gotLeft, left.Text())
	}
	if gotRight != right.Text() {
		t.Errorf("right reconstruction = %q, want %q", gotRight, right.Text())
	}
}

func TestValidateReportsPartCoverageViolation(t *testing.T) {
	var messages []string
	// Swap the debug hook to capture violation reports instead of asserting
	// on stderr output.
	restoreHook := captureDebugLog(&messages)
	defer restoreHook()

	bad := pair.NewModified(tb("left text"), tb("right text"))
	bad.InlineDiff = []part.Part{part.Leaf("garbage", part.Equal)}

	pair.Validate([]pair.DiffPair{bad}, []block.Block{tb("left text")}, []block.Block{tb("right text")})
	if len(messages) == 0 {
		t.Error("expected a part-coverage violation to be reported")
	}
}
