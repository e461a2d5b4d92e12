package lcs_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/basisdocs/mdiff/internal/lcs"
)

func TestWeightedAlignIncreasing(t *testing.T) {
	sim := [][]float64{
		{0.9, 0.1, 0.0},
		{0.1, 0.8, 0.2},
		{0.0, 0.2, 0.95},
	}
	matches := lcs.WeightedAlign(sim, 0.6)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].LeftIdx <= matches[i-1].LeftIdx || matches[i].RightIdx <= matches[i-1].RightIdx {
			t.Fatalf("matches not strictly increasing: %+v", matches)
		}
	}
	if matches[2].Exact {
		t.Errorf("expected matches[2] (sim=0.95) not to be marked exact (exact requires sim > 0.99)")
	}
}

func TestWeightedAlignNoMatches(t *testing.T) {
	sim := [][]float64{{0.1, 0.2}, {0.3, 0.1}}
	matches := lcs.WeightedAlign(sim, 0.6)
	if len(matches) != 0 {
		t.Errorf("expected no matches below threshold, got %+v", matches)
	}
}

func TestAnchorRunsOrdersLeftToRight(t *testing.T) {
	a := strings.Fields("the quick brown fox jumps over the lazy dog today")
	b := strings.Fields("a quick brown fox leaps over a very lazy dog")
	runs := lcs.AnchorRuns(a, b, 3)
	if len(runs) == 0 {
		t.Fatal("expected at least one anchor run")
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].AI <= runs[i-1].AI || runs[i].BI <= runs[i-1].BI {
			t.Fatalf("anchor runs not strictly increasing: %+v", runs)
		}
	}
}

func TestAnchorRunsBelowMinimum(t *testing.T) {
	a := []string{"alpha", "beta"}
	b := []string{"gamma", "delta"}
	if runs := lcs.AnchorRuns(a, b, 3); runs != nil {
		t.Errorf("expected nil runs, got %+v", runs)
	}
}

func TestAnchorRunsExactMatch(t *testing.T) {
	a := strings.Fields("one two three")
	b := strings.Fields("one two three")
	runs := lcs.AnchorRuns(a, b, 3)
	want := []lcs.Run{{AI: 0, BI: 0, Len: 3}}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("AnchorRuns = %+v, want %+v", runs, want)
	}
}
