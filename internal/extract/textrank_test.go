package extract

import (
	"math"
	"strings"
	"testing"
)

func newTestTextRank(t *testing.T, opts ...TextRankOption) *TextRank {
	t.Helper()
	mix := newTestMix(t)
	tr, err := NewTextRank(mix, strings.NewReader(testStopWords), opts...)
	if err != nil {
		t.Fatalf("NewTextRank: %v", err)
	}
	return tr
}

// With every filtered word mutually reachable within the sliding
// window, the co-occurrence graph is a complete graph: by symmetry
// every node converges to the same rank, and the final rescale maps
// that common rank to exactly 1.0.
func TestTextRankCompleteGraphConvergesToUniformRank(t *testing.T) {
	tr := newTestTextRank(t)
	got, err := tr.Extract("他来到了网易杭研大厦", 10)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Extract returned %d keywords, want 4: %+v", len(got), got)
	}
	for _, kw := range got {
		if math.Abs(kw.Weight-1.0) > 1e-9 {
			t.Fatalf("keyword %q weight = %v, want 1.0", kw.Word, kw.Weight)
		}
	}
}

func TestTextRankSkipsSingleRuneAndStopWords(t *testing.T) {
	tr := newTestTextRank(t)
	got, err := tr.Extract("他来到了网易杭研大厦", 10)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, kw := range got {
		if kw.Word == "他" || kw.Word == "了" {
			t.Fatalf("Extract should have skipped single-rune/stop word %q", kw.Word)
		}
	}
}

func TestTextRankRespectsTopN(t *testing.T) {
	tr := newTestTextRank(t)
	got, err := tr.Extract("他来到了网易杭研大厦", 2)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Extract returned %d keywords, want 2: %+v", len(got), got)
	}
}

func TestTextRankNarrowSpanDisconnectsDistantWords(t *testing.T) {
	// span=1 only links each word to its immediate neighbor, so the
	// first and last filtered words never co-occur; the graph is a
	// path, not a complete graph, so endpoints rank lower than the
	// middle nodes.
	tr := newTestTextRank(t, WithSpan(1))
	got, err := tr.Extract("他来到了网易杭研大厦", 10)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	weights := make(map[string]float64)
	for _, kw := range got {
		weights[kw.Word] = kw.Weight
	}
	// filtered order: 来到, 网易, 杭研, 大厦 (path: 来到-网易-杭研-大厦)
	if !(weights["网易"] >= weights["来到"] && weights["杭研"] >= weights["大厦"]) {
		t.Fatalf("expected interior nodes to rank at least as high as endpoints: %+v", weights)
	}
}
