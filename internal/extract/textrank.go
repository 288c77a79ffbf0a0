package extract

import (
	"io"
	"sort"

	"github.com/oceanbase/jieba-go/internal/segment"
)

const (
	textRankDamping    = 0.85
	textRankIterations = 10
	defaultSpan        = 5
)

// TextRank ranks words by weighted co-occurrence within a sliding
// window, matching TextRankExtractor.
type TextRank struct {
	strategy  segment.Strategy
	stopWords map[string]struct{}
	span      int
	rankTime  int
}

// TextRankOption configures a TextRank extractor.
type TextRankOption func(*TextRank)

// WithSpan sets the sliding co-occurrence window width (default 5).
func WithSpan(span int) TextRankOption {
	return func(tr *TextRank) { tr.span = span }
}

// WithRankIterations sets the number of PageRank-style iterations
// (default 10).
func WithRankIterations(n int) TextRankOption {
	return func(tr *TextRank) { tr.rankTime = n }
}

// NewTextRank builds a TextRank extractor over strategy (ordinarily a
// *segment.Mix) and stopWords (one per line).
func NewTextRank(strategy segment.Strategy, stopWords io.Reader, opts ...TextRankOption) (*TextRank, error) {
	stop, err := loadStopWords(stopWords)
	if err != nil {
		return nil, err
	}
	tr := &TextRank{strategy: strategy, stopWords: stop, span: defaultSpan, rankTime: textRankIterations}
	for _, opt := range opts {
		opt(tr)
	}
	return tr, nil
}

// wordGraph is an undirected, weighted co-occurrence graph keyed by
// word text, matching TextRankExtractor::WordGraph.
type wordGraph struct {
	edges map[string]map[string]float64
}

func newWordGraph() *wordGraph {
	return &wordGraph{edges: make(map[string]map[string]float64)}
}

func (g *wordGraph) addEdge(a, b string) {
	if a == b {
		return
	}
	g.link(a, b)
	g.link(b, a)
}

func (g *wordGraph) link(from, to string) {
	m, ok := g.edges[from]
	if !ok {
		m = make(map[string]float64)
		g.edges[from] = m
	}
	m[to]++
}

// rank runs rankTime iterations of weighted PageRank over g, returning
// every node's raw score after the last iteration (Extract rescales
// them), matching TextRankExtractor::WordGraph::rank.
func (g *wordGraph) rank(damping float64, rankTime int) map[string]float64 {
	outSum := make(map[string]float64)
	for node, neighbors := range g.edges {
		var sum float64
		for _, w := range neighbors {
			sum += w
		}
		outSum[node] = sum
	}

	score := make(map[string]float64, len(g.edges))
	for node := range g.edges {
		score[node] = 1
	}

	for i := 0; i < rankTime; i++ {
		next := make(map[string]float64, len(score))
		for node := range g.edges {
			var sum float64
			for neighbor, weight := range g.edges[node] {
				denom := outSum[neighbor]
				if denom == 0 {
					continue
				}
				sum += weight / denom * score[neighbor]
			}
			next[node] = (1 - damping) + damping*sum
		}
		score = next
	}
	return score
}

// Extract cuts sentence, builds a co-occurrence graph over a sliding
// window of non-stop, non-single-rune words, ranks it, and returns the
// topN highest-ranked words rescaled into [0, 1].
func (t *TextRank) Extract(sentence string, topN int) ([]Keyword, error) {
	words, err := t.strategy.Cut(sentence)
	if err != nil {
		return nil, err
	}

	type occurrence struct {
		word   string
		offset int
	}
	var filtered []occurrence
	offset := 0
	for _, w := range words {
		at := offset
		offset += len(w.Text)
		if isSingleRune(w.Text) || isStopWord(t.stopWords, w.Text) {
			continue
		}
		filtered = append(filtered, occurrence{word: w.Text, offset: at})
	}

	graph := newWordGraph()
	for i := range filtered {
		skip := 0
		for j := i + 1; j < len(filtered) && skip < t.span; j++ {
			graph.addEdge(filtered[i].word, filtered[j].word)
			skip++
		}
	}

	scores := graph.rank(textRankDamping, t.rankTime)

	offsets := make(map[string][]int)
	var order []string
	for _, occ := range filtered {
		if _, ok := offsets[occ.word]; !ok {
			order = append(order, occ.word)
		}
		offsets[occ.word] = append(offsets[occ.word], occ.offset)
	}

	var minRank, maxRank float64
	first := true
	for _, v := range scores {
		if first {
			minRank, maxRank = v, v
			first = false
			continue
		}
		if v < minRank {
			minRank = v
		}
		if v > maxRank {
			maxRank = v
		}
	}

	keywords := make([]Keyword, 0, len(order))
	denom := maxRank - minRank/10.0
	for _, w := range order {
		weight := scores[w]
		if denom != 0 {
			weight = (weight - minRank/10.0) / denom
		}
		keywords = append(keywords, Keyword{Word: w, Offsets: offsets[w], Weight: weight})
	}
	sort.Slice(keywords, func(i, j int) bool { return keywords[i].Weight > keywords[j].Weight })
	if topN < len(keywords) {
		keywords = keywords[:topN]
	}
	return keywords, nil
}
