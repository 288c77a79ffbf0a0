package segment

import (
	"github.com/pkg/errors"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// MaxWordLength caps how many runes the maximum-probability pass will
// look ahead from any start position, matching cppjieba's
// MAX_WORD_LENGTH default.
const MaxWordLength = 512

// MP is the maximum-probability segmenter: it finds, for each
// pre-filtered run of text, the dictionary-word path through the
// run's DAG with the highest summed log-weight.
type MP struct {
	dict       *dict.Dictionary
	symbols    map[rune]struct{}
	maxWordLen int
}

// NewMP builds an MP segmenter over d, splitting on the default
// separator set.
func NewMP(d *dict.Dictionary) (*MP, error) {
	symbols, err := Symbols(DefaultSeparators)
	if err != nil {
		return nil, err
	}
	return &MP{dict: d, symbols: symbols, maxWordLen: MaxWordLength}, nil
}

// ResetSeparators replaces the rune set MP's PreFilter splits on.
func (s *MP) ResetSeparators(separators string) error {
	symbols, err := Symbols(separators)
	if err != nil {
		return err
	}
	s.symbols = symbols
	return nil
}

// Cut implements Strategy.
func (s *MP) Cut(text string) ([]Word, error) {
	return s.CutMaxLen(text, s.maxWordLen)
}

// CutMaxLen cuts text the same way Cut does, but caps dictionary-word
// lookahead at maxWordLen runes instead of s's configured default,
// matching MPSegment::Cut's max_word_len overload (used by Jieba's
// CutSmall).
func (s *MP) CutMaxLen(text string, maxWordLen int) ([]Word, error) {
	filter, runes, err := NewPreFilter(s.symbols, text)
	if err != nil {
		return nil, err
	}
	var words []Word
	for filter.HasNext() {
		r := filter.Next()
		cut, err := s.cutRange(text, runes, r.Begin, r.End, maxWordLen)
		if err != nil {
			return nil, err
		}
		words = append(words, cut...)
	}
	return words, nil
}

func (s *MP) cutRange(text string, runes []dict.Rune, begin, end, maxWordLen int) ([]Word, error) {
	spans, err := s.spans(runes, begin, end, maxWordLen)
	if err != nil {
		return nil, err
	}
	words := make([]Word, len(spans))
	for i, sp := range spans {
		words[i] = Word{Text: dict.Slice(text, runes, sp.Begin, sp.End)}
	}
	return words, nil
}

// wordSpan is a segmented word expressed as a rune-index range, used
// internally so Mix can tell a one-rune dictionary hit from a one-rune
// gap without re-decoding text.
type wordSpan struct {
	Begin int
	End   int
}

func (s *MP) spans(runes []dict.Rune, begin, end, maxWordLen int) ([]wordSpan, error) {
	if begin >= end {
		return nil, nil
	}
	dags := s.dict.Trie().FindPrefixes(runes, begin, end, maxWordLen)
	_, choice, err := calcDP(dags, begin, s.dict.MinWeight())
	if err != nil {
		return nil, err
	}
	return spansFromDag(begin, end, choice)
}

// calcDP runs the maximum-probability dynamic program backward over
// dags (one entry per absolute rune position in [begin, begin+len(dags))),
// returning each position's best total weight and chosen edge,
// matching MPSegment::CalcDP.
func calcDP(dags []dict.Dag, begin int, minWeight float64) ([]float64, []dict.Edge, error) {
	n := len(dags)
	weight := make([]float64, n)
	choice := make([]dict.Edge, n)
	for i := n - 1; i >= 0; i-- {
		edges := dags[i]
		if len(edges) == 0 {
			return nil, nil, errors.Wrap(errs.ErrInvalidInput, "dag position has no edges")
		}
		best := dict.MinLogProb
		var bestEdge dict.Edge
		for _, e := range edges {
			val := 0.0
			rel := e.Next - begin
			if rel < n {
				val += weight[rel]
			}
			if e.Unit != nil {
				val += e.Unit.Weight
			} else {
				val += minWeight
			}
			if val > best {
				best = val
				bestEdge = e
			}
		}
		weight[i] = best
		choice[i] = bestEdge
	}
	return weight, choice, nil
}

// spansFromDag walks choice from begin, emitting one span per chosen
// edge, matching MPSegment::CutByDag.
func spansFromDag(begin, end int, choice []dict.Edge) ([]wordSpan, error) {
	var spans []wordSpan
	i := begin
	for i < end {
		edge := choice[i-begin]
		if edge.Next <= i {
			return nil, errors.Wrapf(errs.ErrInternal, "dag position %d chose non-advancing edge to %d", i, edge.Next)
		}
		spans = append(spans, wordSpan{Begin: i, End: edge.Next})
		i = edge.Next
	}
	return spans, nil
}
