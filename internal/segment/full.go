package segment

import (
	"github.com/pkg/errors"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// Full enumerates every dictionary match in the text, not just the
// maximum-probability path, matching FullSegment.
type Full struct {
	dict    *dict.Dictionary
	symbols map[rune]struct{}
}

// NewFull builds a Full segmenter over d, splitting on the default
// separator set.
func NewFull(d *dict.Dictionary) (*Full, error) {
	symbols, err := Symbols(DefaultSeparators)
	if err != nil {
		return nil, err
	}
	return &Full{dict: d, symbols: symbols}, nil
}

// ResetSeparators replaces the rune set Full's PreFilter splits on.
func (s *Full) ResetSeparators(separators string) error {
	symbols, err := Symbols(separators)
	if err != nil {
		return err
	}
	s.symbols = symbols
	return nil
}

// Cut implements Strategy.
func (s *Full) Cut(text string) ([]Word, error) {
	filter, runes, err := NewPreFilter(s.symbols, text)
	if err != nil {
		return nil, err
	}
	var words []Word
	for filter.HasNext() {
		r := filter.Next()
		cut, err := s.cutRange(text, runes, r.Begin, r.End)
		if err != nil {
			return nil, err
		}
		words = append(words, cut...)
	}
	return words, nil
}

// cutRange emits every dictionary match starting at each position in
// [begin, end), plus the implicit single-rune match where it is the
// only option and nothing longer already covers it, matching
// FullSegment::Cut.
func (s *Full) cutRange(text string, runes []dict.Rune, begin, end int) ([]Word, error) {
	if begin >= end {
		return nil, nil
	}
	dags := s.dict.Trie().FindPrefixes(runes, begin, end, MaxWordLength)

	var words []Word
	maxIdx := 0
	for i, dag := range dags {
		if len(dag) == 0 {
			return nil, errors.Wrap(errs.ErrInvalidInput, "dag position has no edges")
		}
		uIdx := i
		for _, edge := range dag {
			rel := edge.Next - begin
			if rel > len(dags) {
				return nil, errors.Wrapf(errs.ErrInternal, "dag edge %d exceeds range", edge.Next)
			}
			wordLen := 0
			if edge.Unit != nil {
				wordLen = len(edge.Unit.Word)
			}
			isOnlyOption := len(dag) == 1 && maxIdx <= uIdx
			if wordLen >= 2 || isOnlyOption {
				words = append(words, Word{Text: dict.Slice(text, runes, begin+i, edge.Next)})
			}
			if uIdx+wordLen > maxIdx {
				maxIdx = uIdx + wordLen
			}
		}
	}
	return words, nil
}
