package segment

import (
	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/hmm"
)

// HMMSeg segments text using only the hidden Markov model: ASCII runs
// are split off by the sequential-letter and digit-run rules below,
// and every other run is decoded by Viterbi state sequence.
type HMMSeg struct {
	model   *hmm.Model
	symbols map[rune]struct{}
}

// NewHMMSeg builds an HMM-only segmenter over model, splitting on the
// default separator set.
func NewHMMSeg(model *hmm.Model) (*HMMSeg, error) {
	symbols, err := Symbols(DefaultSeparators)
	if err != nil {
		return nil, err
	}
	return &HMMSeg{model: model, symbols: symbols}, nil
}

// ResetSeparators replaces the rune set HMMSeg's PreFilter splits on.
func (s *HMMSeg) ResetSeparators(separators string) error {
	symbols, err := Symbols(separators)
	if err != nil {
		return err
	}
	s.symbols = symbols
	return nil
}

// Cut implements Strategy.
func (s *HMMSeg) Cut(text string) ([]Word, error) {
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

// cutRange mirrors HMMSegment::Cut(begin, end, res): ASCII runs are
// peeled off by SequentialLetterRule/NumbersRule (falling back to one
// rune at a time), and the non-ASCII spans between them are decoded by
// Viterbi.
func (s *HMMSeg) cutRange(text string, runes []dict.Rune, begin, end int) ([]Word, error) {
	var words []Word
	left, right := begin, begin
	for right != end {
		if runes[right].Value < 0x80 {
			if left != right {
				cut, err := s.internalCut(text, runes, left, right)
				if err != nil {
					return nil, err
				}
				words = append(words, cut...)
			}
			left = right
			right = sequentialLetterRule(runes, left, end)
			if right == left {
				right = numbersRule(runes, left, end)
			}
			if right == left {
				right++
			}
			words = append(words, Word{Text: dict.Slice(text, runes, left, right)})
			left = right
		} else {
			right++
		}
	}
	if left != right {
		cut, err := s.internalCut(text, runes, left, right)
		if err != nil {
			return nil, err
		}
		words = append(words, cut...)
	}
	return words, nil
}

func sequentialLetterRule(runes []dict.Rune, begin, end int) int {
	if begin >= end {
		return begin
	}
	x := runes[begin].Value
	if !(('a' <= x && x <= 'z') || ('A' <= x && x <= 'Z')) {
		return begin
	}
	i := begin + 1
	for i < end {
		x = runes[i].Value
		if ('a' <= x && x <= 'z') || ('A' <= x && x <= 'Z') || ('0' <= x && x <= '9') {
			i++
		} else {
			break
		}
	}
	return i
}

func numbersRule(runes []dict.Rune, begin, end int) int {
	if begin >= end {
		return begin
	}
	x := runes[begin].Value
	if !('0' <= x && x <= '9') {
		return begin
	}
	i := begin + 1
	for i < end {
		x = runes[i].Value
		if ('0' <= x && x <= '9') || x == '.' {
			i++
		} else {
			break
		}
	}
	return i
}

// internalCut decodes [begin, end) with Viterbi and splits it at every
// E/S state, matching HMMSegment::InternalCut.
func (s *HMMSeg) internalCut(text string, runes []dict.Rune, begin, end int) ([]Word, error) {
	values := make([]rune, end-begin)
	for i := begin; i < end; i++ {
		values[i-begin] = runes[i].Value
	}
	states := s.model.Viterbi(values)

	var words []Word
	left := begin
	for i, st := range states {
		if st == hmm.StateE || st == hmm.StateS {
			right := begin + i + 1
			words = append(words, Word{Text: dict.Slice(text, runes, left, right)})
			left = right
		}
	}
	return words, nil
}
