package segment

import (
	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/hmm"
)

// Mix layers HMM recovery onto MP: MP's dictionary path is kept
// wherever it found a real word (or a single rune the user dictionary
// names explicitly); consecutive single-rune gaps are handed to the
// HMM segmenter instead of being emitted as isolated unknown
// characters.
type Mix struct {
	mp  *MP
	hmm *HMMSeg
	d   *dict.Dictionary
}

// NewMix builds a Mix segmenter over d and model.
func NewMix(d *dict.Dictionary, model *hmm.Model) (*Mix, error) {
	mp, err := NewMP(d)
	if err != nil {
		return nil, err
	}
	h, err := NewHMMSeg(model)
	if err != nil {
		return nil, err
	}
	return &Mix{mp: mp, hmm: h, d: d}, nil
}

// ResetSeparators replaces the rune set Mix's PreFilter splits on.
func (s *Mix) ResetSeparators(separators string) error {
	symbols, err := Symbols(separators)
	if err != nil {
		return err
	}
	s.mp.symbols = symbols
	s.hmm.symbols = symbols
	return nil
}

// Cut implements Strategy with HMM recovery enabled.
func (s *Mix) Cut(text string) ([]Word, error) {
	return s.CutHMM(text, true)
}

// CutHMM cuts text, optionally disabling HMM recovery (falling back to
// plain MP segmentation with unknown runes left uncombined).
func (s *Mix) CutHMM(text string, hmm bool) ([]Word, error) {
	filter, runes, err := NewPreFilter(s.mp.symbols, text)
	if err != nil {
		return nil, err
	}
	var words []Word
	for filter.HasNext() {
		r := filter.Next()
		cut, err := s.cutRange(text, runes, r.Begin, r.End, hmm)
		if err != nil {
			return nil, err
		}
		words = append(words, cut...)
	}
	return words, nil
}

func (s *Mix) cutRange(text string, runes []dict.Rune, begin, end int, hmm bool) ([]Word, error) {
	spans, err := s.mp.spans(runes, begin, end, s.mp.maxWordLen)
	if err != nil {
		return nil, err
	}
	if !hmm {
		words := make([]Word, len(spans))
		for i, sp := range spans {
			words[i] = Word{Text: dict.Slice(text, runes, sp.Begin, sp.End)}
		}
		return words, nil
	}

	var words []Word
	i := 0
	for i < len(spans) {
		sp := spans[i]
		isSingleRune := sp.End-sp.Begin == 1
		if !isSingleRune || s.d.IsUserSingleRune(runes[sp.Begin].Value) {
			words = append(words, Word{Text: dict.Slice(text, runes, sp.Begin, sp.End)})
			i++
			continue
		}

		j := i
		for j < len(spans) && spans[j].End-spans[j].Begin == 1 && !s.d.IsUserSingleRune(runes[spans[j].Begin].Value) {
			j++
		}
		gap, err := s.hmm.cutRange(text, runes, spans[i].Begin, spans[j-1].End)
		if err != nil {
			return nil, err
		}
		words = append(words, gap...)
		i = j
	}
	return words, nil
}
