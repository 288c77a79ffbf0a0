package segment

import (
	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/hmm"
)

// Query layers extra short sub-words onto Mix's output: any Mix word
// of 3+ runes also contributes its 2-rune and 3-rune dictionary
// sub-words, so a search index can match on those fragments too,
// matching QuerySegment.
type Query struct {
	mix  *Mix
	trie *dict.Trie
}

// NewQuery builds a Query segmenter over d and model.
func NewQuery(d *dict.Dictionary, model *hmm.Model) (*Query, error) {
	mix, err := NewMix(d, model)
	if err != nil {
		return nil, err
	}
	return &Query{mix: mix, trie: d.Trie()}, nil
}

// ResetSeparators replaces the rune set Query's PreFilter splits on.
func (s *Query) ResetSeparators(separators string) error {
	return s.mix.ResetSeparators(separators)
}

// Cut implements Strategy with HMM recovery enabled.
func (s *Query) Cut(text string) ([]Word, error) {
	return s.CutHMM(text, true)
}

// CutHMM cuts text, passing hmm through to the underlying Mix pass.
func (s *Query) CutHMM(text string, hmm bool) ([]Word, error) {
	mixWords, err := s.mix.CutHMM(text, hmm)
	if err != nil {
		return nil, err
	}

	var words []Word
	for _, w := range mixWords {
		runes, err := dict.Decode(w.Text)
		if err != nil {
			return nil, err
		}
		if len(runes) > 2 {
			for i := 0; i+1 < len(runes); i++ {
				if s.trie.FindExact(runes, i, i+2) != nil {
					words = append(words, Word{Text: dict.Slice(w.Text, runes, i, i+2)})
				}
			}
		}
		if len(runes) > 3 {
			for i := 0; i+2 < len(runes); i++ {
				if s.trie.FindExact(runes, i, i+3) != nil {
					words = append(words, Word{Text: dict.Slice(w.Text, runes, i, i+3)})
				}
			}
		}
		words = append(words, w)
	}
	return words, nil
}
