package segment

import (
	"github.com/pkg/errors"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// DefaultSeparators are the runes a PreFilter splits on when no custom
// set has been configured: space, tab, newline, and the full-width
// comma and period.
const DefaultSeparators = " \t\n，。"

// PreFilter walks a decoded sentence and yields runs of text broken at
// any rune in its separator set, so each run can be segmented
// independently. A run that is itself a single separator rune is
// yielded on its own.
type PreFilter struct {
	runes   []dict.Rune
	cursor  int
	symbols map[rune]struct{}
}

// Range is a half-open span of rune indices into the PreFilter's
// decoded sentence.
type Range struct {
	Begin int
	End   int
}

// NewPreFilter decodes sentence and prepares it for iteration, split on
// any rune present in symbols.
func NewPreFilter(symbols map[rune]struct{}, sentence string) (*PreFilter, []dict.Rune, error) {
	runes, err := dict.Decode(sentence)
	if err != nil {
		return nil, nil, errors.Wrap(err, "pre filter")
	}
	if symbols == nil {
		return nil, nil, errors.Wrap(errs.ErrInvalidInput, "pre filter: symbols is nil")
	}
	return &PreFilter{runes: runes, symbols: symbols}, runes, nil
}

// HasNext reports whether there is another range to yield.
func (p *PreFilter) HasNext() bool {
	return p.cursor != len(p.runes)
}

// Next returns the next run of text, advancing past any leading
// separator it was stopped on.
func (p *PreFilter) Next() Range {
	begin := p.cursor
	for p.cursor != len(p.runes) {
		if _, isSep := p.symbols[p.runes[p.cursor].Value]; isSep {
			if begin == p.cursor {
				p.cursor++
			}
			return Range{Begin: begin, End: p.cursor}
		}
		p.cursor++
	}
	return Range{Begin: begin, End: len(p.runes)}
}

// Symbols builds the separator set ResetSeparators expects from a raw
// string of separator runes, rejecting duplicates the way
// SegmentBase::ResetSeparators does.
func Symbols(separators string) (map[rune]struct{}, error) {
	runes, err := dict.Decode(separators)
	if err != nil {
		return nil, errors.Wrap(err, "decode separators")
	}
	symbols := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, exists := symbols[r.Value]; exists {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "separator %q already exists", string(r.Value))
		}
		symbols[r.Value] = struct{}{}
	}
	return symbols, nil
}
