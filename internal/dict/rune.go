package dict

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/oceanbase/jieba-go/internal/errs"
)

// Rune is a Unicode codepoint paired with its byte position in the
// original UTF-8 input, mirroring cppjieba's RuneStr (Unicode.hpp).
type Rune struct {
	Value      rune
	ByteOffset int
	ByteLength int
}

// Decode decodes s into a sequence of Runes, one per codepoint, recording
// each codepoint's byte offset and length in s. It fails with
// errs.ErrInvalidInput on malformed UTF-8 — no replacement characters are
// ever inserted, matching DecodeUTF8RunesInString's all-or-nothing
// contract in the original.
func Decode(s string) ([]Rune, error) {
	out := make([]Rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "malformed UTF-8 at byte offset %d", i)
		}
		out = append(out, Rune{Value: r, ByteOffset: i, ByteLength: size})
		i += size
	}
	return out, nil
}

// Slice reconstructs the UTF-8 substring spanned by runes[left:right]
// by slicing the original buffer with stored byte offsets — never by
// re-encoding codepoints. right is exclusive, matching every caller's
// DAG/span convention.
func Slice(src string, runes []Rune, left, right int) string {
	start := runes[left].ByteOffset
	end := runes[right-1].ByteOffset + runes[right-1].ByteLength
	return src[start:end]
}
