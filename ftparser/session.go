package ftparser

import (
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/cases"

	"github.com/oceanbase/jieba-go/internal/errs"
	"github.com/oceanbase/jieba-go/jieba"
)

// Session adapts a *jieba.Jieba into the Host lifecycle, the way
// ob_jieba_ftparser.cpp's JiebaFtparserContext adapts a cppjieba Jieba
// instance. One Session is built per plugin load and reused across
// ScanBegin/NextToken/ScanEnd document cycles; it is not safe for
// concurrent use by multiple documents at once, matching the single
// ObPluginFTParserParam cursor the original context struct tracks.
type Session struct {
	jieba *jieba.Jieba
	fold  cases.Caser

	words []string
	index int
	begun bool
}

// NewSession builds a Session over an already-constructed Jieba
// instance. Init/Deinit in the original own the dictionary/model
// lifetime; here that lifetime is the caller's, since *jieba.Jieba has
// no process-wide global state to tear down.
func NewSession(j *jieba.Jieba) *Session {
	return &Session{jieba: j, fold: cases.Fold(), index: -1}
}

// Init is a no-op: the underlying Jieba is constructed by the caller
// and passed to NewSession already initialized.
func (s *Session) Init() error { return nil }

// Deinit is a no-op for the same reason Init is.
func (s *Session) Deinit() error { return nil }

// ScanBegin segments sentence with HMM recovery enabled, matching
// ftparser_scan_begin's jieba->Cut(sentence, context->words) call.
func (s *Session) ScanBegin(sentence string) error {
	words, err := s.jieba.Cut(sentence, true)
	if err != nil {
		return pkgerrors.Wrap(err, "ftparser: scan begin")
	}
	s.words = words
	s.index = -1
	s.begun = true
	return nil
}

// NextToken returns the next non-stop-word token, case-folded, its
// rune count, and a synthetic frequency of 1. It returns
// errs.ErrIterEnd once the document's tokens are exhausted, matching
// ftparser_next_token's OBP_ITER_END return.
func (s *Session) NextToken() (string, int, int, error) {
	if !s.begun {
		return "", 0, 0, pkgerrors.Wrap(errs.ErrNotInitialized, "ftparser: ScanBegin not called")
	}
	for {
		s.index++
		if s.index >= len(s.words) {
			return "", 0, 0, errs.ErrIterEnd
		}
		word := s.fold.String(s.words[s.index])
		if s.jieba.IsStopWord(word) {
			continue
		}
		return word, utf8.RuneCountInString(word), 1, nil
	}
}

// ScanEnd releases the current document's token buffer.
func (s *Session) ScanEnd() error {
	s.words = nil
	s.index = -1
	s.begun = false
	return nil
}

// AddWordFlags reports stop-word filtering, case-folding, and
// group-by-word behavior, matching ftparser_get_add_word_flag's fixed
// OBP_FTPARSER_AWF_STOPWORD|AWF_CASEDOWN|AWF_GROUPBY_WORD result.
func (s *Session) AddWordFlags() AddWordFlags {
	return AWFStopWord | AWFCaseDown | AWFGroupByWord
}

// IsCharsetSupported reports whether charset is UTF-8, the only
// charset this parser (and the segmentation beneath it) understands.
func (s *Session) IsCharsetSupported(charset string) bool {
	switch charset {
	case "utf8mb4", "utf8", "UTF-8", "UTF8":
		return true
	default:
		return false
	}
}

var _ Host = (*Session)(nil)
