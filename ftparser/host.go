// Package ftparser declares the Go-shaped contract a database
// full-text-parser host would drive, as a same-process analogue of
// ob_jieba_ftparser.cpp's five plugin callbacks. It is interface-only:
// the actual plugin glue (memory management across a C ABI boundary,
// ObPlugin* parameter marshalling) is out of scope, but Session shows
// how a host wires a *jieba.Jieba into the five-callback shape.
package ftparser

// AddWordFlags mirrors OBP_FTPARSER_AWF_*: bits a host OR's together to
// describe how the host should treat each token.
type AddWordFlags uint64

const (
	// AWFStopWord marks that NextToken filters stop words out: they are
	// skipped and never returned to the host.
	AWFStopWord AddWordFlags = 1 << iota
	// AWFCaseDown marks that NextToken case-folds tokens before
	// returning them.
	AWFCaseDown
	// AWFGroupByWord marks that tokens are already word-segmented,
	// as opposed to n-gram or whitespace split.
	AWFGroupByWord
)

// Host is the five-callback lifecycle a full-text-parser plugin
// implements, matching ftparser_init/_scan_begin/_next_token/_scan_end/
// _deinit.
type Host interface {
	// Init prepares shared, long-lived state (the dictionary and HMM
	// model). Called once per plugin load.
	Init() error
	// Deinit releases what Init acquired. Called once at plugin unload.
	Deinit() error
	// ScanBegin segments sentence and prepares it to be walked token by
	// token via NextToken. Called once per indexed document.
	ScanBegin(sentence string) error
	// NextToken returns the next token, its rune count, and a
	// synthetic frequency (always 1, per the original's word_freq=1).
	// Returns errs.ErrIterEnd once exhausted.
	NextToken() (word string, runeCount int, freq int, err error)
	// ScanEnd releases the per-document state ScanBegin allocated.
	ScanEnd() error
	// AddWordFlags reports which of AWFStopWord/AWFCaseDown/
	// AWFGroupByWord this host applies to tokens.
	AddWordFlags() AddWordFlags
	// IsCharsetSupported reports whether charset can be parsed. Only
	// UTF-8 charset names ("utf8mb4", "utf8", "UTF-8", "UTF8") are
	// supported.
	IsCharsetSupported(charset string) bool
}
