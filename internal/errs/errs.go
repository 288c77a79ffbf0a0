// Package errs defines the sentinel error kinds shared by every layer of
// the segmentation engine, mirroring the OBP_SUCCESS/OBP_INVALID_ARGUMENT/
// OBP_NOT_INIT/OBP_ALLOCATE_MEMORY_FAILED/OBP_PLUGIN_ERROR/OBP_ITER_END
// status codes returned throughout cppjieba and the oceanbase plugin glue.
//
// Internal packages wrap one of these with github.com/pkg/errors so callers
// can classify a failure with errors.Is while still getting a stack trace
// and a human-readable chain of context.
package errs

import "errors"

var (
	// ErrInvalidInput covers malformed UTF-8, malformed dict/model lines,
	// wrong dictionary column counts, and non-positive frequencies.
	ErrInvalidInput = errors.New("jieba: invalid input")
	// ErrNotInitialized is returned when a segmenter is used before its
	// dictionary or HMM model has been loaded.
	ErrNotInitialized = errors.New("jieba: not initialized")
	// ErrNotSupported is returned when a host requests a charset other
	// than UTF-8.
	ErrNotSupported = errors.New("jieba: not supported")
	// ErrOutOfMemory covers allocation failures during initialization.
	ErrOutOfMemory = errors.New("jieba: out of memory")
	// ErrInternal covers post-condition violations discovered while
	// cutting (a DAG edge pointing past its span, a chosen edge that does
	// not advance). An empty DAG entry is reported as ErrInvalidInput.
	ErrInternal = errors.New("jieba: internal invariant violation")
	// ErrIterEnd is a sentinel, not an error: it signals that a token
	// iterator (ftparser.Session.NextToken) has no more tokens.
	ErrIterEnd = errors.New("jieba: iterator exhausted")
)
