package jieba

import "github.com/oceanbase/jieba-go/internal/errs"

// Sentinel errors a caller can classify with errors.Is, re-exported
// from internal/errs so the facade is the only import boundary a
// consumer needs.
var (
	ErrInvalidInput   = errs.ErrInvalidInput
	ErrNotInitialized = errs.ErrNotInitialized
	ErrNotSupported   = errs.ErrNotSupported
	ErrOutOfMemory    = errs.ErrOutOfMemory
	ErrInternal       = errs.ErrInternal
	ErrIterEnd        = errs.ErrIterEnd
)
