package jieba

import (
	"io"

	"go.uber.org/zap"

	"github.com/oceanbase/jieba-go/internal/dict"
)

type options struct {
	log          *zap.Logger
	weightPolicy dict.WeightPolicy
	separators   string
	idf          io.Reader
	stopWords    io.Reader
}

// Option configures a Jieba instance at construction time.
type Option func(*options)

// WithLogger sets the zap logger used for warnings raised while
// loading dictionaries and models. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithUserDictWeightPolicy selects which base-dictionary statistic
// (min/median/max) backs the default weight of a user word inserted
// without an explicit frequency. Defaults to WeightMedian.
func WithUserDictWeightPolicy(p dict.WeightPolicy) Option {
	return func(o *options) { o.weightPolicy = p }
}

// WithSeparators overrides the default separator rune set applied to
// every strategy at construction time.
func WithSeparators(separators string) Option {
	return func(o *options) { o.separators = separators }
}

// WithKeywordExtraction wires an idf weight table and a stop-word list
// into Jieba, enabling Keywords and IsStopWord. Mirrors the original
// plugin host's Init(..., idf_stream, stop_word_stream) signature.
func WithKeywordExtraction(idf, stopWords io.Reader) Option {
	return func(o *options) { o.idf, o.stopWords = idf, stopWords }
}

func newOptions(opts ...Option) *options {
	o := &options{
		log:          zap.NewNop(),
		weightPolicy: dict.WeightMedian,
		separators:   "",
	}
	for _, apply := range opts {
		apply(o)
	}
	return o
}
