// Package extract implements TF-IDF and TextRank keyword extraction
// on top of the Mix segmentation strategy.
package extract

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/oceanbase/jieba-go/internal/errs"
	"github.com/oceanbase/jieba-go/internal/segment"
)

// Keyword is one ranked result: the word, its byte offsets of
// occurrence within the source sentence, and its weight (TF*IDF for
// TFIDF, the rescaled rank score for TextRank).
type Keyword struct {
	Word    string
	Offsets []int
	Weight  float64
}

// TFIDF ranks words by term-frequency times inverse-document-frequency,
// matching KeywordExtractor.
type TFIDF struct {
	strategy   segment.Strategy
	idf        map[string]float64
	idfAverage float64
	stopWords  map[string]struct{}
}

// NewTFIDF builds a TF-IDF extractor over strategy (ordinarily a
// *segment.Mix), loading an idf weight table from idf and a stop-word
// list from stopWords. A malformed idf line is logged and skipped
// rather than aborting the load, since the idf table is extractor-only,
// not core segmentation; log may be nil.
func NewTFIDF(strategy segment.Strategy, idf, stopWords io.Reader, log *zap.Logger) (*TFIDF, error) {
	if log == nil {
		log = zap.NewNop()
	}
	idfMap, idfAverage, err := loadIdf(idf, log)
	if err != nil {
		return nil, err
	}
	stop, err := loadStopWords(stopWords)
	if err != nil {
		return nil, err
	}
	return &TFIDF{strategy: strategy, idf: idfMap, idfAverage: idfAverage, stopWords: stop}, nil
}

// Extract cuts sentence, scores every non-stop, non-single-rune word
// by term-frequency times idf (or the idf average for an
// out-of-vocabulary word), and returns the topN highest-weighted,
// matching KeywordExtractor::Extract.
func (t *TFIDF) Extract(sentence string, topN int) ([]Keyword, error) {
	words, err := t.strategy.Cut(sentence)
	if err != nil {
		return nil, err
	}

	index := make(map[string]*Keyword)
	var order []string
	offset := 0
	for _, w := range words {
		at := offset
		offset += len(w.Text)
		if isSingleRune(w.Text) || isStopWord(t.stopWords, w.Text) {
			continue
		}
		kw, ok := index[w.Text]
		if !ok {
			kw = &Keyword{Word: w.Text}
			index[w.Text] = kw
			order = append(order, w.Text)
		}
		kw.Offsets = append(kw.Offsets, at)
		kw.Weight++
	}
	if offset != len(sentence) {
		return nil, errors.Wrap(errs.ErrInternal, "tfidf: cut words did not cover the whole sentence")
	}

	keywords := make([]Keyword, 0, len(order))
	for _, w := range order {
		kw := index[w]
		if idf, ok := t.idf[w]; ok {
			kw.Weight *= idf
		} else {
			kw.Weight *= t.idfAverage
		}
		keywords = append(keywords, *kw)
	}
	sort.SliceStable(keywords, func(i, j int) bool { return keywords[i].Weight > keywords[j].Weight })
	if topN < len(keywords) {
		keywords = keywords[:topN]
	}
	return keywords, nil
}

// IsStopWord reports whether word is in t's stop-word list.
func (t *TFIDF) IsStopWord(word string) bool {
	return isStopWord(t.stopWords, word)
}

func isSingleRune(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	return r != utf8.RuneError && size == len(word)
}

func isStopWord(stopWords map[string]struct{}, word string) bool {
	_, ok := stopWords[word]
	return ok
}

// loadIdf parses the two-column "word idf" format, skipping blank and
// malformed lines, matching KeywordExtractor::LoadIdfDict.
func loadIdf(r io.Reader, log *zap.Logger) (map[string]float64, float64, error) {
	scanner := bufio.NewScanner(r)
	idf := make(map[string]float64)
	var sum float64
	var n int
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Warn("skipping malformed idf line", zap.Int("line", lineno), zap.String("text", line))
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			log.Warn("skipping malformed idf line", zap.Int("line", lineno), zap.String("text", line))
			continue
		}
		idf[fields[0]] = v
		sum += v
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "scanning idf dictionary")
	}
	if n == 0 {
		return nil, 0, errors.Wrap(errs.ErrInvalidInput, "idf dictionary is empty")
	}
	average := sum / float64(n)
	if average <= 0 {
		return nil, 0, errors.Wrap(errs.ErrInvalidInput, "idf average is non-positive")
	}
	return idf, average, nil
}

// loadStopWords parses one stop word per line, matching
// KeywordExtractor::LoadStopWordDict.
func loadStopWords(r io.Reader) (map[string]struct{}, error) {
	scanner := bufio.NewScanner(r)
	stop := make(map[string]struct{})
	for scanner.Scan() {
		stop[scanner.Text()] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning stop word dictionary")
	}
	if len(stop) == 0 {
		return nil, errors.Wrap(errs.ErrInvalidInput, "stop word dictionary is empty")
	}
	return stop, nil
}
