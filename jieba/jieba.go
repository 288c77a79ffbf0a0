// Package jieba wires the dictionary, HMM model, and cut strategies
// into one entry point, mirroring cppjieba's Jieba facade.
package jieba

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
	"github.com/oceanbase/jieba-go/internal/extract"
	"github.com/oceanbase/jieba-go/internal/hmm"
	"github.com/oceanbase/jieba-go/internal/segment"
)

// Jieba is the segmentation entry point: one dictionary and one HMM
// model shared by every cut strategy.
type Jieba struct {
	log   *zap.Logger
	dict  *dict.Dictionary
	model *hmm.Model

	mp     *segment.MP
	hmmSeg *segment.HMMSeg
	mix    *segment.Mix
	full   *segment.Full
	query  *segment.Query

	// extractor is nil unless WithKeywordExtraction was supplied: the
	// idf/stop-word tables are an optional, extractor-only concern.
	extractor *extract.TFIDF
}

// New loads a base dictionary and an HMM model from baseDict and
// model, builds every cut strategy over them, and returns a ready
// Jieba. Readers are consumed in full and not retained.
func New(baseDict, model io.Reader, opts ...Option) (*Jieba, error) {
	o := newOptions(opts...)

	d := dict.New(o.log)
	d.SetWeightPolicy(o.weightPolicy)
	if err := d.LoadBase(baseDict); err != nil {
		return nil, errors.Wrap(err, "jieba: load base dictionary")
	}

	m, err := hmm.LoadModel(model, o.log)
	if err != nil {
		return nil, errors.Wrap(err, "jieba: load HMM model")
	}

	j := &Jieba{log: o.log, dict: d, model: m}
	if err := j.buildStrategies(); err != nil {
		return nil, err
	}
	if o.separators != "" {
		if err := j.ResetSeparators(o.separators); err != nil {
			return nil, errors.Wrap(err, "jieba: reset separators")
		}
	}
	if o.idf != nil && o.stopWords != nil {
		j.extractor, err = extract.NewTFIDF(j.mix, o.idf, o.stopWords, o.log)
		if err != nil {
			return nil, errors.Wrap(err, "jieba: load keyword extractor")
		}
	}
	return j, nil
}

func (j *Jieba) buildStrategies() error {
	var err error
	if j.mp, err = segment.NewMP(j.dict); err != nil {
		return errors.Wrap(err, "jieba: build MP strategy")
	}
	if j.hmmSeg, err = segment.NewHMMSeg(j.model); err != nil {
		return errors.Wrap(err, "jieba: build HMM strategy")
	}
	if j.mix, err = segment.NewMix(j.dict, j.model); err != nil {
		return errors.Wrap(err, "jieba: build Mix strategy")
	}
	if j.full, err = segment.NewFull(j.dict); err != nil {
		return errors.Wrap(err, "jieba: build Full strategy")
	}
	if j.query, err = segment.NewQuery(j.dict, j.model); err != nil {
		return errors.Wrap(err, "jieba: build Query strategy")
	}
	return nil
}

// Cut segments sentence with the Mix strategy, optionally recovering
// unknown words with the HMM model.
func (j *Jieba) Cut(sentence string, hmm bool) ([]string, error) {
	words, err := j.mix.CutHMM(sentence, hmm)
	if err != nil {
		return nil, err
	}
	return texts(words), nil
}

// CutAll enumerates every dictionary match in sentence (FullSegment).
func (j *Jieba) CutAll(sentence string) ([]string, error) {
	words, err := j.full.Cut(sentence)
	if err != nil {
		return nil, err
	}
	return texts(words), nil
}

// CutForSearch segments sentence for search indexing: Mix output plus
// extra short dictionary sub-words.
func (j *Jieba) CutForSearch(sentence string, hmm bool) ([]string, error) {
	words, err := j.query.CutHMM(sentence, hmm)
	if err != nil {
		return nil, err
	}
	return texts(words), nil
}

// CutHMM segments sentence using only the HMM model, bypassing the
// dictionary entirely.
func (j *Jieba) CutHMM(sentence string) ([]string, error) {
	words, err := j.hmmSeg.Cut(sentence)
	if err != nil {
		return nil, err
	}
	return texts(words), nil
}

// CutSmall segments sentence with MP alone, capping dictionary-word
// lookahead at maxWordLen runes.
func (j *Jieba) CutSmall(sentence string, maxWordLen int) ([]string, error) {
	words, err := j.mp.CutMaxLen(sentence, maxWordLen)
	if err != nil {
		return nil, err
	}
	return texts(words), nil
}

// Tag cuts sentence with Mix and assigns a part-of-speech tag to each
// word.
func (j *Jieba) Tag(sentence string) ([]segment.Word, error) {
	return segment.Tag(j.dict, j.mix, sentence)
}

// LookupTag returns word's part-of-speech tag.
func (j *Jieba) LookupTag(word string) string {
	return segment.LookupTag(j.dict, word)
}

// InsertUserWord adds word to the user dictionary. A freq of 0 uses
// the configured default weight policy.
func (j *Jieba) InsertUserWord(word string, freq int, tag string) error {
	return j.dict.InsertUserWord(word, freq, tag)
}

// DeleteUserWord removes word's trie entry.
func (j *Jieba) DeleteUserWord(word string) error {
	return j.dict.DeleteUserWord(word)
}

// Find reports whether word is an exact dictionary entry.
func (j *Jieba) Find(word string) bool {
	return j.dict.Find(word)
}

// LoadUserDict merges every entry in r into the user dictionary.
func (j *Jieba) LoadUserDict(r io.Reader) error {
	return j.dict.LoadUserDict(r)
}

// ResetSeparators replaces the rune set every strategy's PreFilter
// splits on.
func (j *Jieba) ResetSeparators(separators string) error {
	if err := j.mp.ResetSeparators(separators); err != nil {
		return err
	}
	if err := j.hmmSeg.ResetSeparators(separators); err != nil {
		return err
	}
	if err := j.mix.ResetSeparators(separators); err != nil {
		return err
	}
	if err := j.full.ResetSeparators(separators); err != nil {
		return err
	}
	return j.query.ResetSeparators(separators)
}

// Keywords extracts the topN TF-IDF keywords from sentence. It returns
// ErrNotInitialized if Jieba was built without WithKeywordExtraction.
func (j *Jieba) Keywords(sentence string, topN int) ([]extract.Keyword, error) {
	if j.extractor == nil {
		return nil, errors.Wrap(errs.ErrNotInitialized, "jieba: keyword extraction not configured")
	}
	return j.extractor.Extract(sentence, topN)
}

// IsStopWord reports whether word is a stop word, for a full-text host
// that filters tokens before indexing (ob_jieba_ftparser.cpp's
// extractor.IsStopWord call). Returns false if Jieba was built without
// WithKeywordExtraction.
func (j *Jieba) IsStopWord(word string) bool {
	if j.extractor == nil {
		return false
	}
	return j.extractor.IsStopWord(word)
}

func texts(words []segment.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
