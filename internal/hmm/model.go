// Package hmm implements the four-state (B, E, M, S) hidden Markov model
// used to recover word boundaries in spans the dictionary trie has no
// coverage for, decoded with the Viterbi algorithm.
package hmm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// State indices, matching cppjieba's HMMModel::{B,E,M,S}.
const (
	StateB = iota
	StateE
	StateM
	StateS
	stateCount = 4
)

// MinLogProb is the sentinel used for an unseen emission, never
// math.Inf, so summed log-probabilities can never produce NaN.
const MinLogProb = dict.MinLogProb

// Model holds start/transition/emission log-probabilities for the four
// HMM states.
type Model struct {
	Start [stateCount]float64
	Trans [stateCount][stateCount]float64
	Emit  [stateCount]map[rune]float64
}

// LoadModel parses the 9-line text model format: a start-probability line,
// four transition-probability lines, and four emission lines (one per
// state, in B,E,M,S order), skipping blank and '#'-prefixed lines exactly
// as HMMModel::GetLine does.
func LoadModel(r io.Reader, log *zap.Logger) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	lines := newLineReader(r)

	start, err := lines.floats(stateCount)
	if err != nil {
		return nil, errors.Wrap(err, "reading start probabilities")
	}

	m := &Model{}
	copy(m.Start[:], start)

	for i := 0; i < stateCount; i++ {
		row, err := lines.floats(stateCount)
		if err != nil {
			return nil, errors.Wrapf(err, "reading transition row %d", i)
		}
		copy(m.Trans[i][:], row)
	}

	for s := 0; s < stateCount; s++ {
		line, ok := lines.next()
		if !ok {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "missing emission line for state %d", s)
		}
		emit, err := parseEmitProb(line)
		if err != nil {
			log.Warn("failed to parse emission probabilities", zap.Int("state", s), zap.Error(err))
			return nil, errors.Wrapf(err, "emission line for state %d", s)
		}
		m.Emit[s] = emit
	}

	log.Info("loaded HMM model")
	return m, nil
}

func parseEmitProb(line string) (map[rune]float64, error) {
	if line == "" {
		return nil, errors.Wrap(errs.ErrInvalidInput, "empty emission line")
	}
	entries := strings.Split(line, ",")
	emit := make(map[rune]float64, len(entries))
	for _, e := range entries {
		kv := strings.SplitN(e, ":", 2)
		if len(kv) != 2 {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "malformed emission entry %q", e)
		}
		runes := []rune(kv[0])
		if len(runes) != 1 {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "emission key %q is not a single codepoint", kv[0])
		}
		prob, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "emission value %q", kv[1])
		}
		emit[runes[0]] = prob
	}
	return emit, nil
}

// EmitProb returns the log-probability of rune r under state s, or
// MinLogProb if r was never observed emitting from s.
func (m *Model) EmitProb(s int, r rune) float64 {
	if p, ok := m.Emit[s][r]; ok {
		return p
	}
	return MinLogProb
}

// lineReader yields non-blank, non-comment lines, matching
// HMMModel::GetLine's Trim + skip-blank + skip-'#' behavior.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

func (l *lineReader) next() (string, bool) {
	for l.scanner.Scan() {
		line := strings.TrimSpace(l.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

func (l *lineReader) floats(n int) ([]float64, error) {
	line, ok := l.next()
	if !ok {
		return nil, errors.Wrap(errs.ErrInvalidInput, "unexpected end of model file")
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, errors.Wrapf(errs.ErrInvalidInput, "expected %d fields, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrInvalidInput, "invalid float %q", f)
		}
		out[i] = v
	}
	return out, nil
}
