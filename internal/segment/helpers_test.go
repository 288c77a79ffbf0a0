package segment

import (
	"strings"
	"testing"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/hmm"
)

// sampleDict deliberately avoids ambiguous overlaps so MP's chosen
// path is easy to predict by hand: 杭 and 研 are absent, so "杭研" is
// always an HMM-recovery case.
const sampleDict = `的 1000000 uj
我 50000 r
来到 500 v
来 3000 v
到 2000 v
了 80000 ul
北京 800 ns
清华 300 ns
清华大学 400 ns
大学 600 n
网易 200 nz
大厦 100 n
`

// sampleHMM is rigged, not trained: 杭 only emits from state B and 研
// only from state E, so Viterbi has exactly one feasible path for the
// pair ("杭研" -> B,E) regardless of the transition weights, making
// the HMM-recovery tests deterministic without needing real model
// probabilities.
const sampleHMM = `-0.26268660809250016 -3.14e+100 -3.14e+100 -1.4652633398537678
-3.14e+100 -0.51082562376599 -0.916290731874155 -3.14e+100
-0.5897149736854513 -3.14e+100 -3.14e+100 -0.8085250474669937
-3.14e+100 -0.33344856811948514 -1.2603623820268226 -3.14e+100
-0.7211965654669841 -3.14e+100 -3.14e+100 -0.6658631448798212
杭:-0.1
研:-0.1
占:-5.0
占:-5.0
`

func newSampleDict(t *testing.T) *dict.Dictionary {
	t.Helper()
	d := dict.New(nil)
	if err := d.LoadBase(strings.NewReader(sampleDict)); err != nil {
		t.Fatalf("LoadBase: %v", err)
	}
	return d
}

func newSampleHMM(t *testing.T) *hmm.Model {
	t.Helper()
	m, err := hmm.LoadModel(strings.NewReader(sampleHMM), nil)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	return m
}

func wordsText(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func joinedText(words []Word) string {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.Text)
	}
	return sb.String()
}
