package extract

import (
	"strings"
	"testing"

	"github.com/oceanbase/jieba-go/internal/dict"
	"github.com/oceanbase/jieba-go/internal/hmm"
	"github.com/oceanbase/jieba-go/internal/segment"
)

const testDict = `的 1000000 uj
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
自然语言 120 n
自然 300 n
语言 500 n
处理 400 v
`

const testHMM = `-0.26268660809250016 -3.14e+100 -3.14e+100 -1.4652633398537678
-3.14e+100 -0.51082562376599 -0.916290731874155 -3.14e+100
-0.5897149736854513 -3.14e+100 -3.14e+100 -0.8085250474669937
-3.14e+100 -0.33344856811948514 -1.2603623820268226 -3.14e+100
-0.7211965654669841 -3.14e+100 -3.14e+100 -0.6658631448798212
杭:-0.1
研:-0.1
占:-5.0
占:-5.0
`

const testIdf = `的 1.5
我 2.0
来到 8.0
北京 9.0
清华大学 12.0
网易 10.0
大厦 6.0
自然语言 15.0
自然 5.0
语言 5.0
处理 7.0
`

const testStopWords = `的
了
和
`

func newTestMix(t *testing.T) *segment.Mix {
	t.Helper()
	d := dict.New(nil)
	if err := d.LoadBase(strings.NewReader(testDict)); err != nil {
		t.Fatalf("LoadBase: %v", err)
	}
	m, err := hmm.LoadModel(strings.NewReader(testHMM), nil)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	mix, err := segment.NewMix(d, m)
	if err != nil {
		t.Fatalf("NewMix: %v", err)
	}
	return mix
}
