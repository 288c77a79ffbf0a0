package ftparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/oceanbase/jieba-go/internal/errs"
	"github.com/oceanbase/jieba-go/jieba"
)

const testBaseDict = `的 1000000 uj
我 50000 r
来到 500 v
来 3000 v
到 2000 v
了 80000 ul
北京 800 ns
网易 200 nz
大厦 100 n
HELLO 50 eng
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

const testIdf = `我 2.0
来到 8.0
北京 9.0
网易 10.0
大厦 6.0
`

const testStopWords = `的
了
`

func newTestSession(t *testing.T) *Session {
	t.Helper()
	j, err := jieba.New(strings.NewReader(testBaseDict), strings.NewReader(testHMM),
		jieba.WithKeywordExtraction(strings.NewReader(testIdf), strings.NewReader(testStopWords)))
	if err != nil {
		t.Fatalf("jieba.New: %v", err)
	}
	return NewSession(j)
}

func TestNextTokenSkipsStopWordsAndFoldsCase(t *testing.T) {
	s := newTestSession(t)
	if err := s.ScanBegin("我来到了网易HELLO大厦"); err != nil {
		t.Fatalf("ScanBegin: %v", err)
	}
	var got []string
	for {
		word, _, freq, err := s.NextToken()
		if errors.Is(err, errs.ErrIterEnd) {
			break
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		if freq != 1 {
			t.Fatalf("NextToken freq = %d, want 1", freq)
		}
		got = append(got, word)
	}
	want := []string{"我", "来到", "网易", "hello", "大厦"}
	if len(got) != len(want) {
		t.Fatalf("NextToken sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NextToken[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNextTokenWithoutScanBeginFails(t *testing.T) {
	s := newTestSession(t)
	if _, _, _, err := s.NextToken(); !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("NextToken error = %v, want ErrNotInitialized", err)
	}
}

func TestScanEndClearsState(t *testing.T) {
	s := newTestSession(t)
	if err := s.ScanBegin("我来到网易"); err != nil {
		t.Fatalf("ScanBegin: %v", err)
	}
	if err := s.ScanEnd(); err != nil {
		t.Fatalf("ScanEnd: %v", err)
	}
	if _, _, _, err := s.NextToken(); !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("NextToken after ScanEnd error = %v, want ErrNotInitialized", err)
	}
}

func TestAddWordFlagsReportsAllThreeBits(t *testing.T) {
	s := newTestSession(t)
	flags := s.AddWordFlags()
	for _, want := range []AddWordFlags{AWFStopWord, AWFCaseDown, AWFGroupByWord} {
		if flags&want == 0 {
			t.Fatalf("AddWordFlags() = %b, missing bit %b", flags, want)
		}
	}
}

func TestIsCharsetSupported(t *testing.T) {
	s := newTestSession(t)
	if !s.IsCharsetSupported("utf8mb4") {
		t.Fatal("expected utf8mb4 to be supported")
	}
	if s.IsCharsetSupported("gbk") {
		t.Fatal("expected gbk to be unsupported")
	}
}
