package jieba

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/oceanbase/jieba-go/internal/dict"
)

const testBaseDict = `的 1000000 uj
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

func newTestJieba(t *testing.T) *Jieba {
	t.Helper()
	j, err := New(strings.NewReader(testBaseDict), strings.NewReader(testHMM))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return j
}

func TestCutUsesMixStrategy(t *testing.T) {
	j := newTestJieba(t)
	got, err := j.Cut("他来到了网易杭研大厦", true)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	want := []string{"他", "来到", "了", "网易", "杭研", "大厦"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cut = %v, want %v", got, want)
	}
}

func TestCutAllUsesFullStrategy(t *testing.T) {
	j := newTestJieba(t)
	got, err := j.CutAll("清华大学")
	if err != nil {
		t.Fatalf("CutAll: %v", err)
	}
	want := []string{"清华", "清华大学", "大学"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CutAll = %v, want %v", got, want)
	}
}

func TestInsertFindDeleteUserWord(t *testing.T) {
	j := newTestJieba(t)
	if j.Find("自定义词") {
		t.Fatal("word should not exist yet")
	}
	if err := j.InsertUserWord("自定义词", 0, "n"); err != nil {
		t.Fatalf("InsertUserWord: %v", err)
	}
	if !j.Find("自定义词") {
		t.Fatal("expected word to be found after insert")
	}
	if err := j.DeleteUserWord("自定义词"); err != nil {
		t.Fatalf("DeleteUserWord: %v", err)
	}
	if j.Find("自定义词") {
		t.Fatal("expected word to be gone after delete")
	}
}

func TestTagAssignsDictionaryTag(t *testing.T) {
	j := newTestJieba(t)
	words, err := j.Tag("北京")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(words) != 1 || words[0].Tag != "ns" {
		t.Fatalf("Tag(北京) = %+v, want tag ns", words)
	}
}

func TestResetSeparatorsAppliesToCut(t *testing.T) {
	j := newTestJieba(t)
	if err := j.ResetSeparators("|"); err != nil {
		t.Fatalf("ResetSeparators: %v", err)
	}
	got, err := j.Cut("我|来到", true)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	want := []string{"我", "|", "来到"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cut after ResetSeparators = %v, want %v", got, want)
	}
}

func TestLoadBaseErrorClassifiesAsInvalidInput(t *testing.T) {
	_, err := New(strings.NewReader("bad line\n"), strings.NewReader(testHMM))
	if err == nil {
		t.Fatal("expected error for malformed base dictionary")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error %v does not classify as ErrInvalidInput", err)
	}
}

func TestCutSmallCapsWordLength(t *testing.T) {
	j := newTestJieba(t)
	got, err := j.CutSmall("清华大学", 2)
	if err != nil {
		t.Fatalf("CutSmall: %v", err)
	}
	want := []string{"清华", "大学"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CutSmall = %v, want %v", got, want)
	}
}

func TestKeywordsRequiresWithKeywordExtraction(t *testing.T) {
	j := newTestJieba(t)
	if _, err := j.Keywords("网易杭研大厦", 3); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Keywords error = %v, want ErrNotInitialized", err)
	}
	if j.IsStopWord("了") {
		t.Fatal("IsStopWord should report false without WithKeywordExtraction")
	}
}

func TestWithKeywordExtraction(t *testing.T) {
	const idf = "网易 10.0\n杭研 9.0\n大厦 6.0\n"
	const stopWords = "的\n了\n"
	j, err := New(strings.NewReader(testBaseDict), strings.NewReader(testHMM),
		WithKeywordExtraction(strings.NewReader(idf), strings.NewReader(stopWords)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !j.IsStopWord("了") {
		t.Fatal("expected 了 to be a stop word")
	}
	kws, err := j.Keywords("他来到了网易杭研大厦", 1)
	if err != nil {
		t.Fatalf("Keywords: %v", err)
	}
	if len(kws) != 1 || kws[0].Word != "网易" {
		t.Fatalf("Keywords = %+v, want top keyword 网易", kws)
	}
}

func TestWithUserDictWeightPolicy(t *testing.T) {
	j, err := New(strings.NewReader(testBaseDict), strings.NewReader(testHMM), WithUserDictWeightPolicy(dict.WeightMin))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := j.InsertUserWord("未知词", 0, ""); err != nil {
		t.Fatalf("InsertUserWord: %v", err)
	}
	if !j.Find("未知词") {
		t.Fatal("expected word to be found")
	}
}
