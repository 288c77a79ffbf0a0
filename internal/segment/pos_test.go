package segment

import "testing"

func TestLookupTagReturnsDictionaryTag(t *testing.T) {
	d := newSampleDict(t)
	if got := LookupTag(d, "北京"); got != "ns" {
		t.Fatalf("LookupTag(北京) = %q, want ns", got)
	}
}

func TestLookupTagClassifiesAllDigits(t *testing.T) {
	d := newSampleDict(t)
	if got := LookupTag(d, "123"); got != PosM {
		t.Fatalf("LookupTag(123) = %q, want %q", got, PosM)
	}
}

func TestLookupTagClassifiesLetters(t *testing.T) {
	d := newSampleDict(t)
	if got := LookupTag(d, "iphone5"); got != PosEng {
		t.Fatalf("LookupTag(iphone5) = %q, want %q", got, PosEng)
	}
}

func TestLookupTagClassifiesNoASCIIAsX(t *testing.T) {
	d := newSampleDict(t)
	if got := LookupTag(d, "杭研"); got != PosX {
		t.Fatalf("LookupTag(杭研) = %q, want %q", got, PosX)
	}
}

func TestTagAssignsTagToEveryWord(t *testing.T) {
	d := newSampleDict(t)
	mp, err := NewMP(d)
	if err != nil {
		t.Fatalf("NewMP: %v", err)
	}
	words, err := Tag(d, mp, "我来到北京清华大学")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	for _, w := range words {
		if w.Tag == "" {
			t.Fatalf("word %q has no tag", w.Text)
		}
	}
}
