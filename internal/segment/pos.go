package segment

import "github.com/oceanbase/jieba-go/internal/dict"

// Part-of-speech tags returned for a word with no dictionary entry
// (or an entry with an empty tag), matching PosTagger's fallback
// constants. specialRule inspects only a prefix of the word, so each
// description refers to the ASCII runes it counted.
const (
	PosM   = "m"   // every counted ASCII rune is a digit
	PosEng = "eng" // a counted ASCII rune is not a digit
	PosX   = "x"   // no ASCII rune was counted
)

// Tag cuts text with strat and assigns each resulting word its
// part-of-speech tag, matching PosTagger::Tag.
func Tag(d *dict.Dictionary, strat Strategy, text string) ([]Word, error) {
	words, err := strat.Cut(text)
	if err != nil {
		return nil, err
	}
	for i := range words {
		words[i].Tag = LookupTag(d, words[i].Text)
	}
	return words, nil
}

// LookupTag returns word's dictionary tag, or a SpecialRule fallback
// for untagged or unknown words, matching PosTagger::LookupTag.
func LookupTag(d *dict.Dictionary, word string) string {
	runes, err := dict.Decode(word)
	if err != nil {
		return PosX
	}
	if unit := d.Trie().FindExact(runes, 0, len(runes)); unit != nil && unit.Tag != "" {
		return unit.Tag
	}
	return specialRule(runes)
}

// specialRule classifies a word with no tagged dictionary entry by its
// ASCII content, matching PosTagger::SpecialRule. Counting stops once
// the ASCII count reaches len(runes)/2, so "1a" tags m and a one-rune
// word always tags x.
func specialRule(runes []dict.Rune) string {
	var m, eng int
	for i := 0; i < len(runes) && eng < len(runes)/2; i++ {
		if runes[i].Value < 0x80 {
			eng++
			if runes[i].Value >= '0' && runes[i].Value <= '9' {
				m++
			}
		}
	}
	if eng == 0 {
		return PosX
	}
	if m == eng {
		return PosM
	}
	return PosEng
}
