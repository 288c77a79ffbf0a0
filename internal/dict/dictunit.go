package dict

// UnknownTag is the empty POS tag, used when a dictionary line omits one.
const UnknownTag = ""

// MinLogProb is the sentinel used in place of -infinity so that summing
// log-probabilities never produces NaN. Mirrors cppjieba's MIN_DOUBLE.
const MinLogProb = -3.14e100

// Unit is one lexicon entry: the rune sequence of a word, its
// log-probability weight, and its (possibly empty) part-of-speech tag.
// After Dictionary initialization, Weight == log(rawFreq/sumRawFreq) and
// is therefore <= 0.
type Unit struct {
	Word   []rune
	Weight float64
	Tag    string
}
