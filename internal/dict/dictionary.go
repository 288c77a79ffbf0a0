package dict

import (
	"bufio"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/oceanbase/jieba-go/internal/arena"
	"github.com/oceanbase/jieba-go/internal/errs"
)

// WeightPolicy selects the default weight assigned to a user word whose
// frequency field is omitted.
type WeightPolicy int

const (
	WeightMin WeightPolicy = iota
	WeightMedian
	WeightMax
)

const dictColumns = 3

// Dictionary owns the lexicon: a frozen slice of base DictUnits (immutable
// after LoadBase), an append-only arena of user-inserted units (pointer
// stable, see internal/arena), a trie indexing both, and the derived
// weight statistics used as defaults for user words with unspecified
// frequency.
type Dictionary struct {
	log *zap.Logger

	base  []Unit
	users *arena.Arena[Unit]
	trie  *Trie

	userSingleRunes map[rune]struct{}

	freqSum      float64
	minWeight    float64
	medianWeight float64
	maxWeight    float64
	userDefault  float64
	policy       WeightPolicy
}

// New returns an empty Dictionary. Call LoadBase before using it.
func New(log *zap.Logger) *Dictionary {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dictionary{
		log:             log,
		users:           arena.New[Unit](256),
		trie:            NewTrie(),
		userSingleRunes: make(map[rune]struct{}),
		policy:          WeightMedian,
	}
}

// SetWeightPolicy selects which derived statistic (min/median/max) is used
// as the default weight for user words with unspecified frequency. It must
// be called before LoadBase for the chosen policy to take effect, matching
// DictTrie::Init's user_word_weight_opt parameter.
func (d *Dictionary) SetWeightPolicy(p WeightPolicy) {
	d.policy = p
}

// LoadBase parses the base dictionary format (`word freq tag`, one entry
// per line, exactly 3 whitespace-separated fields), computes the raw
// frequency sum, replaces each entry's weight with log(freq/sum), derives
// min/median/max weight, and builds the trie. It must be called exactly
// once, before any InsertUserWord/LoadUserDict call.
func (d *Dictionary) LoadBase(r io.Reader) error {
	units, sum, err := parseBaseDict(r)
	if err != nil {
		d.log.Warn("failed to load base dictionary", zap.Error(err))
		return err
	}
	if err := normalizeWeights(units, sum); err != nil {
		d.log.Warn("failed to normalize base dictionary weights", zap.Error(err))
		return err
	}
	d.base = units
	d.freqSum = sum
	d.setStaticWordWeights()
	d.buildTrie()
	d.log.Info("loaded base dictionary", zap.Int("entries", len(units)), zap.Float64("freq_sum", sum))
	return nil
}

func parseBaseDict(r io.Reader) ([]Unit, float64, error) {
	scanner := bufio.NewScanner(r)
	var units []Unit
	var sum float64
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != dictColumns {
			return nil, 0, errors.Wrapf(errs.ErrInvalidInput, "base dict line %d: expected %d columns, got %d", lineno, dictColumns, len(fields))
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || freq <= 0 {
			return nil, 0, errors.Wrapf(errs.ErrInvalidInput, "base dict line %d: invalid frequency %q", lineno, fields[1])
		}
		runes, err := Decode(fields[0])
		if err != nil {
			return nil, 0, errors.Wrapf(err, "base dict line %d: word %q", lineno, fields[0])
		}
		word := make([]rune, len(runes))
		for i, rn := range runes {
			word[i] = rn.Value
		}
		units = append(units, Unit{Word: word, Weight: freq, Tag: fields[2]})
		sum += freq
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "scanning base dictionary")
	}
	if sum <= 0 || len(units) == 0 {
		return nil, 0, errors.Wrap(errs.ErrInvalidInput, "base dictionary is empty or has non-positive frequency sum")
	}
	return units, sum, nil
}

func normalizeWeights(units []Unit, sum float64) error {
	for i := range units {
		if units[i].Weight <= 0 {
			return errors.Wrapf(errs.ErrInvalidInput, "unit %d has non-positive raw frequency %f", i, units[i].Weight)
		}
		units[i].Weight = math.Log(units[i].Weight / sum)
	}
	return nil
}

// setStaticWordWeights computes min/median/max over the base dictionary's
// weights and selects userDefault per policy. The median is the element
// at index n/2 of the weight-sorted list, without averaging for even n —
// preserved exactly from the reference, per spec.md's explicit open
// question.
func (d *Dictionary) setStaticWordWeights() {
	sorted := make([]float64, len(d.base))
	for i, u := range d.base {
		sorted[i] = u.Weight
	}
	sort.Float64s(sorted)
	d.minWeight = sorted[0]
	d.maxWeight = sorted[len(sorted)-1]
	d.medianWeight = sorted[len(sorted)/2]
	switch d.policy {
	case WeightMin:
		d.userDefault = d.minWeight
	case WeightMax:
		d.userDefault = d.maxWeight
	default:
		d.userDefault = d.medianWeight
	}
}

func (d *Dictionary) buildTrie() {
	d.trie = NewTrie()
	for i := range d.base {
		d.trie.Insert(d.base[i].Word, &d.base[i])
	}
	d.users.Each(func(u *Unit) {
		d.trie.Insert(u.Word, u)
	})
}

// MinWeight returns the minimum weight across the base dictionary, used as
// the virtual weight of an unknown single rune during MP segmentation.
func (d *Dictionary) MinWeight() float64 { return d.minWeight }

// MedianWeight returns the base dictionary's median weight.
func (d *Dictionary) MedianWeight() float64 { return d.medianWeight }

// MaxWeight returns the base dictionary's maximum weight.
func (d *Dictionary) MaxWeight() float64 { return d.maxWeight }

// Trie returns the dictionary's backing trie.
func (d *Dictionary) Trie() *Trie { return d.trie }

// IsUserSingleRune reports whether r was inserted into the user dictionary
// as a standalone single-rune word.
func (d *Dictionary) IsUserSingleRune(r rune) bool {
	_, ok := d.userSingleRunes[r]
	return ok
}

// InsertUserWord adds word to the dictionary with an explicit frequency
// (weight = log(freq/freqSum)) and tag. A freq of 0 uses the configured
// default weight policy instead.
func (d *Dictionary) InsertUserWord(word string, freq int, tag string) error {
	runes, err := Decode(word)
	if err != nil {
		return errors.Wrapf(err, "insert user word %q", word)
	}
	weight := d.userDefault
	if freq > 0 {
		weight = math.Log(float64(freq) / d.freqSum)
	}
	return d.insert(runes, weight, tag)
}

func (d *Dictionary) insert(runes []Rune, weight float64, tag string) error {
	word := make([]rune, len(runes))
	for i, r := range runes {
		word[i] = r.Value
	}
	unit := d.users.Push(Unit{Word: word, Weight: weight, Tag: tag})
	d.trie.Insert(word, unit)
	if len(word) == 1 {
		d.userSingleRunes[word[0]] = struct{}{}
	}
	return nil
}

// DeleteUserWord removes word's trie terminal. The backing arena slot is
// left in place; only the lookup path is severed, matching
// DictTrie::DeleteUserWord.
func (d *Dictionary) DeleteUserWord(word string) error {
	runes, err := Decode(word)
	if err != nil {
		return errors.Wrapf(err, "delete user word %q", word)
	}
	rs := make([]rune, len(runes))
	for i, r := range runes {
		rs[i] = r.Value
	}
	d.trie.Remove(rs)
	if len(rs) == 1 {
		delete(d.userSingleRunes, rs[0])
	}
	return nil
}

// Find reports whether word is present as an exact dictionary entry.
func (d *Dictionary) Find(word string) bool {
	runes, err := Decode(word)
	if err != nil {
		return false
	}
	return d.trie.FindExact(runes, 0, len(runes)) != nil
}

// LoadUserDict parses the user dictionary format (1, 2, or 3
// whitespace-separated fields per line) from r and inserts every entry.
// The first malformed line aborts the whole load; no partial insertion is
// retried.
func (d *Dictionary) LoadUserDict(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := d.loadUserDictLine(line); err != nil {
			d.log.Warn("failed to load user dict line", zap.Int("line", lineno), zap.Error(err))
			return errors.Wrapf(err, "user dict line %d", lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scanning user dictionary")
	}
	return nil
}

func (d *Dictionary) loadUserDictLine(line string) error {
	fields := strings.Fields(line)
	var word, tag string
	var weight float64
	switch len(fields) {
	case 1:
		word = fields[0]
		weight = d.userDefault
	case 2:
		word, tag = fields[0], fields[1]
		weight = d.userDefault
	case 3:
		word, tag = fields[0], fields[2]
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || freq <= 0 {
			return errors.Wrapf(errs.ErrInvalidInput, "invalid frequency %q", fields[1])
		}
		weight = math.Log(freq / d.freqSum)
	default:
		return errors.Wrapf(errs.ErrInvalidInput, "expected 1, 2, or 3 columns, got %d", len(fields))
	}
	runes, err := Decode(word)
	if err != nil {
		return err
	}
	return d.insert(runes, weight, tag)
}
