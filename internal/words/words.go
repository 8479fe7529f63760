// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Read one word per line from a file, an io.Reader, or the embedded default list.
//   - Normalize each entry: trim, NFC, lowercase, fold letter variants (ё → е).
//   - Keep only words of the exact requested length made of alphabet letters.
//   - Deduplicate and expose the result as an immutable Dictionary.
//
// A Dictionary is loaded once per process and shared read-only by every
// solver engine; resetting a game never touches it.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/CI314X/wordle/assets"
)

// ErrEmptyDictionary is returned when no line survives normalization.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// LoadError reports an unreadable dictionary source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dictionary is an immutable, sorted set of words of one length.
type Dictionary struct {
	alphabet *Alphabet
	length   int
	words    []string
	set      map[string]struct{}
}

// LoadFile reads a dictionary file, one word per line.
func LoadFile(path string, length int, ab *Alphabet) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	d, err := load(f, path, length, ab)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", d.Len()).Int("length", length).Msg("dictionary loaded")
	return d, nil
}

// Load reads a dictionary from r.
func Load(r io.Reader, length int, ab *Alphabet) (*Dictionary, error) {
	return load(r, "reader", length, ab)
}

// Default loads the embedded word list. It only holds Russian words.
func Default(length int, ab *Alphabet) (*Dictionary, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, &LoadError{Source: "embedded", Err: err}
	}
	defer f.Close()
	return load(f, "embedded", length, ab)
}

func load(r io.Reader, source string, length int, ab *Alphabet) (*Dictionary, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", length)
	}
	lower := caserFor(ab)

	seen := mapset.NewThreadUnsafeSet[string]()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := normalize(sc.Text(), length, ab, lower); ok {
			seen.Add(w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	if seen.Cardinality() == 0 {
		return nil, ErrEmptyDictionary
	}

	list := seen.ToSlice()
	sort.Strings(list)
	return newDictionary(list, length, ab), nil
}

// normalize turns a raw line into a canonical word, or reports it unusable.
func normalize(line string, length int, ab *Alphabet, lower cases.Caser) (string, bool) {
	w := strings.TrimSpace(line)
	if w == "" {
		return "", false
	}
	w = lower.String(norm.NFC.String(w))
	if utf8.RuneCountInString(w) != length {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		r = ab.Canonical(r)
		if !ab.Contains(r) {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

func caserFor(ab *Alphabet) cases.Caser {
	if ab == English {
		return cases.Lower(language.English)
	}
	return cases.Lower(language.Russian)
}

// Normalize applies the loader's normalization to a single word typed by a
// user. ok is false if the word has the wrong length or foreign letters.
// The word does not have to be in the dictionary.
func (d *Dictionary) Normalize(w string) (string, bool) {
	return normalize(w, d.length, d.alphabet, caserFor(d.alphabet))
}

// FromWords builds a dictionary from already-normalized words.
// Entries of the wrong length or with foreign letters are dropped.
func FromWords(list []string, length int, ab *Alphabet) (*Dictionary, error) {
	return Load(strings.NewReader(strings.Join(list, "\n")), length, ab)
}

func newDictionary(list []string, length int, ab *Alphabet) *Dictionary {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return &Dictionary{alphabet: ab, length: length, words: list, set: set}
}

// Words returns a copy of the sorted word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// At returns the i-th word in sorted order.
func (d *Dictionary) At(i int) string { return d.words[i] }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Length returns the number of letters per word.
func (d *Dictionary) Length() int { return d.length }

// Alphabet returns the alphabet the words are spelled in.
func (d *Dictionary) Alphabet() *Alphabet { return d.alphabet }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}
