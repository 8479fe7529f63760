// internal/words/alphabet.go
//
// Alphabet describes the letters a game is played over.
//
//   - Letters are ordered; the order defines the index used by the solver's
//     per-position letter sets.
//   - Variants map spelling variants onto a canonical letter (ё → е).
//   - An Alphabet is immutable once built and safe to share.

package words

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is an immutable ordered set of valid letters.
type Alphabet struct {
	name     string
	letters  []rune
	index    map[rune]int
	variants map[rune]rune
}

var (
	// Russian is the 32-letter Cyrillic alphabet without ё; ё folds into е.
	Russian = mustAlphabet("ru", "абвгдежзийклмнопрстуфхцчшщъыьэюя", map[rune]rune{'ё': 'е'})

	// English is the lowercase Latin alphabet a–z.
	English = mustAlphabet("en", "abcdefghijklmnopqrstuvwxyz", nil)
)

// NewAlphabet builds an alphabet from an ordered string of distinct letters.
// Variants may not map onto letters outside the alphabet.
func NewAlphabet(name, letters string, variants map[rune]rune) (*Alphabet, error) {
	if letters == "" {
		return nil, errors.New("alphabet: no letters")
	}
	a := &Alphabet{
		name:     name,
		index:    make(map[rune]int, len(letters)),
		variants: make(map[rune]rune, len(variants)),
	}
	for _, r := range letters {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("alphabet: duplicate letter %q", r)
		}
		a.index[r] = len(a.letters)
		a.letters = append(a.letters, r)
	}
	for from, to := range variants {
		if _, ok := a.index[to]; !ok {
			return nil, fmt.Errorf("alphabet: variant %q maps to unknown letter %q", from, to)
		}
		a.variants[from] = to
	}
	return a, nil
}

func mustAlphabet(name, letters string, variants map[rune]rune) *Alphabet {
	a, err := NewAlphabet(name, letters, variants)
	if err != nil {
		panic(err)
	}
	return a
}

// AlphabetByName resolves "ru" or "en" (case-insensitive).
func AlphabetByName(name string) (*Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ru", "russian":
		return Russian, nil
	case "en", "english":
		return English, nil
	}
	return nil, fmt.Errorf("unknown alphabet %q", name)
}

// Name returns the short name the alphabet was registered under.
func (a *Alphabet) Name() string { return a.name }

// Len returns the number of letters.
func (a *Alphabet) Len() int { return len(a.letters) }

// Index returns the position of r in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Letter returns the letter at index i.
func (a *Alphabet) Letter(i int) rune { return a.letters[i] }

// Contains reports whether r is a letter of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Canonical maps a spelling variant onto its canonical letter.
// Runes without a variant are returned unchanged.
func (a *Alphabet) Canonical(r rune) rune {
	if c, ok := a.variants[r]; ok {
		return c
	}
	return r
}

// Letters returns a copy of the ordered letters.
func (a *Alphabet) Letters() []rune {
	return append([]rune(nil), a.letters...)
}

// String returns the letters in order.
func (a *Alphabet) String() string { return string(a.letters) }
