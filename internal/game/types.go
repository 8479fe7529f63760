// internal/game/types.go
//
// Core type definitions for feedback and game sessions.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Feedback: the marks for a whole guess, written as "+*-" strings.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidFeedback is returned for feedback of the wrong length or with
// characters outside "+*-".
var ErrInvalidFeedback = errors.New("invalid feedback")

// Mark represents the evaluation result for a single letter in a guess.
// Its byte value is the character used on the interactive protocol:
//   - '+': letter is correct and in the correct position.
//   - '*': letter exists in the secret but at another position.
//   - '-': letter does not exist in the secret.
type Mark byte

const (
	MarkHit     Mark = '+'
	MarkPresent Mark = '*'
	MarkMiss    Mark = '-'
)

// Valid reports whether m is one of the three known marks.
func (m Mark) Valid() bool {
	return m == MarkHit || m == MarkPresent || m == MarkMiss
}

// Feedback is the per-position evaluation of one guess.
type Feedback []Mark

// ParseFeedback reads a feedback line such as "-+*--".
// The line must hold exactly length marks.
func ParseFeedback(s string, length int) (Feedback, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n != length {
		return nil, fmt.Errorf("%w: got %d marks, want %d", ErrInvalidFeedback, n, length)
	}
	fb := make(Feedback, 0, length)
	for _, r := range s {
		m := Mark(r)
		if r > 0x7f || !m.Valid() {
			return nil, fmt.Errorf("%w: unknown mark %q", ErrInvalidFeedback, r)
		}
		fb = append(fb, m)
	}
	return fb, nil
}

// AllHit returns a solved feedback of the given length.
func AllHit(length int) Feedback {
	fb := make(Feedback, length)
	for i := range fb {
		fb[i] = MarkHit
	}
	return fb
}

// Solved reports whether every mark is a hit.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

func (f Feedback) String() string {
	b := make([]byte, len(f))
	for i, m := range f {
		b[i] = byte(m)
	}
	return string(b)
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single game against a known secret.
type Game struct {
	ID       string     // Unique game identifier.
	Secret   string     // The word to find.
	Attempts int        // Maximum number of guesses allowed.
	Length   int        // Number of letters per word.
	Guesses  []string   // Guesses made so far.
	Feedback []Feedback // Oracle answer for each guess.
	Finished bool       // True once the game is over (won or lost).
	Won      bool       // True if the game was finished with a win.
	oracle   Oracle
}
