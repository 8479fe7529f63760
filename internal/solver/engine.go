// internal/solver/engine.go
//
// Constraint engine for guessing a secret word from feedback.
//
// The engine keeps what is known about the secret:
//   - one allowed-letter set per position (starts as the full alphabet),
//   - the letters known to occur in the secret, with how often they were
//     reported,
//   - the candidate pool: dictionary words consistent with every feedback,
//   - the history of (guess, feedback) turns.
//
// Candidate pruning is cumulative: each filter pass runs over the previous
// pool, so a discarded word only comes back after Reset.
//
// An Engine is not safe for concurrent use. Parallel games need one engine
// each; the Dictionary they start from can be shared.

package solver

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/CI314X/wordle/internal/game"
	"github.com/CI314X/wordle/internal/words"
)

// ErrPoolExhausted is returned when no candidate is consistent with the
// feedback received so far.
var ErrPoolExhausted = errors.New("no candidate words left")

// Turn is one guess and the feedback it received.
type Turn struct {
	Guess    string
	Feedback game.Feedback
}

// Engine tracks constraints and the candidate pool for one game at a time.
type Engine struct {
	dict      *words.Dictionary
	alphabet  *words.Alphabet
	length    int
	positions []*bitset.BitSet // allowed letter indices per position
	required  map[rune]int
	pool      []string
	history   []Turn
	rng       *rand.Rand
	logger    zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used by the uniform strategy.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger used for filter diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine over dict, ready for a fresh game.
func New(dict *words.Dictionary, opts ...Option) *Engine {
	e := &Engine{
		dict:     dict,
		alphabet: dict.Alphabet(),
		length:   dict.Length(),
		logger:   log.Logger,
	}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.positions = make([]*bitset.BitSet, e.length)
	for i := range e.positions {
		e.positions[i] = bitset.New(uint(e.alphabet.Len()))
	}
	e.Reset()
	return e
}

// Reset restores the initial state for a new game. The dictionary is reused.
func (e *Engine) Reset() {
	n := uint(e.alphabet.Len())
	for _, p := range e.positions {
		p.ClearAll()
		p.FlipRange(0, n)
	}
	e.required = make(map[rune]int)
	e.pool = e.dict.Words()
	e.history = e.history[:0]
}

// Ingest applies the feedback received for guess and prunes the pool.
//
// Marks are processed left to right:
//   - hit: the letter becomes required and the position is fixed to it;
//   - present: the letter becomes required and is banned at this position;
//   - miss: if the letter is not required (so far in this scan or from an
//     earlier turn) it is banned everywhere, otherwise only at this position.
//
// Malformed input returns an error wrapping game.ErrInvalidFeedback and
// leaves the engine untouched.
func (e *Engine) Ingest(guess string, fb game.Feedback) error {
	letters, err := e.validate(guess, fb)
	if err != nil {
		return err
	}

	for i, idx := range letters {
		l := e.alphabet.Letter(idx)
		switch fb[i] {
		case game.MarkHit:
			e.required[l]++
			e.positions[i].ClearAll()
			e.positions[i].Set(uint(idx))
		case game.MarkPresent:
			e.required[l]++
			e.positions[i].Clear(uint(idx))
		case game.MarkMiss:
			if _, ok := e.required[l]; ok {
				e.positions[i].Clear(uint(idx))
				continue
			}
			for _, p := range e.positions {
				p.Clear(uint(idx))
			}
		}
	}

	e.history = append(e.history, Turn{Guess: guess, Feedback: append(game.Feedback(nil), fb...)})
	e.filter()
	return nil
}

// validate checks lengths and letters and returns the alphabet index of
// each guess letter.
func (e *Engine) validate(guess string, fb game.Feedback) ([]int, error) {
	if n := utf8.RuneCountInString(guess); n != e.length || len(fb) != e.length {
		return nil, fmt.Errorf("%w: guess %q (%d letters) with %d marks, want %d",
			game.ErrInvalidFeedback, guess, n, len(fb), e.length)
	}
	letters := make([]int, 0, e.length)
	for _, r := range guess {
		idx, ok := e.alphabet.Index(e.alphabet.Canonical(r))
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in the alphabet", game.ErrInvalidFeedback, r)
		}
		letters = append(letters, idx)
	}
	for _, m := range fb {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: unknown mark %q", game.ErrInvalidFeedback, byte(m))
		}
	}
	return letters, nil
}

// filter keeps the pool words allowed at every position that contain every
// required letter.
func (e *Engine) filter() {
	before := len(e.pool)
	kept := e.pool[:0]
	for _, w := range e.pool {
		if e.matches(w) {
			kept = append(kept, w)
		}
	}
	// Zero the tail so dropped strings can be collected.
	for i := len(kept); i < before; i++ {
		e.pool[i] = ""
	}
	e.pool = kept
	e.logger.Debug().
		Int("turn", len(e.history)).
		Int("before", before).
		Int("pool", len(kept)).
		Msg("candidates filtered")
}

func (e *Engine) matches(w string) bool {
	i := 0
	for _, r := range w {
		idx, ok := e.alphabet.Index(r)
		if !ok || i >= e.length || !e.positions[i].Test(uint(idx)) {
			return false
		}
		i++
	}
	for l := range e.required {
		if !containsRune(w, l) {
			return false
		}
	}
	return true
}

func containsRune(w string, l rune) bool {
	for _, r := range w {
		if r == l {
			return true
		}
	}
	return false
}

// Discard drops w from the pool, e.g. when the game being assisted does not
// accept it. It reports whether w was a candidate. Constraints are unchanged.
func (e *Engine) Discard(w string) bool {
	for i, c := range e.pool {
		if c == w {
			e.pool = append(e.pool[:i], e.pool[i+1:]...)
			return true
		}
	}
	return false
}

// Length returns the number of letters per word.
func (e *Engine) Length() int { return e.length }

// PoolSize returns the number of remaining candidates.
func (e *Engine) PoolSize() int { return len(e.pool) }

// Pool returns a copy of the remaining candidates.
func (e *Engine) Pool() []string {
	return append([]string(nil), e.pool...)
}

// History returns a copy of the turns ingested since the last Reset.
func (e *Engine) History() []Turn {
	return append([]Turn(nil), e.history...)
}

// Required returns a copy of the required letters and their reported counts.
func (e *Engine) Required() map[rune]int {
	out := make(map[rune]int, len(e.required))
	for l, n := range e.required {
		out[l] = n
	}
	return out
}

// Allowed returns the letters still allowed at position i, in alphabet order.
func (e *Engine) Allowed(i int) []rune {
	p := e.positions[i]
	out := make([]rune, 0, p.Count())
	for idx, ok := p.NextSet(0); ok; idx, ok = p.NextSet(idx + 1) {
		out = append(out, e.alphabet.Letter(int(idx)))
	}
	return out
}
