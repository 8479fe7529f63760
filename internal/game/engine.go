// internal/game/engine.go
//
// Oracle scoring and the game state machine used for self-play.
// Responsibilities:
//   - Score guesses against a known secret (naive and strict oracles).
//   - Validate and apply guesses (length, finished state).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The naive oracle marks a letter present whenever it occurs anywhere in
//     the secret, without counting occurrences. It is the default.
//   - The strict oracle is the classic two-pass Wordle algorithm.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ErrFinished is returned when guessing in a game that is already over.
var ErrFinished = errors.New("game finished")

// Oracle computes feedback for guess against secret. Both words have the
// same number of letters.
type Oracle func(secret, guess string) Feedback

// OracleByName resolves "naive" (default) or "strict".
func OracleByName(name string) (Oracle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "naive":
		return Score, nil
	case "strict":
		return ScoreStrict, nil
	}
	return nil, fmt.Errorf("unknown oracle %q", name)
}

// New constructs a game against secret with the given attempt budget.
// A nil oracle means Score.
func New(secret string, attempts int, oracle Oracle) *Game {
	if oracle == nil {
		oracle = Score
	}
	return &Game{
		ID:       uuid.NewString(),
		Secret:   secret,
		Attempts: attempts,
		Length:   utf8.RuneCountInString(secret),
		Guesses:  []string{},
		oracle:   oracle,
	}
}

// ApplyGuess scores a guess, mutating the game state.
// Returns the feedback, the new state, or an error.
//
// State transitions:
//   - All marks hit → Finished, Won.
//   - Else if the number of guesses reaches Attempts → Finished (loss).
func (g *Game) ApplyGuess(guess string) (Feedback, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	if n := utf8.RuneCountInString(guess); n != g.Length {
		return nil, g.State(), fmt.Errorf("guess %q has %d letters, want %d", guess, n, g.Length)
	}

	fb := g.oracle(g.Secret, guess)
	g.Guesses = append(g.Guesses, guess)
	g.Feedback = append(g.Feedback, fb)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Attempts {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// Abandon ends the game as a loss, e.g. when the solver ran out of candidates.
func (g *Game) Abandon() {
	g.Finished = true
}

// LastGuess returns the most recent guess, or "" if none was made.
func (g *Game) LastGuess() string {
	if len(g.Guesses) == 0 {
		return ""
	}
	return g.Guesses[len(g.Guesses)-1]
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score is the naive oracle:
//   - '+' if guess[i] == secret[i],
//   - '*' if guess[i] occurs anywhere in secret,
//   - '-' otherwise.
//
// Repeated guess letters may all be marked present even when the secret
// holds fewer of them.
func Score(secret, guess string) Feedback {
	s, gr := []rune(secret), []rune(guess)
	out := make(Feedback, len(gr))
	for i, r := range gr {
		switch {
		case i < len(s) && s[i] == r:
			out[i] = MarkHit
		case strings.ContainsRune(secret, r):
			out[i] = MarkPresent
		default:
			out[i] = MarkMiss
		}
	}
	return out
}

// ScoreStrict implements the standard Wordle two-pass scoring.
//
// Pass 1:
//   - Mark exact matches as hits.
//   - Count remaining (non-hit) secret letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise mark miss.
func ScoreStrict(secret, guess string) Feedback {
	s, gr := []rune(secret), []rune(guess)
	n := len(gr)
	out := make(Feedback, n)
	counts := make(map[rune]int, len(s))

	for i := 0; i < n; i++ {
		if i < len(s) && gr[i] == s[i] {
			out[i] = MarkHit
		} else if i < len(s) {
			counts[s[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == MarkHit {
			continue
		}
		if counts[gr[i]] > 0 {
			out[i] = MarkPresent
			counts[gr[i]]--
		} else {
			out[i] = MarkMiss
		}
	}
	return out
}
