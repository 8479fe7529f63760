// internal/solver/strategy.go
//
// Guess selection over the current candidate pool.

package solver

import (
	"fmt"
	"strings"
)

// Strategy picks the next guess from the candidate pool.
type Strategy int

const (
	// Uniform picks a random candidate.
	Uniform Strategy = iota
	// Weighted picks the candidate whose distinct letters are most common
	// across the pool.
	Weighted
)

// ParseStrategy resolves a strategy name. "random" and "clever" are accepted
// as aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform", "random":
		return Uniform, nil
	case "weighted", "clever":
		return Weighted, nil
	}
	return Uniform, fmt.Errorf("unknown strategy %q", name)
}

func (s Strategy) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Weighted:
		return "weighted"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Next returns a candidate according to strategy, or ErrPoolExhausted when
// the pool is empty. The returned word is always a member of the pool.
func (e *Engine) Next(strategy Strategy) (string, error) {
	if len(e.pool) == 0 {
		return "", ErrPoolExhausted
	}
	switch strategy {
	case Weighted:
		return e.best(), nil
	default:
		return e.pool[e.rng.IntN(len(e.pool))], nil
	}
}

// Scores returns the letter-frequency score of every pool word, in pool order.
func (e *Engine) Scores() []int {
	freq := e.letterFrequency()
	out := make([]int, len(e.pool))
	for i, w := range e.pool {
		out[i] = score(w, freq)
	}
	return out
}

// best returns the highest-scoring word; ties go to the lexicographically
// smallest word so the choice only depends on the pool contents.
func (e *Engine) best() string {
	freq := e.letterFrequency()
	bestWord, bestScore := "", -1
	for _, w := range e.pool {
		s := score(w, freq)
		if s > bestScore || (s == bestScore && w < bestWord) {
			bestWord, bestScore = w, s
		}
	}
	return bestWord
}

// letterFrequency counts, for every letter, how many pool words contain it.
func (e *Engine) letterFrequency() map[rune]int {
	freq := make(map[rune]int, e.alphabet.Len())
	for _, w := range e.pool {
		for _, l := range distinct(w) {
			freq[l]++
		}
	}
	return freq
}

// score sums the pool frequency of each distinct letter of w.
func score(w string, freq map[rune]int) int {
	total := 0
	for _, l := range distinct(w) {
		total += freq[l]
	}
	return total
}

func distinct(w string) []rune {
	out := make([]rune, 0, len(w))
	for _, r := range w {
		seen := false
		for _, o := range out {
			if o == r {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, r)
		}
	}
	return out
}
