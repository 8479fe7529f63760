package store

import "github.com/CI314X/wordle/internal/game"

// Unsolved describes a lost game for the report.
type Unsolved struct {
	Secret    string
	LastGuess string
}

// Summary aggregates a batch of games.
type Summary struct {
	Played          int
	Won             int
	WinRate         float64 // Won / Played, 0 when nothing was played
	AverageAttempts float64 // guesses per won game, 0 when nothing was won
	Unsolved        []Unsolved
}

// Summarize builds a Summary from finished games. Unfinished games are
// counted as played but not won.
func Summarize(games []*game.Game) Summary {
	var s Summary
	guesses := 0
	for _, g := range games {
		s.Played++
		if g.Won {
			s.Won++
			guesses += len(g.Guesses)
			continue
		}
		s.Unsolved = append(s.Unsolved, Unsolved{Secret: g.Secret, LastGuess: g.LastGuess()})
	}
	if s.Played > 0 {
		s.WinRate = float64(s.Won) / float64(s.Played)
	}
	if s.Won > 0 {
		s.AverageAttempts = float64(guesses) / float64(s.Won)
	}
	return s
}
