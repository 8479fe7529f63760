package driver

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/CI314X/wordle/internal/store"
)

// Report prints a simulation summary. With verbose set, every unsolved
// secret is listed next to the last word the solver tried.
func Report(w io.Writer, s store.Summary, verbose bool) error {
	if _, err := fmt.Fprintf(w, "Games played: %d\nGames won: %d\nWin rate: %.3f\nAverage attempts: %.2f\n",
		s.Played, s.Won, s.WinRate, s.AverageAttempts); err != nil {
		return err
	}
	if !verbose || len(s.Unsolved) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECRET\tLAST GUESS")
	for _, u := range s.Unsolved {
		last := u.LastGuess
		if last == "" {
			last = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", u.Secret, last)
	}
	return tw.Flush()
}
