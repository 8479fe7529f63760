// internal/driver/simulate.go
//
// Self-play: the solver guesses secrets drawn from its own dictionary and the
// oracle scores every guess.
//
// Flow per trial:
//   - pick a secret (random, or the word of the day),
//   - reset the engine and start a game,
//   - guess / score / ingest until the game is won or lost,
//   - save the game to the store.
//
// Running out of candidates counts as a lost trial. Feedback the engine
// rejects means the oracle and the engine disagree, which stops the run.

package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/CI314X/wordle/internal/daily"
	"github.com/CI314X/wordle/internal/game"
	"github.com/CI314X/wordle/internal/solver"
	"github.com/CI314X/wordle/internal/store"
	"github.com/CI314X/wordle/internal/words"
)

// SimOptions configures Simulate.
type SimOptions struct {
	Games    int             // number of trials; forced to 1 with Daily
	Attempts int             // guesses per trial
	Strategy solver.Strategy // guess selection
	Oracle   game.Oracle     // nil means game.Score

	Daily bool      // play the word of the day instead of random secrets
	Date  time.Time // day for Daily; zero means today
	Salt  string    // daily salt; empty means daily.DefaultSalt

	Rand     *rand.Rand  // secret and uniform-strategy source; nil seeds randomly
	Store    store.Store // receives every game; nil uses a fresh memory store
	Progress io.Writer   // progress bar destination; nil disables it
}

// Simulate plays opts.Games trials and summarizes every game held by the
// store. On cancellation it stops between trials and returns the summary so
// far together with ctx.Err().
func Simulate(ctx context.Context, dict *words.Dictionary, opts SimOptions) (store.Summary, error) {
	if opts.Attempts < 1 {
		return store.Summary{}, fmt.Errorf("attempts must be positive, got %d", opts.Attempts)
	}
	n := opts.Games
	if opts.Daily {
		n = 1
	}
	if n < 1 {
		return store.Summary{}, fmt.Errorf("games must be positive, got %d", opts.Games)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	st := opts.Store
	if st == nil {
		st = store.NewMemoryStore()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("simulating"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	engine := solver.New(dict, solver.WithRand(rng))
	runErr := func() error {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			secret := pickSecret(dict, rng, opts)
			engine.Reset()
			g := game.New(secret, opts.Attempts, opts.Oracle)

			err := PlayOne(engine, g, opts.Strategy)
			switch {
			case errors.Is(err, solver.ErrPoolExhausted):
				log.Debug().Str("secret", secret).Strs("guesses", g.Guesses).Msg("no candidates left")
			case err != nil:
				return fmt.Errorf("trial %d (secret %q): %w", i+1, secret, err)
			}
			log.Debug().
				Str("id", g.ID).
				Str("secret", secret).
				Bool("won", g.Won).
				Int("guesses", len(g.Guesses)).
				Msg("trial finished")

			if err := st.Save(ctx, g); err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		return nil
	}()
	if bar != nil {
		_ = bar.Finish()
	}

	games, err := st.List(ctx)
	if err != nil {
		return store.Summary{}, err
	}
	return store.Summarize(games), runErr
}

func pickSecret(dict *words.Dictionary, rng *rand.Rand, opts SimOptions) string {
	if opts.Daily {
		date := opts.Date
		if date.IsZero() {
			date = time.Now()
		}
		return daily.Secret(dict, date, opts.Salt)
	}
	return dict.At(rng.IntN(dict.Len()))
}

// PlayOne drives a single game to the end. The engine must be freshly reset.
//
// When the engine runs out of candidates the game is abandoned (lost) and
// solver.ErrPoolExhausted is returned. Any other error leaves the game
// unfinished.
func PlayOne(engine *solver.Engine, g *game.Game, strategy solver.Strategy) error {
	for !g.Finished {
		guess, err := engine.Next(strategy)
		if err != nil {
			if errors.Is(err, solver.ErrPoolExhausted) {
				g.Abandon()
			}
			return err
		}
		fb, state, err := g.ApplyGuess(guess)
		if err != nil {
			return err
		}
		if state != game.StatePlaying {
			return nil
		}
		if err := engine.Ingest(guess, fb); err != nil {
			return err
		}
	}
	return nil
}
