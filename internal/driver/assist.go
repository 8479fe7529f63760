// internal/driver/assist.go
//
// Interactive helper for a game played elsewhere. The solver suggests a
// word, the user plays it and types back the colors as "+*-" marks.
//
// Per attempt:
//   - show how many candidates remain,
//   - suggest until the user accepts (y / yes / да); a declined word is
//     dropped from the candidates,
//   - in manual regime ask which word was actually played,
//   - read the feedback, re-prompting on malformed input.
//
// The session ends on an all-hit feedback, when attempts run out, when no
// candidate is left, on end of input, or when ctx is cancelled. All of those
// print a closing line and return nil.

package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/CI314X/wordle/internal/game"
	"github.com/CI314X/wordle/internal/solver"
	"github.com/CI314X/wordle/internal/words"
)

// Regime selects who names the word that was played.
type Regime int

const (
	// Auto assumes the suggested word was played.
	Auto Regime = iota
	// Manual asks for the played word on every attempt.
	Manual
)

// ParseRegime resolves "auto" or "manual".
func ParseRegime(name string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "manual":
		return Manual, nil
	}
	return Auto, fmt.Errorf("unknown regime %q", name)
}

func (r Regime) String() string {
	if r == Manual {
		return "manual"
	}
	return "auto"
}

// AssistOptions configures Assist.
type AssistOptions struct {
	Attempts int
	Strategy solver.Strategy
	Regime   Regime
	Rand     *rand.Rand // nil seeds randomly
	In       io.Reader
	Out      io.Writer
	Color    bool // render feedback as colored tiles
}

// errClosed marks a finished session: EOF or cancellation.
var errClosed = errors.New("session closed")

// Assist runs one interactive session. Only read failures other than end of
// input are returned.
func Assist(ctx context.Context, dict *words.Dictionary, opts AssistOptions) error {
	if opts.Attempts < 1 {
		return fmt.Errorf("attempts must be positive, got %d", opts.Attempts)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var engOpts []solver.Option
	if opts.Rand != nil {
		engOpts = append(engOpts, solver.WithRand(opts.Rand))
	}
	s := &session{
		ctx:    ctx,
		dict:   dict,
		engine: solver.New(dict, engOpts...),
		opts:   opts,
	}
	s.lines, s.errc = scanLines(ctx, opts.In)

	err := s.run()
	fmt.Fprintln(opts.Out, "\nGame is over")
	if errors.Is(err, errClosed) {
		return nil
	}
	return err
}

type session struct {
	ctx    context.Context
	dict   *words.Dictionary
	engine *solver.Engine
	opts   AssistOptions
	lines  <-chan string
	errc   <-chan error
}

func (s *session) run() error {
	out := s.opts.Out
	for attempt := 1; attempt <= s.opts.Attempts; attempt++ {
		fmt.Fprintf(out, "Number of available words: %d\n", s.engine.PoolSize())

		suggested, err := s.suggest()
		if errors.Is(err, solver.ErrPoolExhausted) {
			fmt.Fprintln(out, "No words left that match the feedback")
			return nil
		}
		if err != nil {
			return err
		}

		played, fb, err := s.response(suggested)
		if err != nil {
			return err
		}
		if s.opts.Color {
			fmt.Fprintln(out, RenderTurn(played, fb))
		}
		log.Debug().Int("attempt", attempt).Str("word", played).Stringer("feedback", fb).Msg("feedback received")

		if fb.Solved() {
			fmt.Fprintf(out, "Solved in %d attempts\n", attempt)
			return nil
		}
	}
	fmt.Fprintln(out, "Out of attempts")
	return nil
}

// suggest offers candidates until one is accepted.
func (s *session) suggest() (string, error) {
	for {
		w, err := s.engine.Next(s.opts.Strategy)
		if err != nil {
			return "", err
		}
		answer, err := s.ask(fmt.Sprintf("Suggested word: %s. Ok: (y) ", w))
		if err != nil {
			return "", err
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "да":
			return w, nil
		}
		s.engine.Discard(w)
	}
}

// response reads the played word and its feedback and feeds them to the
// engine, repeating until the input is usable.
func (s *session) response(suggested string) (string, game.Feedback, error) {
	out := s.opts.Out
	length := s.dict.Length()
	for {
		fmt.Fprintln(out, "    Response.")
		played := suggested
		if s.opts.Regime == Manual {
			raw, err := s.ask("word: ")
			if err != nil {
				return "", nil, err
			}
			w, ok := s.dict.Normalize(raw)
			if !ok {
				fmt.Fprintf(out, "Wrong input: need a %d-letter word\n", length)
				continue
			}
			played = w
		}

		raw, err := s.ask("state: ")
		if err != nil {
			return "", nil, err
		}
		fb, err := game.ParseFeedback(raw, length)
		if err != nil {
			fmt.Fprintf(out, "Wrong input: %v\n", err)
			continue
		}
		if fb.Solved() {
			return played, fb, nil
		}
		if err := s.engine.Ingest(played, fb); err != nil {
			fmt.Fprintf(out, "Wrong input: %v\n", err)
			continue
		}
		return played, fb, nil
	}
}

// ask prints prompt and waits for the next trimmed line.
func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.opts.Out, prompt)
	select {
	case <-s.ctx.Done():
		return "", errClosed
	case line, ok := <-s.lines:
		if ok {
			return strings.TrimSpace(line), nil
		}
	}
	select {
	case <-s.ctx.Done():
		return "", errClosed
	case err := <-s.errc:
		if errors.Is(err, io.EOF) {
			return "", errClosed
		}
		return "", err
	}
}

// scanLines reads r line by line until EOF, a read error, or ctx is done.
// The error channel receives io.EOF or the read error once lines is closed.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		errc <- err
	}()
	return lines, errc
}
