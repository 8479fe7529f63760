package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/CI314X/wordle/internal/config"
	"github.com/CI314X/wordle/internal/driver"
	"github.com/CI314X/wordle/internal/game"
	"github.com/CI314X/wordle/internal/solver"
	"github.com/CI314X/wordle/internal/words"
)

const usage = `usage: wordle <command> [flags]

commands:
  simulate   play games against random secrets and report the win rate
  assist     suggest guesses for a game played elsewhere

run "wordle <command> -h" for the flags of a command
`

// options holds command-line flags. Only flags set explicitly override the
// configuration.
type options struct {
	configPath string
	dict       string
	length     int
	alphabet   string
	attempts   int
	strategy   string
	logLevel   string

	// simulate
	games    int
	oracle   string
	daily    bool
	seed     int64
	verbose  bool
	progress bool

	// assist
	regime string
	color  bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "simulate":
		err = runSimulate(ctx, args)
	case "assist":
		err = runAssist(ctx, args)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	var loadErr *words.LoadError
	switch {
	case errors.As(err, &loadErr):
		log.Fatal().Err(err).Msg("failed to load word list")
	case err != nil:
		log.Fatal().Err(err).Msg("wordle failed")
	}
}

func commonFlags(name string, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&o.configPath, "config", "", "TOML config file (default $WORDLE_CONFIG)")
	fs.StringVar(&o.dict, "dict", "", "word list, one word per line (default: embedded Russian list)")
	fs.IntVar(&o.length, "length", 5, "letters per word")
	fs.StringVar(&o.alphabet, "alphabet", "ru", "alphabet: ru or en")
	fs.IntVar(&o.attempts, "attempts", 6, "guesses per game")
	fs.StringVar(&o.strategy, "strategy", "uniform", "guess selection: uniform or weighted")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level")
	return fs
}

// setup loads the configuration, applies explicit flags on top and
// configures logging.
func setup(fs *flag.FlagSet, o *options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			cfg.Dictionary.Path = o.dict
		case "length":
			cfg.Dictionary.Length = o.length
		case "alphabet":
			cfg.Dictionary.Alphabet = o.alphabet
		case "attempts":
			cfg.Game.Attempts = o.attempts
		case "strategy":
			cfg.Game.Strategy = o.strategy
		case "oracle":
			cfg.Game.Oracle = o.oracle
		case "n":
			cfg.Simulate.Games = o.games
		case "seed":
			cfg.Simulate.Seed = o.seed
		case "log-level":
			cfg.LogLevel = o.logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return cfg, nil
}

func loadDictionary(cfg *config.Config) (*words.Dictionary, error) {
	ab, err := words.AlphabetByName(cfg.Dictionary.Alphabet)
	if err != nil {
		return nil, err
	}
	var d *words.Dictionary
	if cfg.Dictionary.Path == "" {
		d, err = words.Default(cfg.Dictionary.Length, ab)
	} else {
		d, err = words.LoadFile(cfg.Dictionary.Path, cfg.Dictionary.Length, ab)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("words", d.Len()).Int("length", d.Length()).Str("alphabet", ab.Name()).Msg("dictionary ready")
	return d, nil
}

func runSimulate(ctx context.Context, args []string) error {
	var o options
	fs := commonFlags("simulate", &o)
	fs.IntVar(&o.games, "n", 10, "number of games")
	fs.StringVar(&o.oracle, "oracle", "naive", "feedback rules: naive or strict")
	fs.BoolVar(&o.daily, "daily", false, "play one game against the word of the day")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 for a random one")
	fs.BoolVar(&o.verbose, "v", false, "list unsolved secrets")
	fs.BoolVar(&o.progress, "progress", true, "show a progress bar")
	_ = fs.Parse(args)

	cfg, err := setup(fs, &o)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	strategy, _ := solver.ParseStrategy(cfg.Game.Strategy)
	oracle, _ := game.OracleByName(cfg.Game.Oracle)

	opts := driver.SimOptions{
		Games:    cfg.Simulate.Games,
		Attempts: cfg.Game.Attempts,
		Strategy: strategy,
		Oracle:   oracle,
		Daily:    o.daily,
		Salt:     cfg.Simulate.DailySalt,
	}
	if seed := uint64(cfg.Simulate.Seed); seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	if o.progress {
		opts.Progress = os.Stderr
	}

	log.Info().
		Int("games", opts.Games).
		Int("attempts", opts.Attempts).
		Stringer("strategy", strategy).
		Str("oracle", cfg.Game.Oracle).
		Bool("daily", opts.Daily).
		Msg("simulation started")

	sum, err := driver.Simulate(ctx, dict, opts)
	if errors.Is(err, context.Canceled) {
		log.Warn().Int("played", sum.Played).Msg("simulation interrupted")
	} else if err != nil {
		return err
	}
	return driver.Report(os.Stdout, sum, o.verbose)
}

func runAssist(ctx context.Context, args []string) error {
	var o options
	fs := commonFlags("assist", &o)
	fs.StringVar(&o.regime, "regime", "auto", "auto: the suggested word is played; manual: type the word you played")
	fs.BoolVar(&o.color, "color", true, "show feedback as colored tiles")
	_ = fs.Parse(args)

	cfg, err := setup(fs, &o)
	if err != nil {
		return err
	}
	regime, err := driver.ParseRegime(o.regime)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	strategy, _ := solver.ParseStrategy(cfg.Game.Strategy)

	return driver.Assist(ctx, dict, driver.AssistOptions{
		Attempts: cfg.Game.Attempts,
		Strategy: strategy,
		Regime:   regime,
		In:       os.Stdin,
		Out:      os.Stdout,
		Color:    o.color,
	})
}
