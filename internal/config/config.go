/*
Package config assembles solver settings from defaults, an optional TOML
file, and the environment (a .env file is loaded first when present).

Precedence, lowest first: built-in defaults, TOML file, environment.
Command-line flags are applied on top by the caller.

	[dictionary]
	path = "words.txt"
	length = 5
	alphabet = "ru"

	[game]
	attempts = 6
	strategy = "weighted"
	oracle = "naive"

	[simulate]
	games = 100
	seed = 42
	daily_salt = "wordle"
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/CI314X/wordle/internal/game"
	"github.com/CI314X/wordle/internal/solver"
	"github.com/CI314X/wordle/internal/words"
)

// Config holds the entire configuration.
type Config struct {
	Dictionary DictConfig     `toml:"dictionary"`
	Game       GameConfig     `toml:"game"`
	Simulate   SimulateConfig `toml:"simulate"`
	LogLevel   string         `toml:"log_level"`
}

// DictConfig selects the word list.
type DictConfig struct {
	Path     string `toml:"path"` // empty means the embedded list
	Length   int    `toml:"length"`
	Alphabet string `toml:"alphabet"`
}

// GameConfig holds per-game options.
type GameConfig struct {
	Attempts int    `toml:"attempts"`
	Strategy string `toml:"strategy"`
	Oracle   string `toml:"oracle"`
}

// SimulateConfig holds self-play options.
type SimulateConfig struct {
	Games     int    `toml:"games"`
	Seed      int64  `toml:"seed"` // 0 picks a random seed
	DailySalt string `toml:"daily_salt"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Dictionary: DictConfig{Length: 5, Alphabet: "ru"},
		Game:       GameConfig{Attempts: 6, Strategy: "uniform", Oracle: "naive"},
		Simulate:   SimulateConfig{Games: 10, DailySalt: "wordle"},
		LogLevel:   "info",
	}
}

// Load builds the configuration. path names a TOML file; when empty,
// WORDLE_CONFIG is consulted, and with neither set no file is read.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("config file loaded")
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	c.Dictionary.Path = getEnv("WORDLE_DICT", c.Dictionary.Path)
	c.Dictionary.Alphabet = getEnv("WORDLE_ALPHABET", c.Dictionary.Alphabet)
	c.Game.Strategy = getEnv("WORDLE_STRATEGY", c.Game.Strategy)
	c.Game.Oracle = getEnv("WORDLE_ORACLE", c.Game.Oracle)
	c.Simulate.DailySalt = getEnv("WORDLE_DAILY_SALT", c.Simulate.DailySalt)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	var err error
	if c.Dictionary.Length, err = envInt("WORDLE_LENGTH", c.Dictionary.Length); err != nil {
		return err
	}
	if c.Game.Attempts, err = envInt("WORDLE_ATTEMPTS", c.Game.Attempts); err != nil {
		return err
	}
	if c.Simulate.Games, err = envInt("WORDLE_GAMES", c.Simulate.Games); err != nil {
		return err
	}
	if v := os.Getenv("WORDLE_SEED"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("WORDLE_SEED: %w", err)
		}
		c.Simulate.Seed = n
	}
	return nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Dictionary.Length < 1 {
		return fmt.Errorf("word length must be positive, got %d", c.Dictionary.Length)
	}
	if c.Game.Attempts < 1 {
		return fmt.Errorf("attempts must be positive, got %d", c.Game.Attempts)
	}
	if c.Simulate.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Simulate.Games)
	}
	if _, err := words.AlphabetByName(c.Dictionary.Alphabet); err != nil {
		return err
	}
	if _, err := solver.ParseStrategy(c.Game.Strategy); err != nil {
		return err
	}
	if _, err := game.OracleByName(c.Game.Oracle); err != nil {
		return err
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, returning def if unset/empty.
func envInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
