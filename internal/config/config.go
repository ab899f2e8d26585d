package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "STERNHALMA_LOG_LEVEL"
	EnvLogPretty    = "STERNHALMA_LOG_PRETTY"
	EnvGames        = "STERNHALMA_SELFPLAY_GAMES"
	EnvWorkers      = "STERNHALMA_SELFPLAY_WORKERS"
	EnvMaxTurns     = "STERNHALMA_SELFPLAY_MAX_TURNS"
	EnvOpeningPlies = "STERNHALMA_SELFPLAY_OPENING"
	EnvOutput       = "STERNHALMA_SELFPLAY_OUT"
	EnvSeed         = "STERNHALMA_SEED"
)

// Config holds the settings shared by the commands.
type Config struct {
	LogLevel  string
	LogPretty bool

	Games        int
	Workers      int
	MaxTurns     int
	OpeningPlies int
	Output       string
	Seed         uint64 // 0 means seed from the clock
}

// Default returns the built-in settings.
func Default() Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	return Config{
		LogLevel:     "info",
		LogPretty:    true,
		Games:        1000,
		Workers:      workers,
		MaxTurns:     600,
		OpeningPlies: 4,
		Output:       "dataset.csv",
	}
}

// Load reads the optional dotenv files (".env" when none are given) and then
// overrides Default() with any STERNHALMA_* variables that are set.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv never overwrites variables already present in the environment.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	var err error
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if cfg.LogPretty, err = boolEnv(EnvLogPretty, cfg.LogPretty); err != nil {
		return Config{}, err
	}
	if cfg.Games, err = intEnv(EnvGames, cfg.Games); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = intEnv(EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.MaxTurns, err = intEnv(EnvMaxTurns, cfg.MaxTurns); err != nil {
		return Config{}, err
	}
	if cfg.OpeningPlies, err = intEnv(EnvOpeningPlies, cfg.OpeningPlies); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	switch {
	case c.Games < 0:
		return fmt.Errorf("games must be >= 0, got %d", c.Games)
	case c.Workers < 1:
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	case c.MaxTurns < 1:
		return fmt.Errorf("max turns must be >= 1, got %d", c.MaxTurns)
	case c.OpeningPlies < 0:
		return fmt.Errorf("opening plies must be >= 0, got %d", c.OpeningPlies)
	case c.Output == "":
		return errors.New("output path is empty")
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func intEnv(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
