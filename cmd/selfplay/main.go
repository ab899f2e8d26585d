package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"sternhalma_go/internal/config"
	"sternhalma_go/internal/logging"
	"sternhalma_go/internal/selfplay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", true)
		log.Fatal().Err(err).Msg("load config")
	}

	// ───── flags override env ─────
	flag.IntVar(&cfg.Games, "n", cfg.Games, "number of games")
	flag.IntVar(&cfg.Workers, "w", cfg.Workers, "parallel workers")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn cap per game")
	flag.IntVar(&cfg.OpeningPlies, "opening", cfg.OpeningPlies, "unrecorded random opening plies")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "CSV dataset file")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = clock)")
	flag.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	flag.Parse()

	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	// ───── repair a dataset left by an interrupted run ─────
	kept, err := selfplay.RepairCSV(cfg.Output, selfplay.Columns)
	if err != nil {
		log.Fatal().Err(err).Msg("repair dataset")
	}
	if kept > 0 {
		log.Info().Int("rows", kept).Str("file", cfg.Output).Msg("appending to existing dataset")
	}

	f, err := os.OpenFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Msg("open dataset")
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = selfplay.Run(ctx, selfplay.Options{
		Games:        cfg.Games,
		Workers:      cfg.Workers,
		MaxTurns:     cfg.MaxTurns,
		OpeningPlies: cfg.OpeningPlies,
		Seed:         cfg.Seed,
	}, selfplay.NewWriter(f))
	if err != nil {
		log.Error().Err(err).Msg("self-play stopped early")
	}
}

// go build -ldflags="-s -w" -o selfplay ./cmd/selfplay
