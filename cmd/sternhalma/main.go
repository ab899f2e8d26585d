package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"sternhalma_go/internal/assets"
	"sternhalma_go/internal/config"
	"sternhalma_go/internal/logging"
	"sternhalma_go/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", true)
		log.Fatal().Err(err).Msg("load config")
	}
	flag.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	var ctx *audio.Context
	if !*mute {
		ctx = audio.NewContext(assets.SampleRate)
	}
	screen := ui.NewGameScreen(ctx)
	ebiten.SetTPS(30)
	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Sternhalma")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}

// go build -ldflags="-s -w" -o sternhalma ./cmd/sternhalma
