package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"venturequest/backend"
	"venturequest/internal/config"
	"venturequest/internal/observability"
	"venturequest/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	serverURL := flag.String("server", "", "backend base URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *serverURL != "" {
		cfg.Backend.BaseURL = *serverURL
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	client := backend.New(cfg.Backend.BaseURL, logger.Named("backend"))
	client.SetTimeout(cfg.Backend.Timeout)

	manager := scene.New(logger.Named("scene"), client,
		cfg.Window.Width, cfg.Window.Height, cfg.Audio.Enabled)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	logger.Info("starting",
		zap.String("server", cfg.Backend.BaseURL),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	if err := ebiten.RunGame(manager); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
