//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"conway/internal/app"
	"conway/internal/life"
	"conway/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := app.NewConfig()
	if err := cfg.Parse("life", args); err != nil {
		return err
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	engine := life.NewEngine(cfg.Rows, cfg.Cols, cfg.Seed)
	logger.Info("engine ready", "rows", engine.Rows(), "cols", engine.Cols(), "seed", engine.Seed())

	layout := cfg.Layout()
	game := app.New(session.New(engine, logger), layout, cfg.GPS)

	w, h := layout.ScreenSize()
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("window closed")
	return nil
}
