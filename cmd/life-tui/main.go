package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"conway/internal/app"
	"conway/internal/life"
	"conway/internal/session"
	"conway/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
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
	logPath := ""
	fs := flag.NewFlagSet("life-tui", flag.ContinueOnError)
	cfg.Bind(fs)
	fs.StringVar(&logPath, "log-file", logPath, "write logs to this file (logs are discarded otherwise)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal is owned by the UI, so logs only go to an explicit file.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := app.NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	engine := life.NewEngine(cfg.Rows, cfg.Cols, cfg.Seed)
	logger.Info("engine ready", "rows", engine.Rows(), "cols", engine.Cols(), "seed", engine.Seed())

	model := tui.New(session.New(engine, logger), cfg.GPS)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	logger.Info("terminal ui closed")
	return nil
}
