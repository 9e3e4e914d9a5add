package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Rows            int
	Cols            int
	CellSize        int
	StatusBarHeight int
	TPS             int
	GPS             int
	Seed            int64
	LogLevel        string
	LogFormat       string
}

// NewConfig returns a Config populated with the reference defaults: a 60×80
// board of 10px cells under a 40px status bar, stepping 10 generations per second.
func NewConfig() *Config {
	return &Config{
		Rows:            60,
		Cols:            80,
		CellSize:        10,
		StatusBarHeight: 40,
		TPS:             60,
		GPS:             10,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.StatusBarHeight, "status-height", c.StatusBarHeight, "status bar height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame loop ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 derives one from the clock)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// Validate normalizes string options and checks every field.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.StatusBarHeight < 0:
		return fmt.Errorf("%w: status bar height must not be negative, got %d", ErrInvalidConfig, c.StatusBarHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.GPS <= 0:
		return fmt.Errorf("%w: gps must be positive, got %d", ErrInvalidConfig, c.GPS)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Layout derives the screen geometry.
func (c *Config) Layout() Layout {
	return Layout{
		Rows:            c.Rows,
		Cols:            c.Cols,
		CellSize:        c.CellSize,
		StatusBarHeight: c.StatusBarHeight,
	}
}

// Parse binds c to a new FlagSet named name and parses args. A help request is
// returned as flag.ErrHelp.
func (c *Config) Parse(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.Validate()
}
