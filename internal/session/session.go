// Package session holds the host-loop state shared by every frontend: the
// menu/running mode, the pause flag and the generation counter. Frontends
// translate input into the commands below and never touch the grid directly.
package session

import (
	"io"
	"log/slog"

	"conway/internal/life"
)

// Mode is the top-level screen the host loop is showing.
type Mode int

const (
	// ModeMenu shows the title and controls screen.
	ModeMenu Mode = iota
	// ModeRunning shows the grid and accepts editing commands.
	ModeRunning
)

// String returns a lowercase name for logging.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Status labels shown by frontends.
const (
	StatusPaused  = "PAUSED"
	StatusRunning = "RUNNING"
)

// Session drives a life.Engine on behalf of a frontend.
type Session struct {
	engine     *life.Engine
	logger     *slog.Logger
	mode       Mode
	paused     bool
	generation int
}

// New returns a session in menu mode. A nil logger discards output.
func New(engine *life.Engine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{engine: engine, logger: logger, mode: ModeMenu, paused: true}
}

// Engine exposes the engine for rendering.
func (s *Session) Engine() *life.Engine { return s.engine }

// Mode returns the current screen.
func (s *Session) Mode() Mode { return s.mode }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Generation returns the number of steps applied since the last reset.
func (s *Session) Generation() int { return s.generation }

// Status returns StatusPaused or StatusRunning.
func (s *Session) Status() string {
	if s.paused {
		return StatusPaused
	}
	return StatusRunning
}

// Start leaves the menu and begins a fresh, paused session on a cleared grid.
func (s *Session) Start() bool {
	if s.mode != ModeMenu {
		return false
	}
	s.mode = ModeRunning
	s.paused = true
	s.generation = 0
	s.engine.Clear()
	s.logger.Info("session started", "rows", s.engine.Rows(), "cols", s.engine.Cols())
	return true
}

// Menu returns to the menu screen. The grid is discarded on the next Start.
func (s *Session) Menu() bool {
	if s.mode != ModeRunning {
		return false
	}
	s.mode = ModeMenu
	s.logger.Info("returned to menu", "generation", s.generation, "population", s.engine.Population())
	return true
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause() bool {
	if s.mode != ModeRunning {
		return false
	}
	s.paused = !s.paused
	s.logger.Debug("pause toggled", "status", s.Status(), "generation", s.generation)
	return true
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() bool {
	if s.mode != ModeRunning {
		return false
	}
	s.engine.Clear()
	s.generation = 0
	s.logger.Debug("grid cleared")
	return true
}

// Randomize refills the grid with a 50/50 soup and resets the generation counter.
func (s *Session) Randomize() bool {
	if s.mode != ModeRunning {
		return false
	}
	s.engine.Randomize()
	s.generation = 0
	s.logger.Debug("grid randomized", "population", s.engine.Population())
	return true
}

// Paint sets one cell. It reports false in menu mode or for out-of-range cells.
func (s *Session) Paint(row, col int, c life.Cell) bool {
	if s.mode != ModeRunning {
		return false
	}
	return s.engine.SetCell(row, col, c)
}

// Tick advances one generation when running and not paused.
func (s *Session) Tick() bool {
	if s.mode != ModeRunning || s.paused {
		return false
	}
	s.advance()
	return true
}

// StepOnce advances exactly one generation while paused.
func (s *Session) StepOnce() bool {
	if s.mode != ModeRunning || !s.paused {
		return false
	}
	s.advance()
	s.logger.Debug("single step", "generation", s.generation)
	return true
}

func (s *Session) advance() {
	s.engine.Step()
	s.generation++
}
