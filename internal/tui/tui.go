// Package tui is a terminal frontend over a session. Each cell is one
// character; the first line is the status bar.
package tui

import (
	"strconv"
	"strings"
	"time"

	"conway/internal/life"
	"conway/internal/session"
	"conway/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	statusLines = 1
	aliveGlyph  = "█"
	deadGlyph   = " "
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#64C864"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64C864"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C83232"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#32C832"))
	barStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#141414"))
)

type tickMsg time.Time

// Model implements tea.Model.
type Model struct {
	session  *session.Session
	interval time.Duration

	// brush is the state painted while a mouse button is held.
	brush    life.Cell
	painting bool

	width, height int
}

// New returns a model stepping gps generations per second while running.
func New(s *session.Session, gps int) Model {
	if gps <= 0 {
		gps = 10
	}
	return Model{session: s, interval: time.Second / time.Duration(gps)}
}

// Init starts the generation ticker.
func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles keys, mouse painting, ticks and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			return m, tea.Quit
		}
		if m.session.Apply(keyCommand(key)) {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tickMsg:
		m.session.Tick()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func keyCommand(key string) session.Command {
	switch key {
	case " ", "space":
		return session.CmdSelect
	case "esc":
		return session.CmdBack
	case "c", "C":
		return session.CmdClear
	case "r", "R":
		return session.CmdRandomize
	case "n", "N":
		return session.CmdStep
	default:
		return session.CmdNone
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Type {
	case tea.MouseLeft:
		m.brush, m.painting = life.Alive, true
	case tea.MouseRight:
		m.brush, m.painting = life.Dead, true
	case tea.MouseRelease:
		m.painting = false
		return m
	case tea.MouseMotion:
	default:
		return m
	}
	if !m.painting {
		return m
	}
	if row, col, ok := cellAt(msg.X, msg.Y); ok {
		m.session.Paint(row, col, m.brush)
	}
	return m
}

// cellAt maps a terminal position to a grid cell; the session rejects
// positions past the board edges.
func cellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < statusLines {
		return 0, 0, false
	}
	return y - statusLines, x, true
}

// View renders the menu or the board.
func (m Model) View() string {
	if m.session.Mode() == session.ModeMenu {
		return m.viewMenu()
	}
	return m.viewBoard()
}

func (m Model) viewMenu() string {
	lines := []string{titleStyle.Render("Conway's Game of Life"), ""}
	for _, line := range ui.Controls {
		lines = append(lines, textStyle.Render(line))
	}
	lines = append(lines, "", promptStyle.Render("Press SPACE to Start"))
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) viewBoard() string {
	e := m.session.Engine()
	cols := e.Cols()

	status := runningStyle.Render("Status: " + session.StatusRunning)
	if m.session.Paused() {
		status = pausedStyle.Render("Status: " + session.StatusPaused)
	}
	gen := textStyle.Render("Generation: " + strconv.Itoa(m.session.Generation()))
	gap := cols - lipgloss.Width(status) - lipgloss.Width(gen)
	if gap < 1 {
		gap = 1
	}

	var b strings.Builder
	b.WriteString(barStyle.Render(status + strings.Repeat(" ", gap) + gen))
	cells := e.Cells()
	for r := 0; r < e.Rows(); r++ {
		b.WriteByte('\n')
		for _, c := range cells[r*cols : (r+1)*cols] {
			if c == life.Alive {
				b.WriteString(aliveGlyph)
			} else {
				b.WriteString(deadGlyph)
			}
		}
	}
	return b.String()
}
