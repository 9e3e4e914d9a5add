//go:build ebiten

package app

import (
	"conway/internal/core"
	"conway/internal/life"
	"conway/internal/render"
	"conway/internal/session"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd session.Command
}{
	{ebiten.KeySpace, session.CmdSelect},
	{ebiten.KeyEscape, session.CmdBack},
	{ebiten.KeyC, session.CmdClear},
	{ebiten.KeyR, session.CmdRandomize},
	{ebiten.KeyN, session.CmdStep},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	layout  Layout
	palette render.Palette
	pacer   *core.FixedStep

	painter *render.GridPainter
	menu    *ui.Menu
	status  *ui.StatusBar
	lines   *ui.GridLines
}

// New constructs a Game for the provided session. gps sets how many
// generations are applied per second while running.
func New(s *session.Session, layout Layout, gps int) *Game {
	palette := render.DefaultPalette()
	return &Game{
		session: s,
		layout:  layout,
		palette: palette,
		pacer:   core.NewFixedStep(gps),
		painter: render.NewGridPainter(layout.Rows, layout.Cols),
		menu:    ui.NewMenu(),
		status:  ui.NewStatusBar(layout.StatusBarHeight),
		lines:   ui.NewGridLines(layout.Rows, layout.Cols, layout.CellSize, layout.StatusBarHeight, palette.Grid),
	}
}

// Update handles per-frame input and advances the simulation at the paced rate.
func (g *Game) Update() error {
	for _, kc := range keyCommands {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		wasPaused := g.session.Paused()
		if g.session.Apply(kc.cmd) {
			return ebiten.Termination
		}
		if wasPaused && !g.session.Paused() {
			g.pacer.Reset()
		}
	}
	if g.session.Mode() != session.ModeRunning {
		return nil
	}

	g.lines.Update()
	g.handleMouse()

	if g.pacer.ShouldStep() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) handleMouse() {
	var state life.Cell
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		state = life.Alive
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		state = life.Dead
	default:
		return
	}
	row, col, ok := g.layout.CellAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	g.session.Paint(row, col, state)
}

// Draw renders the menu or the board with its status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.Mode() == session.ModeMenu {
		g.menu.Draw(screen)
		return
	}
	screen.Fill(g.palette.Dead)
	g.painter.Draw(screen, g.session.Engine().Cells(), g.palette, g.layout.CellSize, g.layout.StatusBarHeight)
	g.lines.Draw(screen)
	g.status.Draw(screen, g.session.Paused(), g.session.Generation())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.ScreenSize()
}
