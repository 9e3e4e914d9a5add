//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridLines draws cell borders over the board. The lines are rasterized once
// into a cached image and redrawn only when the screen size changes.
type GridLines struct {
	rows, cols int
	cellSize   int
	offsetY    int
	color      color.RGBA
	visible    bool

	img *ebiten.Image
}

// NewGridLines constructs a visible overlay for a rows×cols board drawn at offsetY.
func NewGridLines(rows, cols, cellSize, offsetY int, clr color.RGBA) *GridLines {
	return &GridLines{rows: rows, cols: cols, cellSize: cellSize, offsetY: offsetY, color: clr, visible: true}
}

// Update toggles visibility on the G key.
func (g *GridLines) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.visible = !g.visible
	}
}

// Draw renders the overlay onto screen.
func (g *GridLines) Draw(screen *ebiten.Image) {
	if !g.visible || g.cellSize < 3 {
		return
	}
	w, h := g.cols*g.cellSize, g.rows*g.cellSize
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = ebiten.NewImage(w, h)
		for x := 0; x <= w; x += g.cellSize {
			vector.StrokeLine(g.img, float32(x), 0, float32(x), float32(h), 1, g.color, false)
		}
		for y := 0; y <= h; y += g.cellSize {
			vector.StrokeLine(g.img, 0, float32(y), float32(w), float32(y), 1, g.color, false)
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(g.offsetY))
	screen.DrawImage(g.img, op)
}
