//go:build ebiten

package render

import (
	"conway/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the board and draws it
// scaled up to the cell size.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows×cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Draw uploads cells and draws the board at (0, offsetY) with the given cell size.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []life.Cell, p Palette, cellSize, offsetY int) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillCellsRGBA(gp.buf, cells, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	op.GeoM.Translate(0, float64(offsetY))
	dst.DrawImage(gp.img, op)
}
