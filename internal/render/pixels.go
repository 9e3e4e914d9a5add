package render

import "conway/internal/life"

// fillCellsRGBA converts cells into one RGBA pixel each. buf must hold at
// least 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []life.Cell, p Palette) {
	for i, c := range cells {
		col := p.Dead
		if c == life.Alive {
			col = p.Alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
