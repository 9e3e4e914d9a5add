package render

import "image/color"

// Palette holds the colors used to draw the board.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// DefaultPalette returns white live cells on a black board with dark grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Grid:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
	}
}
