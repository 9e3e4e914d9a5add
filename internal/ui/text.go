//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var face = basicfont.Face7x13

const faceHeight = 13

// textWidth returns the pixel width of s drawn at the given scale.
func textWidth(s string, scale float64) int {
	return int(float64(text.BoundString(face, s).Dx()) * scale)
}

// drawText draws s with its top-left corner at (x, y), magnified by scale.
func drawText(dst *ebiten.Image, s string, x, y int, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y)+faceHeight*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}

// drawCentered draws s horizontally centered on dst with its top at y.
func drawCentered(dst *ebiten.Image, s string, y int, scale float64, clr color.Color) {
	x := (dst.Bounds().Dx() - textWidth(s, scale)) / 2
	drawText(dst, s, x, y, scale, clr)
}
