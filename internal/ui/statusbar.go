//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	statusPadding = 10
	statusScale   = 2
)

var (
	statusBackground = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	statusPaused     = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	statusRunning    = color.RGBA{R: 50, G: 200, B: 50, A: 255}
	statusText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// StatusBar paints the run state and generation counter across the top of
// the screen.
type StatusBar struct {
	height int
}

// NewStatusBar constructs a status bar of the given pixel height.
func NewStatusBar(height int) *StatusBar {
	if height < 0 {
		height = 0
	}
	return &StatusBar{height: height}
}

// Draw paints the bar. paused selects the status label and its color.
func (s *StatusBar) Draw(screen *ebiten.Image, paused bool, generation int) {
	if s.height == 0 {
		return
	}
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(s.height), statusBackground, false)

	label, clr := "Status: RUNNING", statusRunning
	if paused {
		label, clr = "Status: PAUSED", statusPaused
	}
	top := (s.height - faceHeight*statusScale) / 2
	if top < 0 {
		top = 0
	}
	drawText(screen, label, statusPadding, top, statusScale, clr)

	gen := "Generation: " + strconv.Itoa(generation)
	drawText(screen, gen, width-statusPadding-textWidth(gen, statusScale), top, statusScale, statusText)
}
