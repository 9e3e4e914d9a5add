//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	menuTitleY       = 100
	menuControlsY    = 250
	menuControlsStep = 36
)

var (
	menuBackground = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	menuHighlight  = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	menuText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Menu draws the title screen.
type Menu struct {
	Title  string
	Prompt string
}

// NewMenu returns the default title screen.
func NewMenu() *Menu {
	return &Menu{Title: "Conway's Game of Life", Prompt: "Press SPACE to Start"}
}

// Draw paints the whole screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	drawCentered(screen, m.Title, menuTitleY, 4, menuHighlight)
	y := menuControlsY
	for _, line := range Controls {
		drawCentered(screen, line, y, 2, menuText)
		y += menuControlsStep
	}
	drawCentered(screen, m.Prompt, y+menuControlsStep/2, 2, menuHighlight)
}
