// Package ui draws the menu screen, status bar and grid overlay of the GUI
// frontend. Everything except the shared control list requires the ebiten
// build tag.
package ui

// Controls lists the key and mouse bindings shown on the menu screen.
var Controls = []string{
	"Controls:",
	"Left Click - Make Cell Alive",
	"Right Click - Kill Cell",
	"Spacebar - Play / Pause",
	"N - Step Once While Paused",
	"C - Clear Board",
	"R - Randomize Grid",
	"G - Toggle Grid Lines",
	"ESC - Return to Menu / Quit",
}
