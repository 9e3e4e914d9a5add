package life

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when a destination grid does not match its source.
	ErrSizeMismatch = errors.New("grid size mismatch")
	// ErrEmptyGrid is returned when parsing input without any rows.
	ErrEmptyGrid = errors.New("empty grid")
)

// CountLiveNeighbors sums the eight cells around (row, col), wrapping both axes.
// row and col must be valid indices into g.
func CountLiveNeighbors(g *Grid, row, col int) int {
	rows, cols := g.rows, g.cols
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + rows) % rows
			c := (col + dc + cols) % cols
			n += int(g.cells[r*cols+c])
		}
	}
	return n
}

// Next applies the B3/S23 rule to a single cell given its neighbor count.
func Next(c Cell, neighbors int) Cell {
	if neighbors == 3 || (c == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}

// Step returns the next generation of g. The input is not modified.
func Step(g *Grid) *Grid {
	out := NewGrid(g.rows, g.cols)
	// Dimensions match by construction.
	_ = StepInto(out, g)
	return out
}

// StepInto writes the next generation of src into dst. Every cell is computed
// from src alone, so dst must not alias src.
func StepInto(dst, src *Grid) error {
	if dst.rows != src.rows || dst.cols != src.cols {
		return fmt.Errorf("step %dx%d into %dx%d: %w", src.rows, src.cols, dst.rows, dst.cols, ErrSizeMismatch)
	}
	for r := 0; r < src.rows; r++ {
		for c := 0; c < src.cols; c++ {
			idx := r*src.cols + c
			dst.cells[idx] = Next(src.cells[idx], CountLiveNeighbors(src, r, c))
		}
	}
	return nil
}
