package life

import (
	"fmt"
	"strings"
)

// Cell is the state of one grid position.
type Cell uint8

const (
	// Dead is the quiescent state.
	Dead Cell = 0
	// Alive marks a live cell.
	Alive Cell = 1
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a fixed-size toroidal board in row-major order.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are clamped to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Wrap maps arbitrary coordinates onto the torus.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

func (g *Grid) index(row, col int) int { return row*g.cols + col }

// At returns the state at (row, col). Out-of-range coordinates read as Dead.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[g.index(row, col)]
}

// Set writes a cell and reports whether the coordinates were in bounds.
func (g *Grid) Set(row, col int, c Cell) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[g.index(row, col)] = normalize(c)
	return true
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	c = normalize(c)
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '#' for live and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[g.index(r, c)] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads the format produced by String. Blank lines and surrounding
// whitespace are ignored; every row must have the same width.
func ParseGrid(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse grid: %w", ErrEmptyGrid)
	}
	cols := len(lines[0])
	g := NewGrid(len(lines), cols)
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("parse grid: row %d has width %d, want %d", r, len(line), cols)
		}
		for c, ch := range line {
			switch ch {
			case '#', 'O', '*':
				g.cells[g.index(r, c)] = Alive
			case '.', '_':
			default:
				return nil, fmt.Errorf("parse grid: row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return g, nil
}

func normalize(c Cell) Cell {
	if c != Dead {
		return Alive
	}
	return Dead
}
