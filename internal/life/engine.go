package life

import (
	"math/rand/v2"

	"conway/internal/core"
)

// Engine owns a grid exclusively. All writes go through Step, Clear,
// Randomize and SetCell; reads go through the accessors below.
type Engine struct {
	cur  *Grid
	nxt  *Grid
	rng  *rand.Rand
	seed int64
}

// NewEngine returns an all-dead engine of rows×cols whose Randomize draws from a
// generator seeded with seed. A zero seed is replaced by a time-derived one.
func NewEngine(rows, cols int, seed int64) *Engine {
	cur := NewGrid(rows, cols)
	e := &Engine{cur: cur, nxt: NewGrid(cur.rows, cur.cols)}
	e.Reseed(seed)
	return e
}

// Reseed replaces the random source used by Randomize.
func (e *Engine) Reseed(seed int64) {
	e.seed = core.SeedOrNow(seed)
	e.rng = core.NewRand(e.seed)
}

// Seed returns the seed of the current random source.
func (e *Engine) Seed() int64 { return e.seed }

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.cur.rows }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.cur.cols }

// At returns the state of (row, col); out-of-range reads are Dead.
func (e *Engine) At(row, col int) Cell { return e.cur.At(row, col) }

// Population counts live cells in the current generation.
func (e *Engine) Population() int { return e.cur.Population() }

// Cells exposes the current generation for renderers. Callers must not modify
// the slice, and it is only valid until the next Step.
func (e *Engine) Cells() []Cell { return e.cur.cells }

// Snapshot returns a copy of the current generation.
func (e *Engine) Snapshot() *Grid { return e.cur.Clone() }

// CountLiveNeighbors counts live neighbors of (row, col) with toroidal wrap.
func (e *Engine) CountLiveNeighbors(row, col int) int {
	return CountLiveNeighbors(e.cur, row, col)
}

// Step advances the grid by one generation.
func (e *Engine) Step() {
	// Both buffers are allocated with the same dimensions.
	_ = StepInto(e.nxt, e.cur)
	e.cur, e.nxt = e.nxt, e.cur
}

// Clear kills every cell.
func (e *Engine) Clear() { e.cur.Fill(Dead) }

// Randomize sets every cell to Alive or Dead with equal probability.
func (e *Engine) Randomize() {
	for i := range e.cur.cells {
		e.cur.cells[i] = Cell(e.rng.IntN(2))
	}
}

// SetCell writes one cell. Out-of-range coordinates are ignored and reported
// by a false return.
func (e *Engine) SetCell(row, col int, c Cell) bool {
	return e.cur.Set(row, col, c)
}
