// Package sweep runs many seeded random soups headlessly and reports how each
// one settles. Runs are independent, so they execute in parallel, each on its
// own engine.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"runtime"

	"conway/internal/life"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidOptions is wrapped by option validation failures.
var ErrInvalidOptions = errors.New("invalid sweep options")

// Options configures a sweep.
type Options struct {
	Rows        int
	Cols        int
	Runs        int
	Seed        int64
	Generations int

	// Window is how many past generations are remembered when looking for a
	// repeat. It bounds the longest detectable period.
	Window int

	Workers int
	Logger  *slog.Logger
}

// DefaultOptions mirrors the interactive board size.
func DefaultOptions() Options {
	return Options{
		Rows:        60,
		Cols:        80,
		Runs:        32,
		Seed:        1,
		Generations: 2000,
		Window:      16,
		Workers:     runtime.NumCPU(),
	}
}

func (o *Options) validate() error {
	switch {
	case o.Rows <= 0 || o.Cols <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidOptions, o.Rows, o.Cols)
	case o.Runs <= 0:
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidOptions, o.Runs)
	case o.Generations < 0:
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalidOptions, o.Generations)
	case o.Window <= 0:
		return fmt.Errorf("%w: window must be positive, got %d", ErrInvalidOptions, o.Window)
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// Result describes one soup.
type Result struct {
	Seed int64

	// Generations is the number of steps applied before the run stopped.
	Generations int
	Population  int
	Stabilized  bool

	// Period is 1 for a still life and >1 for an oscillator; 0 when the run
	// did not stabilize.
	Period int
}

// Run simulates opts.Runs soups seeded opts.Seed, opts.Seed+1, ... and returns
// results ordered by seed. Cancelling ctx stops outstanding runs.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.Logger.Info("sweep started", "runs", opts.Runs, "rows", opts.Rows, "cols", opts.Cols,
		"generations", opts.Generations, "workers", opts.Workers)

	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			res, err := Simulate(ctx, opts.Rows, opts.Cols, seed, opts.Generations, opts.Window)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			opts.Logger.Debug("run finished", "seed", seed, "generations", res.Generations,
				"population", res.Population, "period", res.Period)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Simulate randomizes a rows×cols board from seed and steps it until it
// repeats one of the last window generations or generations is reached.
func Simulate(ctx context.Context, rows, cols int, seed int64, generations, window int) (Result, error) {
	if window <= 0 {
		window = 1
	}
	e := life.NewEngine(rows, cols, seed)
	e.Randomize()

	h := newHistory(window)
	h.push(e.Snapshot())
	res := Result{Seed: seed}
	for res.Generations < generations {
		if res.Generations%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		e.Step()
		res.Generations++
		snap := e.Snapshot()
		if period := h.match(snap); period > 0 {
			res.Stabilized = true
			res.Period = period
			break
		}
		h.push(snap)
	}
	res.Population = e.Population()
	return res, nil
}

// history is a ring of recent generations with their hashes.
type history struct {
	grids  []*life.Grid
	hashes []uint64
	next   int
	size   int
}

func newHistory(n int) *history {
	return &history{grids: make([]*life.Grid, n), hashes: make([]uint64, n)}
}

func (h *history) push(g *life.Grid) {
	h.grids[h.next] = g
	h.hashes[h.next] = hashGrid(g)
	h.next = (h.next + 1) % len(h.grids)
	if h.size < len(h.grids) {
		h.size++
	}
}

// match returns how many generations back g last appeared, or 0.
func (h *history) match(g *life.Grid) int {
	sum := hashGrid(g)
	for back := 1; back <= h.size; back++ {
		idx := (h.next - back + len(h.grids)) % len(h.grids)
		if h.hashes[idx] == sum && h.grids[idx].Equal(g) {
			return back
		}
	}
	return 0
}

func hashGrid(g *life.Grid) uint64 {
	f := fnv.New64a()
	cells := g.Cells()
	buf := make([]byte, len(cells))
	for i, c := range cells {
		buf[i] = byte(c)
	}
	f.Write(buf)
	return f.Sum64()
}

// Summary aggregates a set of results.
type Summary struct {
	Runs            int
	Stabilized      int
	MeanPopulation  float64
	MeanGenerations float64

	// Periods counts stabilized runs by period.
	Periods map[int]int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Periods: map[int]int{}}
	if len(results) == 0 {
		return s
	}
	var pop, gens int
	for _, r := range results {
		pop += r.Population
		gens += r.Generations
		if r.Stabilized {
			s.Stabilized++
			s.Periods[r.Period]++
		}
	}
	s.MeanPopulation = float64(pop) / float64(len(results))
	s.MeanGenerations = float64(gens) / float64(len(results))
	return s
}
