package life

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seedEngine(t *testing.T, e *Engine, pattern string) {
	t.Helper()
	g := mustParse(t, pattern)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) == Alive && !e.SetCell(r, c, Alive) {
				t.Fatalf("SetCell(%d,%d) rejected an in-bounds write", r, c)
			}
		}
	}
}

func TestEngineStepMatchesPureStep(t *testing.T) {
	e := NewEngine(12, 9, 5)
	e.Randomize()
	want := Step(e.Snapshot())
	e.Step()
	if diff := cmp.Diff(want.String(), e.Snapshot().String()); diff != "" {
		t.Fatalf("engine step differs from Step (-want +got):\n%s", diff)
	}
}

func TestEngineStepIsDeterministic(t *testing.T) {
	a := NewEngine(20, 30, 77)
	b := NewEngine(20, 30, 77)
	a.Randomize()
	b.Randomize()
	for i := 0; i < 25; i++ {
		a.Step()
		b.Step()
	}
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("identical seeds and step counts produced different grids")
	}
}

func TestEngineRandomizeUsesSeed(t *testing.T) {
	a := NewEngine(30, 40, 1)
	a.Randomize()
	first := a.Snapshot()

	a.Reseed(1)
	a.Randomize()
	if !first.Equal(a.Snapshot()) {
		t.Fatal("reseeding with the same seed should reproduce the fill")
	}

	b := NewEngine(30, 40, 2)
	b.Randomize()
	if first.Equal(b.Snapshot()) {
		t.Fatal("different seeds should produce different fills")
	}

	pop := first.Population()
	total := 30 * 40
	if pop < total/3 || pop > 2*total/3 {
		t.Fatalf("population %d of %d is far from a 50/50 fill", pop, total)
	}
	for i, c := range first.Cells() {
		if c != Alive && c != Dead {
			t.Fatalf("cell %d holds invalid state %d", i, c)
		}
	}
}

func TestEngineZeroSeedIsReplaced(t *testing.T) {
	e := NewEngine(2, 2, 0)
	if e.Seed() == 0 {
		t.Fatal("zero seed should be replaced by a time-derived seed")
	}
}

func TestEngineClear(t *testing.T) {
	e := NewEngine(8, 8, 3)
	e.Randomize()
	if e.Population() == 0 {
		t.Fatal("randomized grid unexpectedly empty")
	}
	e.Clear()
	if e.Population() != 0 {
		t.Fatalf("clear left %d live cells", e.Population())
	}
}

func TestEngineSetCellOutOfRange(t *testing.T) {
	e := NewEngine(4, 4, 9)
	seedEngine(t, e, "" +
		"#...\n" +
		"....\n" +
		"....\n" +
		"...#\n")
	before := e.Snapshot()
	for _, tc := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		if e.SetCell(tc[0], tc[1], Dead) {
			t.Fatalf("SetCell(%d,%d) accepted out-of-range coordinates", tc[0], tc[1])
		}
	}
	if !before.Equal(e.Snapshot()) {
		t.Fatal("out-of-range SetCell modified the grid")
	}
}

func TestEngineSnapshotIsCopy(t *testing.T) {
	e := NewEngine(3, 3, 4)
	snap := e.Snapshot()
	snap.Set(1, 1, Alive)
	if e.At(1, 1) != Dead {
		t.Fatal("writing to a snapshot leaked into the engine")
	}
}

func TestEngineCountLiveNeighbors(t *testing.T) {
	e := NewEngine(5, 5, 4)
	seedEngine(t, e, "" +
		"....#\n" +
		".....\n" +
		".....\n" +
		".....\n" +
		"#...#\n")
	if got := e.CountLiveNeighbors(0, 0); got != 3 {
		t.Fatalf("corner neighbors = %d, want 3", got)
	}
}
