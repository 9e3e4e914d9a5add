package render

import (
	"image/color"
	"testing"

	"conway/internal/life"

	"github.com/google/go-cmp/cmp"
)

func TestFillCellsRGBA(t *testing.T) {
	p := Palette{
		Alive: color.RGBA{R: 1, G: 2, B: 3, A: 4},
		Dead:  color.RGBA{R: 9, G: 8, B: 7, A: 6},
	}
	cells := []life.Cell{life.Alive, life.Dead, life.Dead, life.Alive}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells, p)

	want := []byte{
		1, 2, 3, 4,
		9, 8, 7, 6,
		9, 8, 7, 6,
		1, 2, 3, 4,
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultPaletteIsOpaque(t *testing.T) {
	p := DefaultPalette()
	for name, c := range map[string]color.RGBA{"alive": p.Alive, "dead": p.Dead, "grid": p.Grid} {
		if c.A != 255 {
			t.Fatalf("%s color alpha = %d, want 255", name, c.A)
		}
	}
	if p.Alive == p.Dead {
		t.Fatal("alive and dead colors must differ")
	}
}
