package masonry

import (
	"errors"
	"math"
	"testing"
)

func square(n float64) Item {
	return Item{Width: n, Height: n}
}

func TestPacker_PlacesIntoShortestColumn(t *testing.T) {
	p := NewPacker(3, 100, 10, 0)

	// Four square items: the first three fill the row, the fourth wraps
	// back to column 0.
	var placements []Placement
	for i := 0; i < 4; i++ {
		pl, err := p.Place(square(100))
		if err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		placements = append(placements, pl)
	}

	wantX := []float64{0, 110, 220, 0}
	wantY := []float64{0, 0, 0, 110}
	for i, pl := range placements {
		if pl.X != wantX[i] || pl.Y != wantY[i] {
			t.Errorf("placement %d = (%v, %v), want (%v, %v)", i, pl.X, pl.Y, wantX[i], wantY[i])
		}
		if pl.Width != 100 || pl.Height != 100 {
			t.Errorf("placement %d size = %vx%v, want 100x100", i, pl.Width, pl.Height)
		}
	}
}

func TestPacker_TiesBreakTowardLowestIndex(t *testing.T) {
	p := NewPacker(4, 50, 0, 0)

	// All columns start at zero height: every tie must resolve to the
	// first matching column, in order.
	for i := 0; i < 4; i++ {
		pl, err := p.Place(square(50))
		if err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		if want := float64(i) * 50; pl.X != want {
			t.Errorf("placement %d X = %v, want %v", i, pl.X, want)
		}
	}
}

func TestPacker_HeightScalesWithAspectRatio(t *testing.T) {
	p := NewPacker(1, 200, 0, 0)

	pl, err := p.Place(Item{Width: 400, Height: 300})
	if err != nil {
		t.Fatal(err)
	}
	if pl.Height != 150 {
		t.Errorf("height = %v, want 150 (= round(200*300/400))", pl.Height)
	}
}

func TestPacker_DerivedHeightIsRounded(t *testing.T) {
	p := NewPacker(1, 100, 0, 0)

	pl, err := p.Place(Item{Width: 300, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if pl.Height != 33 {
		t.Errorf("height = %v, want 33 (= round(100/3))", pl.Height)
	}
}

func TestPacker_SkipsItemsWithoutDimensions(t *testing.T) {
	p := NewPacker(2, 100, 0, 0)

	for _, item := range []Item{{}, {Width: 100}, {Height: 100}} {
		if _, err := p.Place(item); !errors.Is(err, ErrMissingDimensions) {
			t.Errorf("Place(%+v) err = %v, want ErrMissingDimensions", item, err)
		}
	}
	for _, h := range p.Heights() {
		if h != 0 {
			t.Error("skipped items must not change column heights")
		}
	}
}

func TestPacker_RejectsUnusableDerivedHeights(t *testing.T) {
	p := NewPacker(1, 100, 0, 0)

	cases := []Item{
		{Width: math.Inf(1), Height: 100},
		{Width: 100, Height: 0.001}, // rounds to zero
	}
	for _, item := range cases {
		if _, err := p.Place(item); !errors.Is(err, ErrInvalidHeight) {
			t.Errorf("Place(%+v) err = %v, want ErrInvalidHeight", item, err)
		}
	}
}

func TestPacker_SpacingAccumulatesIntoColumnHeights(t *testing.T) {
	p := NewPacker(2, 100, 10, 0)

	p.Place(square(100)) // column 0 -> 110
	p.Place(square(100)) // column 1 -> 110
	p.Place(square(100)) // column 0 -> 220

	heights := p.Heights()
	if heights[0] != 220 || heights[1] != 110 {
		t.Errorf("heights = %v, want [220 110]", heights)
	}
	if p.TallestColumn() != 220 {
		t.Errorf("tallest = %v, want 220", p.TallestColumn())
	}
}

func TestPacker_PaddingLeftOffsetsX(t *testing.T) {
	p := NewPacker(2, 100, 10, 24)

	first, _ := p.Place(square(100))
	second, _ := p.Place(square(100))

	if first.X != 24 {
		t.Errorf("first X = %v, want 24", first.X)
	}
	if second.X != 24+110 {
		t.Errorf("second X = %v, want 134", second.X)
	}
}

func TestPacker_ColumnCountIsFixed(t *testing.T) {
	p := NewPacker(3, 100, 0, 0)

	if p.Columns() != 3 || len(p.Heights()) != 3 {
		t.Fatal("column count must equal the configured count")
	}
	p.Reset(80)
	if p.Columns() != 3 || len(p.Heights()) != 3 {
		t.Fatal("Reset must never change the column count")
	}
	if p.ColumnWidth() != 80 {
		t.Errorf("column width after Reset = %v, want 80", p.ColumnWidth())
	}
}

func TestPacker_ReplayIsDeterministic(t *testing.T) {
	items := []Item{
		{Width: 100, Height: 150},
		{Width: 100, Height: 60},
		{Width: 100, Height: 220},
		{Width: 100, Height: 90},
		{Width: 100, Height: 40},
		{Width: 100, Height: 130},
	}

	run := func() []Placement {
		p := NewPacker(3, 100, 8, 4)
		var out []Placement
		for _, it := range items {
			pl, err := p.Place(it)
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, pl)
		}
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("placement %d differs between replays: %+v vs %+v", i, first[i], second[i])
		}
	}
}
