package focus

import (
	"testing"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/geometry"
)

func entry(handle string, x, y, w, h float64) Entry {
	return Entry{Handle: handle, Bounds: geometry.RectFromLTWH(x, y, w, h)}
}

func TestBuildIndex_CentersAndBounds(t *testing.T) {
	idx := BuildIndex([]Entry{entry("a", 10, 20, 100, 40)})

	rec, ok := idx.Lookup("a")
	if !ok {
		t.Fatal("indexed element must be found")
	}
	if rec.CenterX != 60 || rec.CenterY != 40 {
		t.Errorf("center = (%v, %v), want (60, 40)", rec.CenterX, rec.CenterY)
	}
	if rec.X1 != 10 || rec.Y1 != 20 || rec.X2 != 110 || rec.Y2 != 60 {
		t.Errorf("bounds = (%v,%v,%v,%v)", rec.X1, rec.Y1, rec.X2, rec.Y2)
	}
}

func TestBuildIndex_EdgeFlagsWithTolerance(t *testing.T) {
	// Three columns; the middle column starts 1.5 units lower, which is
	// within the 2-unit tolerance, so it still counts as the top row.
	idx := BuildIndex([]Entry{
		entry("left", 0, 0, 50, 80),
		entry("mid", 60, 1.5, 50, 30),
		entry("right", 120, 0, 50, 80),
		entry("mid2", 60, 36.5, 50, 43.5),
	})

	cases := []struct {
		handle                           string
		top, bottom, leftEdge, rightEdge bool
	}{
		{"left", true, true, true, false},
		{"mid", true, false, false, false},
		{"right", true, true, false, true},
		{"mid2", false, true, false, false},
	}
	for _, tc := range cases {
		rec, ok := idx.Lookup(tc.handle)
		if !ok {
			t.Fatalf("%s not indexed", tc.handle)
		}
		if rec.IsTopEdge != tc.top || rec.IsBottomEdge != tc.bottom ||
			rec.IsLeftEdge != tc.leftEdge || rec.IsRightEdge != tc.rightEdge {
			t.Errorf("%s edges = top=%v bottom=%v left=%v right=%v, want top=%v bottom=%v left=%v right=%v",
				tc.handle, rec.IsTopEdge, rec.IsBottomEdge, rec.IsLeftEdge, rec.IsRightEdge,
				tc.top, tc.bottom, tc.leftEdge, tc.rightEdge)
		}
	}
}

func TestBuildIndex_EmptyAndNilLookups(t *testing.T) {
	idx := BuildIndex(nil)
	if idx.Len() != 0 {
		t.Errorf("empty index Len = %d", idx.Len())
	}
	if _, ok := idx.Lookup("missing"); ok {
		t.Error("lookup on empty index must fail")
	}

	var nilIdx *Index
	if _, ok := nilIdx.Lookup("missing"); ok {
		t.Error("lookup on nil index must fail")
	}
	if nilIdx.Len() != 0 {
		t.Error("nil index must report zero length")
	}
}
