// Package focus implements spatial keyboard navigation over an irregular
// 2-D arrangement of placed elements: a per-render spatial index, a
// directional nearest-neighbor navigator, and a bridge that hands focus
// between grid sections stacked in one scroll region.
//
// The package depends only on placement geometry. Elements are tracked by
// opaque handles (typically the host's element pointers), so the navigator
// stays pure and unit-testable without a live UI tree.
package focus

import "github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/geometry"

// edgeTolerance is the slack, in layout units, when deciding whether an
// element sits on a global edge of the arrangement. Masonry columns rarely
// line up exactly, so exact comparison would miss real edge members.
const edgeTolerance = 2.0

// Entry is one element handed to the index builder.
type Entry struct {
	// Handle identifies the element. The navigator reports it back on a
	// successful move and looks elements up by it.
	Handle any
	// Bounds is the element's placed bounding rectangle.
	Bounds geometry.Rect
}

// Record is the derived per-element geometry the navigator consults.
type Record struct {
	Handle any

	CenterX float64
	CenterY float64
	X1, Y1  float64
	X2, Y2  float64

	IsTopEdge    bool
	IsBottomEdge bool
	IsLeftEdge   bool
	IsRightEdge  bool
}

// Bounds returns the record's bounding rectangle.
func (r *Record) Bounds() geometry.Rect {
	return geometry.Rect{Left: r.X1, Top: r.Y1, Right: r.X2, Bottom: r.Y2}
}

// Index is the spatial index over one completed render pass. It is rebuilt
// wholesale after every pass rather than maintained incrementally; the
// O(n) rebuild is intentionally simple over incrementally-correct.
type Index struct {
	records  []*Record
	byHandle map[any]*Record
}

// BuildIndex derives records, global extremes, and edge flags for every
// entry in one O(n) scan pair.
func BuildIndex(entries []Entry) *Index {
	idx := &Index{
		records:  make([]*Record, 0, len(entries)),
		byHandle: make(map[any]*Record, len(entries)),
	}

	var minX, minY, maxX, maxY float64
	for i, e := range entries {
		center := e.Bounds.Center()
		rec := &Record{
			Handle:  e.Handle,
			CenterX: center.X,
			CenterY: center.Y,
			X1:      e.Bounds.Left,
			Y1:      e.Bounds.Top,
			X2:      e.Bounds.Right,
			Y2:      e.Bounds.Bottom,
		}
		idx.records = append(idx.records, rec)
		idx.byHandle[e.Handle] = rec

		if i == 0 {
			minX, minY, maxX, maxY = rec.X1, rec.Y1, rec.X2, rec.Y2
			continue
		}
		minX = min(minX, rec.X1)
		minY = min(minY, rec.Y1)
		maxX = max(maxX, rec.X2)
		maxY = max(maxY, rec.Y2)
	}

	for _, rec := range idx.records {
		rec.IsTopEdge = rec.Y1-minY <= edgeTolerance
		rec.IsBottomEdge = maxY-rec.Y2 <= edgeTolerance
		rec.IsLeftEdge = rec.X1-minX <= edgeTolerance
		rec.IsRightEdge = maxX-rec.X2 <= edgeTolerance
	}

	return idx
}

// Lookup returns the record for a handle, if the element was indexed in
// the latest pass.
func (idx *Index) Lookup(handle any) (*Record, bool) {
	if idx == nil {
		return nil, false
	}
	rec, ok := idx.byHandle[handle]
	return rec, ok
}

// Records returns the indexed records in insertion order.
func (idx *Index) Records() []*Record {
	if idx == nil {
		return nil
	}
	return idx.records
}

// Len returns the number of indexed elements.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}
