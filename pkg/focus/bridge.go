package focus

import "math"

// Bridge selects entry points into one grid section when focus arrives
// from outside: the first row when entering from above, the per-column
// bottoms when entering from below. Supplying the horizontal center the
// focus left from preserves approximate horizontal position across the
// section boundary.
type Bridge struct {
	index    func() *Index
	onFocus  func(handle any)
	viewport Viewport
}

// NewBridge returns a bridge over the index produced by index(). The
// function is called on every entry so the bridge always sees the latest
// render pass. viewport may be nil.
func NewBridge(index func() *Index, onFocus func(handle any), viewport Viewport) *Bridge {
	return &Bridge{index: index, onFocus: onFocus, viewport: viewport}
}

// FocusFirst focuses the element in the section's first row whose center X
// is closest to targetCenterX. With no target it falls back to the first
// element overall. It reports whether anything received focus.
func (b *Bridge) FocusFirst(targetCenterX ...float64) bool {
	idx := b.index()
	if idx.Len() == 0 {
		return false
	}
	records := idx.Records()

	if len(targetCenterX) == 0 {
		b.focus(records[0].Handle)
		return true
	}
	x := targetCenterX[0]

	var best *Record
	bestDelta := math.MaxFloat64
	for _, rec := range records {
		if !rec.IsTopEdge {
			continue
		}
		delta := math.Abs(rec.CenterX - x)
		if delta < bestDelta {
			bestDelta = delta
			best = rec
		}
	}
	if best == nil {
		best = records[0]
	}
	b.focus(best.Handle)
	return true
}

// FocusLast focuses the bottommost element aligned with targetCenterX:
// among per-column bottoms, prefer the one whose span contains the target
// (else the nearest by center), then the greatest bottom Y. With no target
// it falls back to the last element overall. It reports whether anything
// received focus.
func (b *Bridge) FocusLast(targetCenterX ...float64) bool {
	idx := b.index()
	if idx.Len() == 0 {
		return false
	}
	records := idx.Records()

	if len(targetCenterX) == 0 {
		b.focus(records[len(records)-1].Handle)
		return true
	}
	x := targetCenterX[0]

	bottoms := columnBottoms(records)

	var best *Record
	bestBottom := -math.MaxFloat64
	for _, rec := range bottoms {
		if rec.X1 <= x && x <= rec.X2 && rec.Y2 > bestBottom {
			bestBottom = rec.Y2
			best = rec
		}
	}
	if best == nil {
		bestDelta := math.MaxFloat64
		for _, rec := range bottoms {
			delta := math.Abs(rec.CenterX - x)
			if delta < bestDelta {
				bestDelta = delta
				best = rec
			}
		}
	}
	if best == nil {
		best = records[len(records)-1]
	}
	b.focus(best.Handle)
	return true
}

func (b *Bridge) focus(handle any) {
	if b.onFocus != nil {
		b.onFocus(handle)
	}
	if b.viewport != nil {
		b.viewport.EnsureVisible(handle)
	}
}

// columnBottoms returns the records with no other record below them in
// their own column, column membership judged by horizontal span overlap.
func columnBottoms(records []*Record) []*Record {
	bottoms := make([]*Record, 0, len(records))
	for _, rec := range records {
		isBottom := true
		for _, other := range records {
			if other == rec {
				continue
			}
			if other.X1 < rec.X2 && other.X2 > rec.X1 && other.CenterY > rec.CenterY {
				isBottom = false
				break
			}
		}
		if isBottom {
			bottoms = append(bottoms, rec)
		}
	}
	return bottoms
}
