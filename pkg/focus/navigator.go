package focus

import "math"

// columnTolerance widens the nearest-distance band on horizontal moves.
// Masonry offsets keep neighboring columns from aligning exactly, so
// elements within this many units of the closest candidate still count as
// "the same column" for overlap comparison.
const columnTolerance = 20.0

// Direction is an arrow-key traversal direction. Toolkit key events are
// reduced to this value before they reach the engine.
type Direction int

const (
	// DirectionUp moves focus upward.
	DirectionUp Direction = iota
	// DirectionDown moves focus downward.
	DirectionDown
	// DirectionLeft moves focus leftward.
	DirectionLeft
	// DirectionRight moves focus rightward.
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyEventResult indicates how a key press was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled and should
	// propagate to an outer focus owner.
	KeyEventIgnored KeyEventResult = iota
	// KeyEventHandled indicates the event was consumed.
	KeyEventHandled
)

// Viewport is the scrollable ancestor capability: whenever focus moves,
// the engine asks the viewport to bring the element into view.
type Viewport interface {
	EnsureVisible(handle any)
}

// Navigator resolves arrow-direction moves against the current spatial
// index. It holds no toolkit state: the currently focused element arrives
// as an explicit argument and successful moves are announced through the
// OnFocus callback.
type Navigator struct {
	index    *Index
	viewport Viewport
	onFocus  func(handle any)
}

// NewNavigator returns a navigator. onFocus receives the handle of every
// element focus moves to; viewport may be nil when no scroll region is
// registered.
func NewNavigator(onFocus func(handle any), viewport Viewport) *Navigator {
	return &Navigator{onFocus: onFocus, viewport: viewport}
}

// SetIndex swaps in the index built after the latest render pass.
func (n *Navigator) SetIndex(idx *Index) {
	n.index = idx
}

// Index returns the navigator's current spatial index.
func (n *Navigator) Index() *Index {
	return n.index
}

// HandleKeyPress moves focus in the given direction from current.
//
// An unknown current element is not intercepted, so the caller can run its
// own handler. At a dead end the result is asymmetric: Up reports
// KeyEventIgnored so an outer focus owner can move focus above the grid,
// while Down, Left, and Right report KeyEventHandled and trap focus.
// Callers that chain grids vertically should use [Navigate] and decide the
// dead-end policy themselves; [Region] does exactly that.
func (n *Navigator) HandleKeyPress(direction Direction, current any) KeyEventResult {
	if _, ok := n.index.Lookup(current); !ok {
		return KeyEventIgnored
	}
	target, ok := n.Navigate(direction, current)
	if !ok {
		if direction == DirectionUp {
			return KeyEventIgnored
		}
		return KeyEventHandled
	}
	n.Focus(target)
	return KeyEventHandled
}

// Navigate returns the handle of the nearest neighbor in the given
// direction without moving focus. The second result is false when current
// is unknown or no candidate exists in that direction.
func (n *Navigator) Navigate(direction Direction, current any) (any, bool) {
	rec, ok := n.index.Lookup(current)
	if !ok {
		return nil, false
	}

	var target *Record
	switch direction {
	case DirectionLeft, DirectionRight:
		target = n.findHorizontal(direction, rec)
	case DirectionUp, DirectionDown:
		target = n.findVertical(direction, rec)
	}
	if target == nil {
		return nil, false
	}
	return target.Handle, true
}

// Focus moves focus to the element and asks the viewport to reveal it.
func (n *Navigator) Focus(handle any) {
	if n.onFocus != nil {
		n.onFocus(handle)
	}
	if n.viewport != nil {
		n.viewport.EnsureVisible(handle)
	}
}

// findHorizontal picks the Left/Right target: among candidates within
// columnTolerance of the closest horizontal distance, the one sharing the
// most vertical span with the current element wins; with no positive
// overlap anywhere, the smallest center-Y delta wins.
func (n *Navigator) findHorizontal(direction Direction, cur *Record) *Record {
	candidates := make([]*Record, 0)
	minDist := math.MaxFloat64

	for _, cand := range n.index.Records() {
		if cand == cur {
			continue
		}
		if direction == DirectionLeft && cand.CenterX >= cur.CenterX {
			continue
		}
		if direction == DirectionRight && cand.CenterX <= cur.CenterX {
			continue
		}
		candidates = append(candidates, cand)
		if dist := math.Abs(cand.CenterX - cur.CenterX); dist < minDist {
			minDist = dist
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Keep only the visually nearest column: everything within the
	// tolerance band of the closest horizontal distance.
	group := candidates[:0]
	for _, cand := range candidates {
		if math.Abs(cand.CenterX-cur.CenterX) <= minDist+columnTolerance {
			group = append(group, cand)
		}
	}

	var best *Record
	bestOverlap := 0.0
	curBounds := cur.Bounds()
	for _, cand := range group {
		overlap := curBounds.VerticalOverlap(cand.Bounds())
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = cand
		}
	}
	if best != nil {
		return best
	}

	// No candidate shares vertical span; fall back to the nearest center.
	bestDelta := math.MaxFloat64
	for _, cand := range group {
		delta := math.Abs(cand.CenterY - cur.CenterY)
		if delta < bestDelta {
			bestDelta = delta
			best = cand
		}
	}
	return best
}

// findVertical picks the Up/Down target: candidates must truly overlap the
// current element's horizontal span, then the smallest center-Y delta wins.
func (n *Navigator) findVertical(direction Direction, cur *Record) *Record {
	var best *Record
	bestDelta := math.MaxFloat64

	for _, cand := range n.index.Records() {
		if cand == cur {
			continue
		}
		switch direction {
		case DirectionUp:
			if cand.CenterY >= cur.CenterY {
				continue
			}
		case DirectionDown:
			if cand.CenterY <= cur.CenterY {
				continue
			}
		}
		if !(cand.X1 < cur.X2 && cand.X2 > cur.X1) {
			continue
		}
		delta := math.Abs(cand.CenterY - cur.CenterY)
		if delta < bestDelta {
			bestDelta = delta
			best = cand
		}
	}
	return best
}
