package masonry

import "github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/geometry"

// Item is one entry in the grid: an opaque payload plus the source aspect
// ratio. Width and Height describe the source medium (e.g. a preview's
// pixel dimensions), not the on-screen size; the packer derives the
// on-screen height from the column width.
//
// An item missing either dimension stays in the container's ordered item
// list, so replays see the original order, but it is never placed.
type Item struct {
	// Data is the host payload. The engine never inspects it.
	Data any
	// Width is the source width. Zero means unknown.
	Width float64
	// Height is the source height. Zero means unknown.
	Height float64
}

// HasDimensions reports whether the item carries a usable aspect ratio.
func (it Item) HasDimensions() bool {
	return it.Width > 0 && it.Height > 0
}

// Placement is the position and size the packer assigned to an element.
// It is owned exclusively by the grid engine.
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Rect returns the placement as a bounding rectangle.
func (p Placement) Rect() geometry.Rect {
	return geometry.RectFromLTWH(p.X, p.Y, p.Width, p.Height)
}

// Element couples a host renderable with the placement the grid assigned
// to it. The spatial index and the navigator consult only the placement,
// never the renderable, so the engine stays portable across UI stacks.
type Element struct {
	// Item is the item this element was rendered from.
	Item Item
	// Renderable is whatever the host's Renderer produced.
	Renderable any
	// Placement is the geometry assigned by the packer.
	Placement Placement
}

// Bounds returns the element's placed bounding rectangle.
func (e *Element) Bounds() geometry.Rect {
	return e.Placement.Rect()
}

// Renderer produces a host renderable for an item. Returning nil skips
// placement for that item only; the batch continues.
//
// The session token identifies the render pass the call belongs to. Hosts
// that render asynchronously should hold on to it and discard results
// whose session no longer matches the container's.
type Renderer interface {
	Render(item Item, session Session) any
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(item Item, session Session) any

// Render calls f.
func (f RendererFunc) Render(item Item, session Session) any {
	return f(item, session)
}
