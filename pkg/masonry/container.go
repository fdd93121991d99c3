// Package masonry implements a self-balancing, variable-aspect-ratio grid:
// a greedy column packer, a render scheduler that tolerates unknown
// geometry, and a container tying them to the spatial focus engine.
//
// The engine renders no pixels and owns no theme. The host supplies items
// and a [Renderer]; the container answers with placements and keeps the
// spatial index the navigator consults current. All calls belong to one
// goroutine; "asynchronous" work is cooperative scheduling on the
// container's [scheduling.Runner], pumped by the host.
package masonry

import (
	stderrors "errors"
	"math"
	"time"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/errors"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/focus"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/geometry"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/scheduling"
)

// Defaults for Config fields left at their zero value.
const (
	// DefaultMinWidth is the smallest container width considered valid
	// geometry. Anything below it queues items instead of placing them.
	DefaultMinWidth = 32.0
	// DefaultFlushDelay is the fallback before queued items flush even
	// without a width notification.
	DefaultFlushDelay = 100 * time.Millisecond
	// DefaultRelayoutDelay is the quiet period for resize relayouts.
	DefaultRelayoutDelay = 100 * time.Millisecond
)

// Config configures a Container.
type Config struct {
	// Columns is the fixed column count. Values below 1 become 1.
	Columns int
	// Spacing is the gap between columns and between stacked items.
	Spacing float64
	// PaddingLeft and PaddingRight inset the columns from the container
	// edges.
	PaddingLeft  float64
	PaddingRight float64
	// MinWidth overrides DefaultMinWidth when positive.
	MinWidth float64
	// FlushDelay overrides DefaultFlushDelay when positive.
	FlushDelay time.Duration
	// RelayoutDelay overrides DefaultRelayoutDelay when positive.
	RelayoutDelay time.Duration

	// Renderer produces host renderables for items. Required.
	Renderer Renderer
	// Viewport, when set, is asked to reveal every newly focused element.
	Viewport focus.Viewport
	// OnFocus is told whenever the engine moves focus to an element.
	OnFocus func(*Element)
	// Runner is the cooperative scheduler the container runs deferred
	// work on. Nil gets a private system-clock runner; hosts that pump
	// their own loop should pass it in.
	Runner *scheduling.Runner
}

// Container owns one masonry grid instance: the append-only item list,
// the column state, the render scheduler, and the spatial focus index.
// It implements [focus.Section] so stacked containers can share a
// [focus.Region].
type Container struct {
	cfg    Config
	runner *scheduling.Runner
	sched  *scheduler

	width     float64
	items     []Item
	elements  []*Element
	packer    *Packer
	height    float64
	session   Session
	destroyed bool

	navigator *focus.Navigator
	bridge    *focus.Bridge
}

// New returns a container for the given configuration.
func New(cfg Config) *Container {
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = DefaultMinWidth
	}
	if cfg.FlushDelay <= 0 {
		cfg.FlushDelay = DefaultFlushDelay
	}
	if cfg.RelayoutDelay <= 0 {
		cfg.RelayoutDelay = DefaultRelayoutDelay
	}
	runner := cfg.Runner
	if runner == nil {
		runner = scheduling.NewRunner()
	}

	c := &Container{cfg: cfg, runner: runner}
	c.sched = newScheduler(runner, cfg.FlushDelay, cfg.RelayoutDelay, c.flushPending, c.performRelayout)
	c.navigator = focus.NewNavigator(c.focusElement, cfg.Viewport)
	c.bridge = focus.NewBridge(c.navigator.Index, c.focusElement, cfg.Viewport)
	return c
}

// Runner returns the scheduler the container defers work on. Hosts pump
// it from their event loop.
func (c *Container) Runner() *scheduling.Runner {
	return c.runner
}

// AddItems appends items and renders them, or queues them until geometry
// is valid. Items missing dimensions are retained for relayout fidelity
// but never placed. The call never fails hard: invalid geometry aborts
// placement for the whole call, reports the error, and leaves the
// container usable.
func (c *Container) AddItems(items []Item, session Session) {
	if c.destroyed || len(items) == 0 {
		return
	}
	c.session = session
	c.items = append(c.items, items...)
	c.renderOrQueue(items, session)
}

// FinishBatch releases the batch width lock and, if a resize arrived
// while the lock was held, schedules the deferred relayout.
func (c *Container) FinishBatch() {
	if c.destroyed {
		return
	}
	c.sched.finishBatch()
}

// SetWidth tells the container its available width changed. A pending
// buffer waiting on geometry flushes as soon as a valid width arrives;
// otherwise the change becomes a debounced relayout, deferred behind the
// batch lock when one is held.
func (c *Container) SetWidth(width float64) {
	if c.destroyed {
		return
	}
	changed := width != c.width
	c.width = width
	if c.sched.notifyWidth(width >= c.cfg.MinWidth) {
		return
	}
	if !changed || len(c.items) == 0 {
		return
	}
	c.sched.handleResize()
}

// Clear discards all items and placements and resets every column height
// to zero. The column count never changes.
func (c *Container) Clear() {
	if c.destroyed {
		return
	}
	c.session = NewSession()
	c.items = nil
	c.resetPlacements()
	c.sched.clearPending()
}

// Destroy cancels all pending asynchronous work and releases references.
// No scheduled operation runs after Destroy returns.
func (c *Container) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.sched.destroy()
	c.items = nil
	c.elements = nil
	c.packer = nil
	c.height = 0
	c.navigator.SetIndex(nil)
}

// HandleKeyPress resolves an arrow key against the current focus. The
// result tells the caller whether to propagate the event: Up at the top
// of the grid is not intercepted so an outer focus owner can take over.
func (c *Container) HandleKeyPress(direction focus.Direction, current *Element) focus.KeyEventResult {
	return c.navigator.HandleKeyPress(direction, current)
}

// FocusFirst admits focus into the grid's first row, nearest the optional
// horizontal center.
func (c *Container) FocusFirst(targetCenterX ...float64) bool {
	return c.bridge.FocusFirst(targetCenterX...)
}

// FocusLast admits focus into the grid's bottom row, nearest the optional
// horizontal center.
func (c *Container) FocusLast(targetCenterX ...float64) bool {
	return c.bridge.FocusLast(targetCenterX...)
}

// Elements returns the placed elements in placement order.
func (c *Container) Elements() []*Element {
	return c.elements
}

// Height returns the container height: the tallest cumulative column
// height after the latest completed render pass.
func (c *Container) Height() float64 {
	return c.height
}

// ColumnHeights returns a copy of the cumulative column heights. Before
// the first placement it is all zeros with the configured length.
func (c *Container) ColumnHeights() []float64 {
	if c.packer == nil {
		return make([]float64, c.cfg.Columns)
	}
	return c.packer.Heights()
}

// Session returns the token of the active render generation.
func (c *Container) Session() Session {
	return c.session
}

// Contains implements [focus.Section].
func (c *Container) Contains(handle any) bool {
	_, ok := c.navigator.Index().Lookup(handle)
	return ok
}

// Navigate implements [focus.Section].
func (c *Container) Navigate(direction focus.Direction, current any) (any, bool) {
	return c.navigator.Navigate(direction, current)
}

// Focus implements [focus.Section].
func (c *Container) Focus(handle any) {
	c.navigator.Focus(handle)
}

// CenterXOf implements [focus.Section].
func (c *Container) CenterXOf(handle any) (float64, bool) {
	rec, ok := c.navigator.Index().Lookup(handle)
	if !ok {
		return 0, false
	}
	return rec.CenterX, true
}

// renderOrQueue is the normal placement path: it queues when geometry is
// unknown and places when a column width is available.
func (c *Container) renderOrQueue(batch []Item, session Session) {
	if c.width < c.cfg.MinWidth {
		c.sched.queue(batch, session)
		return
	}
	columnWidth, ok := c.activeColumnWidth()
	if !ok {
		return
	}
	c.place(batch, session, columnWidth)
}

// activeColumnWidth returns the batch-locked column width, computing and
// locking it on the first successful computation of the batch.
func (c *Container) activeColumnWidth() (float64, bool) {
	if w, ok := c.sched.lockedColumnWidth(); ok {
		return w, true
	}
	effective := c.width - c.cfg.PaddingLeft - c.cfg.PaddingRight
	columnWidth := (effective - float64(c.cfg.Columns-1)*c.cfg.Spacing) / float64(c.cfg.Columns)
	if math.IsNaN(columnWidth) || math.IsInf(columnWidth, 0) || columnWidth <= 0 {
		errors.Reportf("masonry.AddItems", errors.KindGeometry,
			"column width %v from container width %v is unusable", columnWidth, c.width)
		return 0, false
	}
	c.sched.lockWidth(columnWidth)
	return columnWidth, true
}

// place runs one render pass over the batch, then rebuilds the spatial
// index and the container height.
func (c *Container) place(batch []Item, session Session, columnWidth float64) {
	if c.packer == nil {
		c.packer = NewPacker(c.cfg.Columns, columnWidth, c.cfg.Spacing, c.cfg.PaddingLeft)
	} else {
		c.packer.SetColumnWidth(columnWidth)
	}

	for _, item := range batch {
		if !item.HasDimensions() {
			continue
		}
		rendered := c.cfg.Renderer.Render(item, session)
		if rendered == nil {
			continue
		}
		placement, err := c.packer.Place(item)
		if err != nil {
			if stderrors.Is(err, ErrInvalidHeight) {
				errors.Reportf("masonry.place", errors.KindItem,
					"item %vx%v at column width %v: %v", item.Width, item.Height, columnWidth, err)
			}
			continue
		}
		c.elements = append(c.elements, &Element{Item: item, Renderable: rendered, Placement: placement})
	}

	c.completePass()
}

// completePass finalizes one render pass: container height becomes the
// tallest column and the spatial index is rebuilt wholesale.
func (c *Container) completePass() {
	c.height = c.packer.TallestColumn()
	entries := make([]focus.Entry, len(c.elements))
	for i, el := range c.elements {
		entries[i] = focus.Entry{Handle: el, Bounds: el.Bounds()}
	}
	c.navigator.SetIndex(focus.BuildIndex(entries))
}

// flushPending replays the pending buffer once geometry became valid. A
// stale session means the buffer belongs to a superseded generation and
// the flush is a silent no-op.
func (c *Container) flushPending(batch []Item, session Session) {
	if c.destroyed || session != c.session {
		return
	}
	_, wasLocked := c.sched.lockedColumnWidth()
	c.renderOrQueue(batch, session)
	if !wasLocked {
		// The lock taken while flushing belongs to this internal batch,
		// not to a host batch; release it so resizes relayout normally.
		c.sched.unlock()
	}
}

// performRelayout replays every retained item at the current width under
// a fresh session, invalidating callbacks of the superseded pass.
func (c *Container) performRelayout() {
	if c.destroyed || len(c.items) == 0 {
		return
	}
	c.session = NewSession()
	c.resetPlacements()
	c.sched.clearPending()
	c.renderOrQueue(c.items, c.session)
	// The replay is one internal batch; release its width lock.
	c.sched.unlock()
}

// resetPlacements drops elements and zeroes column heights while keeping
// the ordered item list intact.
func (c *Container) resetPlacements() {
	c.elements = nil
	c.height = 0
	if c.packer != nil {
		c.packer.Reset(c.packer.ColumnWidth())
	}
	c.navigator.SetIndex(focus.BuildIndex(nil))
}

// focusElement forwards navigator focus changes to the host callback.
func (c *Container) focusElement(handle any) {
	el, ok := handle.(*Element)
	if !ok {
		return
	}
	if c.cfg.OnFocus != nil {
		c.cfg.OnFocus(el)
	}
}

// Bounds returns the rectangle currently covered by the grid content.
func (c *Container) Bounds() geometry.Rect {
	return geometry.RectFromLTWH(0, 0, c.width, c.height)
}
