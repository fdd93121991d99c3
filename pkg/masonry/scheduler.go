package masonry

import (
	"time"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/scheduling"
)

// scheduler defers placement until geometry is known, locks the column
// width across a multi-call append batch, and coalesces resize storms.
//
// Width is not always known when items arrive: the first layout pass runs
// before the host assigns geometry. Queued items accumulate in a pending
// buffer guarded by exactly one width-change listener and one fallback
// timer; whichever fires first disarms both, so the buffer can never
// flush twice.
type scheduler struct {
	runner     *scheduling.Runner
	flushDelay time.Duration
	relayout   *scheduling.Debouncer

	// onFlush replays the pending buffer through the normal placement
	// path; onRelayout replays every retained item at the current width.
	onFlush    func(items []Item, session Session)
	onRelayout func()

	pending        []Item
	pendingSession Session
	listenerArmed  bool
	cancelFallback scheduling.CancelFunc
	cancelFlush    scheduling.CancelFunc

	lockedWidth     float64
	locked          bool
	relayoutPending bool
}

func newScheduler(runner *scheduling.Runner, flushDelay, relayoutDelay time.Duration, onFlush func([]Item, Session), onRelayout func()) *scheduler {
	return &scheduler{
		runner:     runner,
		flushDelay: flushDelay,
		relayout:   scheduling.NewDebouncer(runner, relayoutDelay),
		onFlush:    onFlush,
		onRelayout: onRelayout,
	}
}

// queue buffers items until geometry is valid. The buffer accumulates
// across calls; the listener and fallback timer are armed only once.
func (s *scheduler) queue(items []Item, session Session) {
	s.pending = append(s.pending, items...)
	s.pendingSession = session
	if s.listenerArmed {
		return
	}
	s.listenerArmed = true
	s.cancelFallback = s.runner.After(s.flushDelay, s.fire)
}

// notifyWidth is the one-shot width-change listener. It reports whether
// the notification was consumed by a pending flush.
func (s *scheduler) notifyWidth(valid bool) bool {
	if !s.listenerArmed || !valid {
		return false
	}
	s.fire()
	return true
}

// fire disarms both the listener and the fallback timer, then flushes the
// pending buffer on the next scheduler tick to line up with host redraw
// timing.
func (s *scheduler) fire() {
	s.disarm()
	s.cancelFlush = s.runner.PostTick(func() {
		s.cancelFlush = nil
		buf := s.pending
		session := s.pendingSession
		s.pending = nil
		if len(buf) > 0 {
			s.onFlush(buf, session)
		}
	})
}

func (s *scheduler) disarm() {
	s.listenerArmed = false
	if s.cancelFallback != nil {
		s.cancelFallback()
		s.cancelFallback = nil
	}
}

// lockWidth fixes the column width for the rest of the batch. Only the
// first successful computation takes; later calls keep the locked value
// even if the container transiently reports a different width mid-layout.
func (s *scheduler) lockWidth(columnWidth float64) {
	if s.locked {
		return
	}
	s.locked = true
	s.lockedWidth = columnWidth
}

// lockedColumnWidth returns the batch-locked column width, if any.
func (s *scheduler) lockedColumnWidth() (float64, bool) {
	return s.lockedWidth, s.locked
}

// handleResize reacts to a width change that was not consumed by a
// pending flush: deferred behind the lock during a batch, debounced into
// a full relayout otherwise.
func (s *scheduler) handleResize() {
	if s.locked {
		s.relayoutPending = true
		return
	}
	s.relayout.Trigger(s.onRelayout)
}

// unlock releases the width lock without touching the deferred-relayout
// flag. Internal batches (pending flushes, relayout replays) release
// their lock this way so host resizes keep debouncing normally.
func (s *scheduler) unlock() {
	s.locked = false
	s.lockedWidth = 0
}

// finishBatch releases the width lock and flushes a deferred relayout.
func (s *scheduler) finishBatch() {
	s.locked = false
	s.lockedWidth = 0
	if s.relayoutPending {
		s.relayoutPending = false
		s.relayout.Trigger(s.onRelayout)
	}
}

// clearPending drops the buffer and disarms everything except the
// relayout debouncer.
func (s *scheduler) clearPending() {
	s.pending = nil
	s.pendingSession = Session{}
	s.disarm()
	if s.cancelFlush != nil {
		s.cancelFlush()
		s.cancelFlush = nil
	}
}

// destroy synchronously cancels all scheduled work.
func (s *scheduler) destroy() {
	s.clearPending()
	s.relayout.Cancel()
	s.locked = false
	s.relayoutPending = false
}
