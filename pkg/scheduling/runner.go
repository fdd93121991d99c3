// Package scheduling provides the cooperative timing primitives the layout
// engine runs on: next-tick deferrals, one-shot delayed callbacks, and
// debounced triggers.
//
// Nothing here starts a goroutine. The host owns the event loop and calls
// [Runner.Pump] whenever it is ready to run queued work, typically once per
// redraw tick. All state belongs to that single goroutine; the package uses
// no locks.
package scheduling

import "time"

// CancelFunc revokes a scheduled callback. Calling it after the callback
// has run, or calling it twice, is a no-op.
type CancelFunc func()

// task is one scheduled callback. A nil fn marks a cancelled slot.
type task struct {
	fn  func()
	due time.Time // zero for next-tick tasks
}

// Runner is a single-goroutine run queue with an injectable clock.
//
// PostTick callbacks run on the next Pump. After callbacks run on the first
// Pump at or past their deadline. Callbacks scheduled from within a callback
// run on a later Pump, never the current one; this is the single cooperative
// yield the layout engine relies on to line up with host redraw timing.
type Runner struct {
	clock  Clock
	ticks  []*task
	timers []*task
}

// NewRunner returns a Runner reading system time.
func NewRunner() *Runner {
	return &Runner{clock: systemClock{}}
}

// NewRunnerWithClock returns a Runner reading time from clock.
func NewRunnerWithClock(clock Clock) *Runner {
	if clock == nil {
		clock = systemClock{}
	}
	return &Runner{clock: clock}
}

// Now returns the current time from the runner's clock.
func (r *Runner) Now() time.Time {
	return r.clock.Now()
}

// PostTick schedules fn to run on the next Pump.
func (r *Runner) PostTick(fn func()) CancelFunc {
	t := &task{fn: fn}
	r.ticks = append(r.ticks, t)
	return func() { t.fn = nil }
}

// After schedules fn to run on the first Pump at or past now+d.
func (r *Runner) After(d time.Duration, fn func()) CancelFunc {
	t := &task{fn: fn, due: r.clock.Now().Add(d)}
	r.timers = append(r.timers, t)
	return func() { t.fn = nil }
}

// Pump runs every due callback. Tick tasks queued before Pump was entered
// run exactly once; tasks they schedule wait for the next Pump.
func (r *Runner) Pump() {
	now := r.clock.Now()

	ticks := r.ticks
	r.ticks = nil
	for _, t := range ticks {
		if t.fn != nil {
			fn := t.fn
			t.fn = nil
			fn()
		}
	}

	timers := r.timers
	r.timers = nil
	for _, t := range timers {
		switch {
		case t.fn == nil:
			// cancelled, drop
		case !t.due.After(now):
			fn := t.fn
			t.fn = nil
			fn()
		default:
			r.timers = append(r.timers, t)
		}
	}
}

// Pending reports whether any callback is queued or armed.
func (r *Runner) Pending() bool {
	for _, t := range r.ticks {
		if t.fn != nil {
			return true
		}
	}
	for _, t := range r.timers {
		if t.fn != nil {
			return true
		}
	}
	return false
}

// NextDeadline returns the earliest armed timer deadline and true, or a zero
// time and false when no timers are armed. Hosts use it to decide how soon
// to pump again.
func (r *Runner) NextDeadline() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, t := range r.timers {
		if t.fn == nil {
			continue
		}
		if !found || t.due.Before(earliest) {
			earliest = t.due
			found = true
		}
	}
	return earliest, found
}
