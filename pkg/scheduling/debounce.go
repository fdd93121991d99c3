package scheduling

import "time"

// Debouncer coalesces repeated triggers into one callback that fires after
// a quiet period. Each Trigger restarts the countdown; only the most
// recently supplied callback runs.
type Debouncer struct {
	runner *Runner
	delay  time.Duration
	cancel CancelFunc
}

// NewDebouncer returns a Debouncer firing on runner after delay of quiet.
func NewDebouncer(runner *Runner, delay time.Duration) *Debouncer {
	return &Debouncer{runner: runner, delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any pending one.
func (d *Debouncer) Trigger(fn func()) {
	d.Cancel()
	d.cancel = d.runner.After(d.delay, func() {
		d.cancel = nil
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Pending reports whether a callback is armed.
func (d *Debouncer) Pending() bool {
	return d.cancel != nil
}
