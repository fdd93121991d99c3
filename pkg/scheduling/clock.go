package scheduling

import "time"

// Clock provides time for delayed and debounced callbacks. The default
// implementation uses system time. Tests inject a FakeClock to control
// timer firing deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FakeClock is a controllable time source for deterministic tests.
// It belongs to a single goroutine, like everything else in this package.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) { c.now = t }
