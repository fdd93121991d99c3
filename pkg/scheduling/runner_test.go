package scheduling

import (
	"testing"
	"time"
)

func TestRunner_PostTickRunsOnNextPump(t *testing.T) {
	r := NewRunnerWithClock(NewFakeClock())
	ran := 0
	r.PostTick(func() { ran++ })

	if ran != 0 {
		t.Fatal("callback must not run before Pump")
	}
	r.Pump()
	if ran != 1 {
		t.Fatalf("ran = %d, want 1", ran)
	}
	r.Pump()
	if ran != 1 {
		t.Fatal("callback must run exactly once")
	}
}

func TestRunner_TickScheduledDuringPumpWaitsForNextPump(t *testing.T) {
	r := NewRunnerWithClock(NewFakeClock())
	var order []string
	r.PostTick(func() {
		order = append(order, "outer")
		r.PostTick(func() { order = append(order, "inner") })
	})

	r.Pump()
	if len(order) != 1 || order[0] != "outer" {
		t.Fatalf("after first pump order = %v, want [outer]", order)
	}
	r.Pump()
	if len(order) != 2 || order[1] != "inner" {
		t.Fatalf("after second pump order = %v, want [outer inner]", order)
	}
}

func TestRunner_AfterFiresOncePastDeadline(t *testing.T) {
	clock := NewFakeClock()
	r := NewRunnerWithClock(clock)
	ran := 0
	r.After(100*time.Millisecond, func() { ran++ })

	r.Pump()
	if ran != 0 {
		t.Fatal("timer must not fire before its deadline")
	}
	clock.Advance(99 * time.Millisecond)
	r.Pump()
	if ran != 0 {
		t.Fatal("timer must not fire 1ms early")
	}
	clock.Advance(1 * time.Millisecond)
	r.Pump()
	if ran != 1 {
		t.Fatalf("ran = %d, want 1", ran)
	}
	clock.Advance(time.Hour)
	r.Pump()
	if ran != 1 {
		t.Fatal("timer must fire exactly once")
	}
}

func TestRunner_CancelPreventsExecution(t *testing.T) {
	clock := NewFakeClock()
	r := NewRunnerWithClock(clock)
	ran := false
	cancelTick := r.PostTick(func() { ran = true })
	cancelTimer := r.After(time.Millisecond, func() { ran = true })

	cancelTick()
	cancelTimer()
	clock.Advance(time.Second)
	r.Pump()

	if ran {
		t.Fatal("cancelled callbacks must not run")
	}
	if r.Pending() {
		t.Fatal("nothing should remain pending after cancellation")
	}
}

func TestRunner_NextDeadline(t *testing.T) {
	clock := NewFakeClock()
	r := NewRunnerWithClock(clock)

	if _, ok := r.NextDeadline(); ok {
		t.Fatal("no deadline expected on an empty runner")
	}

	r.After(200*time.Millisecond, func() {})
	cancel := r.After(50*time.Millisecond, func() {})

	deadline, ok := r.NextDeadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if want := clock.Now().Add(50 * time.Millisecond); !deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", deadline, want)
	}

	cancel()
	deadline, ok = r.NextDeadline()
	if !ok {
		t.Fatal("expected the later deadline to remain")
	}
	if want := clock.Now().Add(200 * time.Millisecond); !deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", deadline, want)
	}
}

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	clock := NewFakeClock()
	r := NewRunnerWithClock(clock)
	d := NewDebouncer(r, 100*time.Millisecond)

	ran := 0
	d.Trigger(func() { ran++ })
	clock.Advance(60 * time.Millisecond)
	r.Pump()
	d.Trigger(func() { ran++ })
	clock.Advance(60 * time.Millisecond)
	r.Pump()

	if ran != 0 {
		t.Fatal("retrigger must restart the quiet period")
	}

	clock.Advance(40 * time.Millisecond)
	r.Pump()
	if ran != 1 {
		t.Fatalf("ran = %d, want exactly 1 after the quiet period", ran)
	}
	if d.Pending() {
		t.Fatal("debouncer should be idle after firing")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := NewFakeClock()
	r := NewRunnerWithClock(clock)
	d := NewDebouncer(r, 100*time.Millisecond)

	ran := false
	d.Trigger(func() { ran = true })
	d.Cancel()
	clock.Advance(time.Second)
	r.Pump()

	if ran {
		t.Fatal("cancelled debounce must not fire")
	}
}
