package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Stepper is anything advanced once per frame, such as an
// animation.Scheduler.
type Stepper interface {
	Step()
}

// Pump runs n frames: each frame steps s, then advances clk by frame.
// The first step therefore happens at the clock's current time.
func Pump(clk *FakeClock, s Stepper, frame time.Duration, n int) {
	for range n {
		s.Step()
		clk.Advance(frame)
	}
}
