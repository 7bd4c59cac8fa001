// Package animation provides the cooperative timing primitives used to
// animate a progress widget.
//
// # Core Components
//
//   - [Scheduler]: owns the active tickers and advances them when the host
//     calls [Scheduler.Step] from its UI loop. All callbacks therefore run on
//     whichever goroutine calls Step, which keeps widget mutation single-threaded.
//
//   - [Ticker]: a repeating interval task. The *Ticker returned by
//     [Scheduler.Every] is the caller's cancellation handle.
//
//   - [Player]: the play-button loop that walks a widget's progress from 0 to
//     its max one unit per tick.
//
//   - [Spring]: damped spring smoothing for displayed values.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(nil)
//	player := animation.NewPlayer(sched, view)
//	player.Play()
//
//	// In the host's frame loop (UI goroutine):
//	sched.Step()
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/circleprogress/pkg/errors"
)

// Scheduler advances registered tickers. It is safe to register and stop
// tickers from any goroutine, but callbacks only run inside Step.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	tickers []*Ticker
}

// NewScheduler creates a scheduler reading time from c. A nil clock uses the
// package clock (see SetClock).
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{clock: c}
}

func (s *Scheduler) now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// Every creates and starts a ticker that calls fn at most once per Step,
// whenever at least interval has passed since its previous call. The first
// call happens on the first Step after Every returns.
func (s *Scheduler) Every(interval time.Duration, fn func(elapsed time.Duration)) *Ticker {
	t := s.NewTicker(interval, fn)
	t.Start()
	return t
}

// NewTicker creates a stopped ticker bound to this scheduler.
func (s *Scheduler) NewTicker(interval time.Duration, fn func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		scheduler: s,
		callback:  fn,
		interval:  interval,
	}
}

// Step runs every ticker that is due. Call it once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers.
	tickers := make([]*Ticker, len(s.tickers))
	copy(tickers, s.tickers)
	s.mu.Unlock()

	for _, t := range tickers {
		t.step(s.now())
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.tickers = append(s.tickers, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, other := range s.tickers {
		if other == t {
			s.tickers = append(s.tickers[:i], s.tickers[i+1:]...)
			return
		}
	}
}

// Ticker calls a callback repeatedly while active.
//
// The callback receives the elapsed time since Start was called. A ticker
// that panics is stopped and the panic is reported to the error handler.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	interval  time.Duration

	mu     sync.Mutex
	active bool
	start  time.Time
	last   time.Time
	ticks  int
}

// Start activates the ticker. Starting an active ticker does nothing.
func (t *Ticker) Start() {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return
	}
	t.active = true
	t.start = t.scheduler.now()
	t.ticks = 0
	t.mu.Unlock()
	t.scheduler.add(t)
}

// Stop deactivates the ticker. A stopped ticker never fires again until
// restarted, even if it was already collected by an in-progress Step.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	t.mu.Unlock()
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Ticks returns how many times the callback has run since Start.
func (t *Ticker) Ticks() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return 0
	}
	return t.scheduler.now().Sub(t.start)
}

func (t *Ticker) step(now time.Time) {
	t.mu.Lock()
	due := t.active && (t.ticks == 0 || now.Sub(t.last) >= t.interval)
	if !due {
		t.mu.Unlock()
		return
	}
	t.last = now
	t.ticks++
	elapsed := now.Sub(t.start)
	fn := t.callback
	t.mu.Unlock()

	if fn == nil {
		return
	}
	defer errors.RecoverWithCallback("animation.Ticker", func(any) {
		t.Stop()
	})
	fn(elapsed)
}
