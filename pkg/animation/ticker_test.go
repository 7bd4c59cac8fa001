package animation

import (
	"testing"
	"time"

	"github.com/go-drift/circleprogress/pkg/errors"
	cptest "github.com/go-drift/circleprogress/pkg/testing"
)

func TestTicker_FiresOnFirstStep(t *testing.T) {
	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)

	calls := 0
	s.Every(40*time.Millisecond, func(time.Duration) { calls++ })
	s.Step()

	if calls != 1 {
		t.Errorf("calls = %d after first step, want 1", calls)
	}
}

func TestTicker_RespectsInterval(t *testing.T) {
	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)

	calls := 0
	s.Every(40*time.Millisecond, func(time.Duration) { calls++ })

	// 10ms frames: fires at 0, 40, 80.
	cptest.Pump(clk, s, 10*time.Millisecond, 9)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestTicker_AtMostOncePerStep(t *testing.T) {
	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)

	calls := 0
	s.Every(10*time.Millisecond, func(time.Duration) { calls++ })
	s.Step()
	clk.Advance(time.Second)
	s.Step()

	if calls != 2 {
		t.Errorf("calls = %d, want 2 (no catch-up)", calls)
	}
}

func TestTicker_Elapsed(t *testing.T) {
	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)

	var last time.Duration
	tk := s.Every(40*time.Millisecond, func(elapsed time.Duration) { last = elapsed })
	cptest.Pump(clk, s, 40*time.Millisecond, 3)

	if last != 80*time.Millisecond {
		t.Errorf("elapsed in callback = %v, want 80ms", last)
	}
	if tk.Ticks() != 3 {
		t.Errorf("Ticks() = %d, want 3", tk.Ticks())
	}
	if tk.Elapsed() != 120*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 120ms", tk.Elapsed())
	}
}

func TestTicker_Stop(t *testing.T) {
	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)

	calls := 0
	tk := s.Every(40*time.Millisecond, func(time.Duration) { calls++ })
	s.Step()
	tk.Stop()
	cptest.Pump(clk, s, 40*time.Millisecond, 5)

	if calls != 1 {
		t.Errorf("calls = %d after Stop, want 1", calls)
	}
	if tk.IsActive() {
		t.Error("ticker should be inactive after Stop")
	}
	if s.HasActiveTickers() {
		t.Error("scheduler should have no active tickers")
	}
}

func TestTicker_StopFromOtherCallback(t *testing.T) {
	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)

	var second *Ticker
	secondCalls := 0
	s.Every(time.Millisecond, func(time.Duration) { second.Stop() })
	second = s.Every(time.Millisecond, func(time.Duration) { secondCalls++ })

	s.Step()
	if secondCalls != 0 {
		t.Errorf("stopped ticker fired %d times within the same step", secondCalls)
	}
}

type recordingHandler struct {
	panics int
}

func (h *recordingHandler) HandleError(*errors.Error)      {}
func (h *recordingHandler) HandlePanic(*errors.PanicError) { h.panics++ }

func TestTicker_PanicStopsTicker(t *testing.T) {
	h := &recordingHandler{}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	clk := cptest.NewFakeClock()
	s := NewScheduler(clk)
	tk := s.Every(time.Millisecond, func(time.Duration) { panic("boom") })

	s.Step()

	if h.panics != 1 {
		t.Errorf("panics reported = %d, want 1", h.panics)
	}
	if tk.IsActive() {
		t.Error("panicking ticker should be stopped")
	}
}

func TestSetClock_RestoresPrevious(t *testing.T) {
	clk := cptest.NewFakeClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	if !Now().Equal(clk.Now()) {
		t.Errorf("Now() = %v, want fake time %v", Now(), clk.Now())
	}
	s := NewScheduler(nil)
	calls := 0
	s.Every(40*time.Millisecond, func(time.Duration) { calls++ })
	cptest.Pump(clk, s, 40*time.Millisecond, 2)
	if calls != 2 {
		t.Errorf("calls = %d using package clock, want 2", calls)
	}
}
