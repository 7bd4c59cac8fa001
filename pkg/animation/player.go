package animation

import "time"

// DefaultPlayInterval is 25 ticks per second.
const DefaultPlayInterval = 40 * time.Millisecond

// ProgressTarget is the part of a progress widget a Player drives.
type ProgressTarget interface {
	Progress() int
	Max() int
	SetProgress(progress int)
}

// Player walks a target's progress from 0 to its max, one unit per tick.
//
// A Player owns at most one running ticker: Play cancels any run in flight
// before starting a new one, so two runs never increment concurrently.
type Player struct {
	// Interval between increments. Zero means DefaultPlayInterval.
	Interval time.Duration

	// OnStep is called after each increment with the new progress.
	OnStep func(progress, max int)

	// OnComplete is called once when the run reaches max.
	OnComplete func()

	scheduler *Scheduler
	target    ProgressTarget
	ticker    *Ticker
}

// NewPlayer creates a player for target on scheduler s.
func NewPlayer(s *Scheduler, target ProgressTarget) *Player {
	return &Player{scheduler: s, target: target}
}

// Play restarts the run from zero.
func (p *Player) Play() {
	p.Stop()
	p.target.SetProgress(0)

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPlayInterval
	}
	p.ticker = p.scheduler.Every(interval, func(time.Duration) {
		p.tick()
	})
}

// Stop cancels the current run, leaving progress where it is.
func (p *Player) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
}

// IsPlaying reports whether a run is in flight.
func (p *Player) IsPlaying() bool {
	return p.ticker != nil && p.ticker.IsActive()
}

// tick advances by one unit. If the target ignores the update (for example
// because its progress is hidden) the run waits on the same value.
func (p *Player) tick() {
	progress, limit := p.target.Progress(), p.target.Max()
	if progress >= limit {
		p.finish()
		return
	}
	p.target.SetProgress(progress + 1)
	current := p.target.Progress()
	if p.OnStep != nil && current != progress {
		p.OnStep(current, limit)
	}
	if current >= limit {
		p.finish()
	}
}

func (p *Player) finish() {
	p.Stop()
	if p.OnComplete != nil {
		p.OnComplete()
	}
}
