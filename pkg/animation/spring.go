package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is how close position and velocity must be to rest for a
// spring to count as settled.
const settleEpsilon = 0.01

// Spring smooths a displayed value toward a moving target.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring creates a spring stepped fps times per second. Damping below 1
// overshoots; 1 is critically damped.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step advances one frame toward target and returns the new position.
func (s *Spring) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Value returns the current position.
func (s *Spring) Value() float64 {
	return s.pos
}

// Reset jumps to v with zero velocity.
func (s *Spring) Reset(v float64) {
	s.pos, s.vel = v, 0
}

// Settled reports whether the spring is at rest on target.
func (s *Spring) Settled(target float64) bool {
	return math.Abs(s.pos-target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}
