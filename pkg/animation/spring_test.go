package animation

import "testing"

func TestSpring_ConvergesToTarget(t *testing.T) {
	s := NewSpring(25, 6.0, 1.0)
	for range 200 {
		s.Step(75)
	}
	if !s.Settled(75) {
		t.Errorf("spring at %.3f, want settled on 75", s.Value())
	}
}

func TestSpring_Reset(t *testing.T) {
	s := NewSpring(25, 6.0, 0.5)
	s.Step(100)
	s.Reset(10)
	if s.Value() != 10 {
		t.Errorf("Value() = %v after Reset, want 10", s.Value())
	}
	if !s.Settled(10) {
		t.Error("reset spring should be at rest")
	}
}

func TestSpring_MovesTowardTarget(t *testing.T) {
	s := NewSpring(25, 6.0, 1.0)
	first := s.Step(50)
	if first <= 0 || first >= 50 {
		t.Errorf("first step = %v, want strictly between 0 and 50", first)
	}
}
