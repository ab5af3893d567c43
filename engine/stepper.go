package engine

import (
	"time"

	"github.com/lixenwraith/vi-merge/config"
)

// Advancer is anything stepped by elapsed seconds
type Advancer interface {
	Advance(dt float64)
}

// TimeProvider supplies frame timestamps; swapped for a manual clock in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real clock
type MonotonicTimeProvider struct{}

func (MonotonicTimeProvider) Now() time.Time { return time.Now() }

// Stepper converts wall-clock frames into world ticks
// Fixed mode accumulates and advances in StepInterval steps, capped per frame with the
// remainder dropped; variable mode advances once with the frame delta clamped
type Stepper struct {
	target Advancer
	clock  TimeProvider

	fixed    bool
	step     time.Duration
	maxSteps int
	maxDelta time.Duration

	last    time.Time
	acc     time.Duration
	paused  bool
	dropped time.Duration
}

// NewStepper binds target to clock using engine tuning from cfg
func NewStepper(target Advancer, clock TimeProvider, cfg *config.Engine) *Stepper {
	if clock == nil {
		clock = MonotonicTimeProvider{}
	}
	return &Stepper{
		target:   target,
		clock:    clock,
		fixed:    cfg.FixedStep,
		step:     cfg.StepInterval(),
		maxSteps: cfg.MaxStepsPerFrame,
		maxDelta: time.Duration(cfg.MaxFrameDelta * float64(time.Second)),
		last:     clock.Now(),
	}
}

// Frame advances the target for time elapsed since the previous frame and returns
// the number of ticks run
func (s *Stepper) Frame() int {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now

	if s.paused || elapsed <= 0 {
		return 0
	}

	if !s.fixed {
		if elapsed > s.maxDelta {
			elapsed = s.maxDelta
		}
		s.target.Advance(elapsed.Seconds())
		return 1
	}

	s.acc += elapsed
	steps := 0
	dt := s.step.Seconds()
	for s.acc >= s.step && steps < s.maxSteps {
		s.target.Advance(dt)
		s.acc -= s.step
		steps++
	}
	// Spiral guard: drop what could not be caught up this frame
	if s.acc >= s.step {
		s.dropped += s.acc
		s.acc = 0
	}
	return steps
}

// Pause freezes ticking; time spent paused is never replayed
func (s *Stepper) Pause() { s.paused = true }

// Resume restarts ticking from the current time
func (s *Stepper) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.last = s.clock.Now()
	s.acc = 0
}

// TogglePause flips the pause state and returns the new state
func (s *Stepper) TogglePause() bool {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
	return s.paused
}

func (s *Stepper) Paused() bool { return s.paused }

// Fixed reports whether fixed-step mode is active
func (s *Stepper) Fixed() bool { return s.fixed }

// Dropped returns total simulated time discarded by the per-frame cap
func (s *Stepper) Dropped() time.Duration { return s.dropped }
