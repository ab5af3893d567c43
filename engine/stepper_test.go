package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-merge/config"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recorder struct{ dts []float64 }

func (r *recorder) Advance(dt float64) { r.dts = append(r.dts, dt) }

func newTestStepper(fixed bool) (*Stepper, *recorder, *manualClock) {
	cfg := config.Default().Engine
	cfg.FixedStep = fixed
	cfg.StepHz = 100
	cfg.MaxStepsPerFrame = 4
	cfg.MaxFrameDelta = 0.05

	clock := &manualClock{now: time.Unix(0, 0)}
	rec := &recorder{}
	return NewStepper(rec, clock, &cfg), rec, clock
}

func TestStepperVariableClampsDelta(t *testing.T) {
	s, rec, clock := newTestStepper(false)

	clock.Advance(16 * time.Millisecond)
	if n := s.Frame(); n != 1 {
		t.Fatalf("Expected 1 tick, got %d", n)
	}
	clock.Advance(time.Second)
	s.Frame()

	if len(rec.dts) != 2 {
		t.Fatalf("Expected 2 ticks, got %d", len(rec.dts))
	}
	if rec.dts[0] != 0.016 {
		t.Errorf("Expected dt 0.016, got %f", rec.dts[0])
	}
	if rec.dts[1] != 0.05 {
		t.Errorf("Expected clamped dt 0.05, got %f", rec.dts[1])
	}
}

func TestStepperFixedAccumulates(t *testing.T) {
	s, rec, clock := newTestStepper(true)

	clock.Advance(5 * time.Millisecond)
	if n := s.Frame(); n != 0 {
		t.Errorf("Expected no tick below one step, got %d", n)
	}
	clock.Advance(25 * time.Millisecond)
	if n := s.Frame(); n != 3 {
		t.Errorf("Expected 3 ticks for 30ms at 100Hz, got %d", n)
	}
	for i, dt := range rec.dts {
		if dt != 0.01 {
			t.Errorf("Tick %d: expected dt 0.01, got %f", i, dt)
		}
	}
}

func TestStepperFixedCapsAndDrops(t *testing.T) {
	s, rec, clock := newTestStepper(true)

	clock.Advance(time.Second)
	if n := s.Frame(); n != 4 {
		t.Errorf("Expected cap of 4 ticks, got %d", n)
	}
	if s.Dropped() != 960*time.Millisecond {
		t.Errorf("Expected 960ms dropped, got %v", s.Dropped())
	}

	clock.Advance(10 * time.Millisecond)
	if n := s.Frame(); n != 1 {
		t.Errorf("Expected backlog cleared after cap, got %d ticks", n)
	}
	if len(rec.dts) != 5 {
		t.Errorf("Expected 5 ticks total, got %d", len(rec.dts))
	}
}

func TestStepperPause(t *testing.T) {
	s, rec, clock := newTestStepper(false)

	if !s.TogglePause() {
		t.Fatal("Expected paused after toggle")
	}
	clock.Advance(20 * time.Millisecond)
	if n := s.Frame(); n != 0 {
		t.Errorf("Expected no ticks while paused, got %d", n)
	}

	clock.Advance(time.Second)
	s.Resume()
	clock.Advance(10 * time.Millisecond)
	s.Frame()

	if len(rec.dts) != 1 || rec.dts[0] != 0.01 {
		t.Errorf("Expected single 10ms tick after resume, got %v", rec.dts)
	}
	if s.Paused() {
		t.Error("Expected running after resume")
	}
}

func TestStepperDrivesWorld(t *testing.T) {
	w := NewWorld(config.Default(), nil, nil)
	clock := &manualClock{now: time.Unix(0, 0)}
	cfg := w.Config().Engine
	cfg.FixedStep = true
	s := NewStepper(w, clock, &cfg)

	clock.Advance(50 * time.Millisecond)
	n := s.Frame()

	if n != 6 {
		t.Errorf("Expected 6 ticks for 50ms at 120Hz, got %d", n)
	}
	if w.Tick() != uint64(n) {
		t.Errorf("Expected world tick %d, got %d", n, w.Tick())
	}
}
