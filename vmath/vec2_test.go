package vmath

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if math.Abs(n.Mag()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Mag())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got (%f, %f)", n.X, n.Y)
	}

	zero := Vec2{}.Normalize()
	if zero != (Vec2{}) {
		t.Errorf("Expected zero vector to stay zero, got %+v", zero)
	}
}

func TestRemoveNormal(t *testing.T) {
	vel := V2(10, 5)
	n := V2(1, 0)

	full := RemoveNormal(vel, n, 1)
	if full.X != 0 || full.Y != 5 {
		t.Errorf("Expected normal component removed, got %+v", full)
	}

	part := RemoveNormal(vel, n, 0.6)
	if math.Abs(part.X-4) > 1e-9 || part.Y != 5 {
		t.Errorf("Expected (4, 5), got %+v", part)
	}
}

func TestApproachZero(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		dec  float64
		want float64
	}{
		{"positive", 5, 2, 3},
		{"negative", -5, 2, -3},
		{"no overshoot positive", 1, 2, 0},
		{"no overshoot negative", -1, 2, 0},
		{"zero stays", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproachZero(tt.x, tt.dec); got != tt.want {
				t.Errorf("ApproachZero(%f, %f) = %f, want %f", tt.x, tt.dec, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Expected 3, got %f", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := ClampInt(11, 1, 10); got != 10 {
		t.Errorf("Expected 10, got %d", got)
	}
	if got := ClampInt(0, 1, 10); got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences at step %d", i)
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(80); v < 0 || v >= 80 {
			t.Fatalf("Intn out of range: %d", v)
		}
		if v := r.IntRange(1, 3); v < 1 || v > 3 {
			t.Fatalf("IntRange out of range: %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}
