package system

import (
	"github.com/lixenwraith/vi-merge/component"
)

// Verdict explains why the monitor ended the game
type Verdict uint8

const (
	VerdictNone Verdict = iota
	// VerdictCrossed fires when a top edge is pushed upward across the line within one tick
	VerdictCrossed
	// VerdictDwell fires when a top edge stays at or above the line for the dwell threshold
	VerdictDwell
)

func (v Verdict) String() string {
	switch v {
	case VerdictCrossed:
		return "crossed"
	case VerdictDwell:
		return "dwell"
	default:
		return "none"
	}
}

// Monitor watches the lifeline; y grows downward so "above" means smaller y
type Monitor struct {
	lineY float64
	dwell float64
}

// NewMonitor creates a monitor for the given line and dwell threshold in seconds
func NewMonitor(lineY, dwell float64) *Monitor {
	return &Monitor{lineY: lineY, dwell: dwell}
}

// LineY returns the lifeline y
func (m *Monitor) LineY() float64 { return m.lineY }

// Above reports whether y is at or above the line
func (m *Monitor) Above(y float64) bool { return y <= m.lineY }

// Evaluate updates per-ball dwell timers and returns the first terminal verdict
// Balls after the terminal one are left untouched for this tick
func (m *Monitor) Evaluate(balls []*component.Ball, dt float64) (Verdict, *component.Ball) {
	for _, b := range balls {
		if b.Dead {
			continue
		}
		prevTop, curTop := b.PrevTop(), b.Top()

		if prevTop > m.lineY && curTop <= m.lineY {
			return VerdictCrossed, b
		}

		if curTop <= m.lineY {
			b.TimeAboveLine += dt
			if b.TimeAboveLine >= m.dwell {
				return VerdictDwell, b
			}
		} else {
			b.TimeAboveLine = 0
		}
	}
	return VerdictNone, nil
}
