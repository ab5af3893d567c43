package component

import (
	"github.com/lixenwraith/vi-merge/parameter"
	"github.com/lixenwraith/vi-merge/vmath"
)

// Skin is an opaque render tag bound to a ball at creation, never read by the simulation
type Skin uint32

// Kinetic holds continuous motion state in world px and px/s
type Kinetic struct {
	Pos  vmath.Vec2
	Prev vmath.Vec2 // Position before the last integration step
	Vel  vmath.Vec2
}

// Ball is a non-rotating disc whose radius and mass derive from its level
type Ball struct {
	Kinetic

	Level  int
	Radius float64
	Mass   float64

	// Age is seconds alive
	Age      float64
	OnGround bool

	// Lifeline tracking
	TimeAboveLine    float64
	SpawnedAboveLine bool

	// Dead marks a tombstone pending end-of-tick compaction
	Dead bool

	Skin Skin
}

// RadiusForLevel returns disc radius for a level
func RadiusForLevel(level int) float64 {
	return parameter.BallBaseRadius + float64(level)*parameter.BallRadiusPerLevel
}

// MassForRadius returns mass proportional to area, floored at BallMassMin
func MassForRadius(r float64) float64 {
	m := r * r * parameter.BallMassPerRadiusSq
	if m < parameter.BallMassMin {
		return parameter.BallMassMin
	}
	return m
}

// ClampLevel restricts level to [1, maxLevel]
func ClampLevel(level, maxLevel int) int {
	return vmath.ClampInt(level, 1, maxLevel)
}

// NewBall creates a ball at rest with Prev == Pos
func NewBall(pos vmath.Vec2, level int, skin Skin) *Ball {
	r := RadiusForLevel(level)
	return &Ball{
		Kinetic: Kinetic{Pos: pos, Prev: pos},
		Level:   level,
		Radius:  r,
		Mass:    MassForRadius(r),
		Skin:    skin,
	}
}

// Top returns the y of the upper edge
func (b *Ball) Top() float64 { return b.Pos.Y - b.Radius }

// PrevTop returns the y of the upper edge before the last integration step
func (b *Ball) PrevTop() float64 { return b.Prev.Y - b.Radius }

// Bottom returns the y of the lower edge
func (b *Ball) Bottom() float64 { return b.Pos.Y + b.Radius }

// Touches reports center distance within the radius sum plus eps
func (b *Ball) Touches(o *Ball, eps float64) bool {
	rsum := b.Radius + o.Radius + eps
	return vmath.DistSq(b.Pos, o.Pos) <= rsum*rsum
}

// Compact removes tombstoned balls in place, preserving order, and returns the live prefix
func Compact(balls []*Ball) []*Ball {
	live := balls[:0]
	for _, b := range balls {
		if !b.Dead {
			live = append(live, b)
		}
	}
	// Release references held by the truncated tail
	for i := len(live); i < len(balls); i++ {
		balls[i] = nil
	}
	return live
}
