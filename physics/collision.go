package physics

import (
	"math"

	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/vmath"
)

// Separate runs p.SeparationPasses passes over all unordered live pairs, pushing overlapping
// discs apart in inverse mass proportion and damping their normal velocity
// Returns the number of pair corrections applied across all passes
// Worst case is O(passes * n²); the pass count is tuned, not iterated to convergence
func Separate(balls []*component.Ball, p *config.Physics) int {
	corrections := 0
	for pass := 0; pass < p.SeparationPasses; pass++ {
		for i := 0; i < len(balls); i++ {
			a := balls[i]
			if a.Dead {
				continue
			}
			for j := i + 1; j < len(balls); j++ {
				b := balls[j]
				if b.Dead {
					continue
				}
				if separatePair(a, b, p) {
					corrections++
				}
			}
		}
	}
	return corrections
}

// separatePair resolves one pair, returns true if positions were changed
func separatePair(a, b *component.Ball, p *config.Physics) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Mag()

	// Coincident centers have no normal; nudge symmetrically
	if dist <= p.CoincidentDist {
		a.Pos = a.Pos.Add(vmath.V2(-p.Jitter, -p.Jitter))
		b.Pos = b.Pos.Add(vmath.V2(p.Jitter, p.Jitter))
		return true
	}

	rsum := a.Radius + b.Radius
	if dist >= rsum {
		return false
	}

	overlap := rsum - dist
	normal := delta.Scale(1 / dist)
	total := a.Mass + b.Mass

	// Heavier disc moves less
	a.Pos = a.Pos.Sub(normal.Scale(overlap * (b.Mass / total) * p.SeparationSlop))
	b.Pos = b.Pos.Add(normal.Scale(overlap * (a.Mass / total) * p.SeparationSlop))

	a.Vel = vmath.RemoveNormal(a.Vel, normal, p.NormalDamping)
	b.Vel = vmath.RemoveNormal(b.Vel, normal, p.NormalDamping)
	return true
}

// ApplyWalls clamps balls inside [left, right] and bounces horizontal velocity with wall restitution
// Returns true if any ball touched a wall
func ApplyWalls(balls []*component.Ball, left, right float64, p *config.Physics) bool {
	hit := false
	for _, b := range balls {
		if b.Pos.X-b.Radius < left {
			b.Pos.X = left + b.Radius
			b.Vel.X = -b.Vel.X * p.WallRestitution
			hit = true
		} else if b.Pos.X+b.Radius > right {
			b.Pos.X = right - b.Radius
			b.Vel.X = -b.Vel.X * p.WallRestitution
			hit = true
		}
	}
	return hit
}

// Overlap returns interpenetration depth of two discs, 0 when separated
func Overlap(a, b *component.Ball) float64 {
	d := vmath.Dist(a.Pos, b.Pos)
	return math.Max(0, a.Radius+b.Radius-d)
}
