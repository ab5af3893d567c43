package physics

import (
	"math"

	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/vmath"
)

// Integrate advances one ball by dt seconds: v = v + g*dt; p = p + v*dt, then floor contact
// Prev is recorded before moving for lifeline edge-crossing detection
func Integrate(b *component.Ball, dt, floorY float64, p *config.Physics) {
	b.Prev = b.Pos
	b.Age += dt

	b.Vel.Y += p.Gravity * dt
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	if b.Bottom() >= floorY {
		resolveFloor(b, dt, floorY, p)
	} else {
		b.OnGround = false
	}

	if math.Abs(b.Vel.X) < p.DriftEpsilon {
		b.Vel.X = 0
	}
}

// resolveFloor clamps to the floor, bounces with restitution and applies ground friction
func resolveFloor(b *component.Ball, dt, floorY float64, p *config.Physics) {
	b.Pos.Y = floorY - b.Radius

	if b.Vel.Y != 0 {
		b.Vel.Y = -b.Vel.Y * p.Restitution
	}

	if math.Abs(b.Vel.Y) < p.SettleSpeed {
		b.Vel.Y = 0
		b.OnGround = true
	} else {
		b.OnGround = false
	}

	if b.OnGround {
		b.Vel.X = vmath.ApproachZero(b.Vel.X, p.Friction*dt)
	}
}
