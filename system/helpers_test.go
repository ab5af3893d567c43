package system

import (
	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/vmath"
)

const testFloorY = 800.0

func testConfig() *config.Config {
	return config.Default()
}

// grounded returns a ball of level resting on the floor at x
func grounded(x float64, level int) *component.Ball {
	r := component.RadiusForLevel(level)
	return component.NewBall(vmath.V2(x, testFloorY-r), level, 0)
}

// atop returns a ball of level resting directly on top of base
func atop(base *component.Ball, level int) *component.Ball {
	r := component.RadiusForLevel(level)
	return component.NewBall(vmath.V2(base.Pos.X, base.Pos.Y-base.Radius-r), level, 0)
}

func floating(x, y float64, level int) *component.Ball {
	return component.NewBall(vmath.V2(x, y), level, 0)
}
