package system

import (
	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/vmath"
)

// Planner finds a spawn position that does not overlap existing balls
type Planner struct {
	minX, maxX float64 // Clamp range for the requested x
	p          config.Placement
}

// NewPlanner creates a planner for the container described by w
func NewPlanner(w *config.World, p *config.Placement) *Planner {
	return &Planner{
		minX: w.Left() + p.EdgeInset,
		maxX: w.Right() - p.EdgeInset,
		p:    *p,
	}
}

// Place searches for a free disc position for a new ball of the given level:
// alternating left/right offsets on the requested row, then progressively higher rows,
// then a fallback near the top where gravity resolves the rest
// The second return is false when the fallback was used
func (pl *Planner) Place(balls []*component.Ball, x, y float64, level int) (vmath.Vec2, bool) {
	r := component.RadiusForLevel(level)
	x = vmath.Clamp(x, pl.minX, pl.maxX)

	if nx, ok := pl.searchRow(balls, x, y, r); ok {
		return vmath.V2(nx, y), true
	}

	rowStep := r*pl.p.RowRadiusFactor + pl.p.RowPad
	for u := 1; u <= pl.p.RowAttempts; u++ {
		ny := y - float64(u)*rowStep
		if ny < r+pl.p.TopPad {
			break
		}
		if nx, ok := pl.searchRow(balls, x, ny, r); ok {
			return vmath.V2(nx, ny), true
		}
	}

	return vmath.V2(pl.clampDisc(x, r), r+pl.p.FallbackPad), false
}

// searchRow tries offsets 0, +s, -s, +2s, -2s, ... at height y
func (pl *Planner) searchRow(balls []*component.Ball, x, y, r float64) (float64, bool) {
	step := r*pl.p.OffsetRadiusFactor + pl.p.OffsetPad
	for i := 0; i < pl.p.OffsetSteps; i++ {
		k := float64(i / 2)
		side := 1.0
		if i%2 != 0 {
			side = -1.0
		}
		nx := pl.clampDisc(x+k*step*side, r)
		if pl.free(balls, vmath.V2(nx, y), r) {
			return nx, true
		}
	}
	return 0, false
}

// free reports whether a disc at c fits, allowing packing tighter than tangency
func (pl *Planner) free(balls []*component.Ball, c vmath.Vec2, r float64) bool {
	for _, b := range balls {
		if b.Dead {
			continue
		}
		minDist := (r + b.Radius) * pl.p.OverlapTolerance
		if vmath.DistSq(c, b.Pos) < minDist*minDist {
			return false
		}
	}
	return true
}

// clampDisc keeps a disc of radius r fully inside the clamp range; lower bound wins when too wide
func (pl *Planner) clampDisc(x, r float64) float64 {
	return vmath.Clamp(x, pl.minX+r, pl.maxX-r)
}
