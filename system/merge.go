package system

import (
	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/vmath"
)

// SpawnRequest is a deferred ball creation produced during a tick
type SpawnRequest struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Level int
}

// Merge records one retired pair
type Merge struct {
	A, B  int // Indices into the scanned slice, A < B
	Level int // Level of the product
	Pos   vmath.Vec2
}

// MergeResult is the local accumulator for one scan
type MergeResult struct {
	Requests []SpawnRequest
	Merges   []Merge
	Score    int
}

// MergeResolver pairs same-level supported balls in contact and retires them
type MergeResolver struct {
	support       *SupportAnalyzer
	maxLevel      int
	scorePerLevel int
	lift          float64
}

// NewMergeResolver creates a resolver that consults support for every candidate pair
func NewMergeResolver(support *SupportAnalyzer, g *config.Gameplay) *MergeResolver {
	return &MergeResolver{
		support:       support,
		maxLevel:      g.MaxLevel,
		scorePerLevel: g.MergeScorePerLevel,
		lift:          g.MergeLift,
	}
}

// Resolve scans unordered pairs once. Merged balls are tombstoned immediately so no ball
// merges twice in a tick; the slice itself is never resized here
func (r *MergeResolver) Resolve(balls []*component.Ball) MergeResult {
	var res MergeResult

	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			a, b := balls[i], balls[j]
			if a.Dead || b.Dead {
				continue
			}
			if a.Level != b.Level || a.Level >= r.maxLevel {
				continue
			}
			if !a.Touches(b, 0) {
				continue
			}
			// Support is the expensive check, run it last
			if !r.support.IsSupported(balls, i) || !r.support.IsSupported(balls, j) {
				continue
			}

			level := a.Level + 1
			mid := vmath.Midpoint(a.Pos, b.Pos)
			mid.Y -= r.lift

			a.Dead = true
			b.Dead = true

			res.Requests = append(res.Requests, SpawnRequest{Pos: mid, Level: level})
			res.Merges = append(res.Merges, Merge{A: i, B: j, Level: level, Pos: mid})
			res.Score += level * r.scorePerLevel
		}
	}
	return res
}
