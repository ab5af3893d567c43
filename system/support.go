package system

import (
	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
)

// SupportAnalyzer answers whether a ball rests on the floor through a chain of downward contacts
// The contact graph changes every tick, so each query is a fresh traversal; only the buffers are reused
type SupportAnalyzer struct {
	floorY float64
	eps    float64 // Contact and floor tolerance
	below  float64 // Neighbors up to this far above the current ball still count as below

	visited []bool
	stack   []int
}

// NewSupportAnalyzer creates an analyzer for the given floor
func NewSupportAnalyzer(floorY float64, p *config.Physics) *SupportAnalyzer {
	return &SupportAnalyzer{
		floorY:  floorY,
		eps:     p.SupportEpsilon,
		below:   p.SupportBelowTolerance,
		visited: make([]bool, 0, 64),
		stack:   make([]int, 0, 64),
	}
}

// Grounded reports direct floor contact within tolerance
func (s *SupportAnalyzer) Grounded(b *component.Ball) bool {
	return b.Bottom() >= s.floorY-s.eps
}

// IsSupported runs a depth-first search from balls[idx] along touching neighbors that sit below
// Tombstoned balls carry no load. Out-of-range idx returns false
func (s *SupportAnalyzer) IsSupported(balls []*component.Ball, idx int) bool {
	if idx < 0 || idx >= len(balls) {
		return false
	}
	s.reset(len(balls))

	s.stack = append(s.stack, idx)
	for len(s.stack) > 0 {
		cur := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if s.visited[cur] {
			continue
		}
		s.visited[cur] = true

		b := balls[cur]
		if s.Grounded(b) {
			return true
		}

		for k, o := range balls {
			if k == cur || s.visited[k] || o.Dead {
				continue
			}
			// Must sit below, or nearly level with, the current ball
			if o.Pos.Y-b.Pos.Y <= -s.below {
				continue
			}
			if b.Touches(o, s.eps) {
				s.stack = append(s.stack, k)
			}
		}
	}
	return false
}

func (s *SupportAnalyzer) reset(n int) {
	if cap(s.visited) < n {
		s.visited = make([]bool, n)
	} else {
		s.visited = s.visited[:n]
		clear(s.visited)
	}
	s.stack = s.stack[:0]
}
