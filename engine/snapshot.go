package engine

import (
	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/vmath"
)

// BallView is the read-only projection of a live ball handed to renderers
type BallView struct {
	Pos      vmath.Vec2
	Radius   float64
	Level    int
	Skin     component.Skin
	OnGround bool
}

// Bounds describes the container in world units
type Bounds struct {
	Left, Right float64
	FloorY      float64
	LifelineY   float64
	Width       float64
	Height      float64
}

// Snapshot is a consistent copy of everything a frame needs to draw
type Snapshot struct {
	Balls     []BallView
	Bounds    Bounds
	Score     int
	NextLevel int
	GameOver  bool
	GameWin   bool
}

// Balls returns views of every live ball in insertion order
func (w *World) Balls() []BallView {
	return w.AppendBalls(make([]BallView, 0, len(w.balls)))
}

// AppendBalls appends views to dst, reusing its capacity across frames
func (w *World) AppendBalls(dst []BallView) []BallView {
	for _, b := range w.balls {
		if b.Dead {
			continue
		}
		dst = append(dst, BallView{
			Pos:      b.Pos,
			Radius:   b.Radius,
			Level:    b.Level,
			Skin:     b.Skin,
			OnGround: b.OnGround,
		})
	}
	return dst
}

// Bounds returns the container geometry
func (w *World) Bounds() Bounds {
	wc := &w.cfg.World
	return Bounds{
		Left:      wc.Left(),
		Right:     wc.Right(),
		FloorY:    wc.FloorY,
		LifelineY: wc.LifelineY,
		Width:     wc.Width,
		Height:    wc.Height,
	}
}

// LifelineY returns the lifeline y in world units
func (w *World) LifelineY() float64 { return w.cfg.World.LifelineY }

// Snapshot fills s in place; s.Balls is reused
func (w *World) Snapshot(s *Snapshot) {
	s.Balls = w.AppendBalls(s.Balls[:0])
	s.Bounds = w.Bounds()
	s.Score = w.score
	s.NextLevel = w.nextLevel
	s.GameOver = w.gameOver
	s.GameWin = w.gameWin
}
