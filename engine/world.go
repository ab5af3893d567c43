package engine

import (
	"log"

	"github.com/lixenwraith/vi-merge/component"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/event"
	"github.com/lixenwraith/vi-merge/parameter"
	"github.com/lixenwraith/vi-merge/physics"
	"github.com/lixenwraith/vi-merge/system"
	"github.com/lixenwraith/vi-merge/vmath"
)

// World owns every ball and runs the per-tick pipeline
// Not safe for concurrent use: drive it from a single loop goroutine
type World struct {
	cfg *config.Config

	balls []*component.Ball

	score     int
	gameOver  bool
	gameWin   bool
	nextLevel int
	tick      uint64

	rng     *vmath.FastRand
	palette Palette
	events  *event.EventQueue

	support *system.SupportAnalyzer
	merger  *system.MergeResolver
	planner *system.Planner
	monitor *system.Monitor
}

// NewWorld creates an empty world. cfg must already be validated
// A nil rng falls back to parameter.DefaultSeed; a nil palette binds the zero skin
func NewWorld(cfg *config.Config, palette Palette, rng *vmath.FastRand) *World {
	if rng == nil {
		rng = vmath.NewFastRand(parameter.DefaultSeed)
	}
	if palette == nil {
		palette = PaletteFunc(func(int) component.Skin { return 0 })
	}

	support := system.NewSupportAnalyzer(cfg.World.FloorY, &cfg.Physics)
	w := &World{
		cfg:     cfg,
		balls:   make([]*component.Ball, 0, cfg.World.MaxBalls),
		rng:     rng,
		palette: palette,
		events:  event.NewEventQueue(),
		support: support,
		merger:  system.NewMergeResolver(support, &cfg.Gameplay),
		planner: system.NewPlanner(&cfg.World, &cfg.Placement),
		monitor: system.NewMonitor(cfg.World.LifelineY, cfg.Gameplay.DwellSeconds),
	}
	w.rollNextLevel()
	return w
}

// Advance runs one tick: integrate, merge, materialize, separate, walls, compact, lifeline
// Merge detection sees post-integration, pre-separation overlaps; the lifeline sees final
// positions against Prev captured before integration
func (w *World) Advance(dt float64) {
	w.tick++
	phys := &w.cfg.Physics

	if !w.gameOver {
		for _, b := range w.balls {
			physics.Integrate(b, dt, w.cfg.World.FloorY, phys)
		}
	}

	res := w.merger.Resolve(w.balls)
	w.score += res.Score
	for _, m := range res.Merges {
		w.events.Push(event.GameEvent{
			Type:  event.EventMerge,
			Tick:  w.tick,
			Level: m.Level,
			Pos:   m.Pos,
			Score: m.Level * w.cfg.Gameplay.MergeScorePerLevel,
		})
	}
	w.materialize(res.Requests)

	physics.Separate(w.balls, phys)
	physics.ApplyWalls(w.balls, w.cfg.World.Left(), w.cfg.World.Right(), phys)

	w.balls = component.Compact(w.balls)

	if !w.gameOver {
		if verdict, b := w.monitor.Evaluate(w.balls, dt); verdict != system.VerdictNone {
			w.gameOver = true
			log.Printf("engine: game over (%s) tick=%d level=%d score=%d", verdict, w.tick, b.Level, w.score)
			w.events.Push(event.GameEvent{
				Type:   event.EventGameOver,
				Tick:   w.tick,
				Level:  b.Level,
				Pos:    b.Pos,
				Score:  w.score,
				Reason: verdict.String(),
			})
		}
	}
}

// materialize turns merge requests into balls at their computed position, without placement search
// The cap counts this tick's tombstones, which are not compacted yet; excess requests are dropped
func (w *World) materialize(reqs []system.SpawnRequest) {
	for i, req := range reqs {
		if len(w.balls) >= w.cfg.World.MaxBalls {
			for _, dropped := range reqs[i:] {
				w.events.Push(event.GameEvent{Type: event.EventSpawnDropped, Tick: w.tick, Level: dropped.Level, Pos: dropped.Pos})
			}
			return
		}

		b := w.newBall(req.Pos, req.Level)
		b.Vel = req.Vel
		w.balls = append(w.balls, b)

		if req.Level >= w.cfg.Gameplay.WinLevel {
			if !w.gameWin {
				log.Printf("engine: win tick=%d score=%d", w.tick, w.score)
			}
			w.gameWin = true
			w.gameOver = false
			w.events.Push(event.GameEvent{Type: event.EventWin, Tick: w.tick, Level: req.Level, Pos: req.Pos, Score: w.score})
		}
	}
}

func (w *World) newBall(pos vmath.Vec2, level int) *component.Ball {
	b := component.NewBall(pos, level, w.palette.Skin(level))
	b.SpawnedAboveLine = w.monitor.Above(b.Top())
	return b
}

// RequestSpawn places a player ball near (x, y). Level is clamped into [1, MaxLevel]
// Returns false when ignored: game over or population cap reached
func (w *World) RequestSpawn(x, y float64, level int) bool {
	if w.gameOver {
		return false
	}
	level = component.ClampLevel(level, w.cfg.Gameplay.MaxLevel)

	if len(w.balls) >= w.cfg.World.MaxBalls {
		w.events.Push(event.GameEvent{Type: event.EventSpawnDropped, Tick: w.tick, Level: level, Pos: vmath.V2(x, y)})
		return false
	}

	pos, _ := w.planner.Place(w.balls, x, y, level)
	b := w.newBall(pos, level)
	b.Vel = w.spawnKick()
	w.balls = append(w.balls, b)

	w.events.Push(event.GameEvent{Type: event.EventSpawn, Tick: w.tick, Level: level, Pos: pos})
	return true
}

// DropNext spawns the preview level at (x, y) and rolls a new preview
// The preview re-rolls even if the spawn hit the cap; nothing happens while game over
func (w *World) DropNext(x, y float64) bool {
	if w.gameOver {
		return false
	}
	ok := w.RequestSpawn(x, y, w.nextLevel)
	w.rollNextLevel()
	return ok
}

// spawnKick is a small random upward impulse so drops never stall perfectly vertical
func (w *World) spawnKick() vmath.Vec2 {
	g := &w.cfg.Gameplay
	j := g.SpawnKickJitter
	vy := -g.SpawnKickUp + float64(w.rng.Intn(2*j)-j)
	vx := float64(w.rng.Intn(2*j)-j) * g.SpawnKickHorizontal
	return vmath.V2(vx, vy)
}

// rollNextLevel picks the preview uniformly in [1, PreviewMaxLevel]; the top preview level
// is re-rolled below it until the unlock score is reached
func (w *World) rollNextLevel() {
	g := &w.cfg.Gameplay
	pick := w.rng.IntRange(1, g.PreviewMaxLevel)
	if pick == g.PreviewMaxLevel && pick > 1 && w.score < g.PreviewTopUnlockScore {
		pick = w.rng.IntRange(1, g.PreviewMaxLevel-1)
	}
	w.nextLevel = pick
}

// Reset clears all balls and state to initial values
func (w *World) Reset() {
	clear(w.balls)
	w.balls = w.balls[:0]
	w.score = 0
	w.gameOver = false
	w.gameWin = false
	w.tick = 0
	w.rollNextLevel()
	w.events.Push(event.GameEvent{Type: event.EventReset})
	log.Printf("engine: reset")
}

// Events drains pending events in FIFO order
func (w *World) Events() []event.GameEvent {
	return w.events.Consume()
}

func (w *World) Score() int { return w.score }

func (w *World) GameOver() bool { return w.gameOver }

func (w *World) GameWin() bool { return w.gameWin }

// NextLevel is the preview level the next DropNext will spawn
func (w *World) NextLevel() int { return w.nextLevel }

// Len counts live balls between ticks
func (w *World) Len() int { return len(w.balls) }

func (w *World) Tick() uint64 { return w.tick }

func (w *World) Config() *config.Config { return w.cfg }
