// Package config holds runtime tuning for the simulation and the front end
// Defaults come from the parameter package; a TOML file and the environment
// may override any of them
package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-merge/parameter"
)

// Config is the full runtime configuration
type Config struct {
	World     World     `toml:"world"`
	Physics   Physics   `toml:"physics"`
	Gameplay  Gameplay  `toml:"gameplay"`
	Placement Placement `toml:"placement"`
	Audio     Audio     `toml:"audio"`
	Engine    Engine    `toml:"engine"`
}

// World describes the container geometry and population cap
type World struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	FloorY      float64 `toml:"floor_y"`
	LifelineY   float64 `toml:"lifeline_y"`
	LeftMargin  float64 `toml:"left_margin"`
	RightMargin float64 `toml:"right_margin"`
	MaxBalls    int     `toml:"max_balls"`
}

// Left returns the x of the left wall
func (w *World) Left() float64 { return w.LeftMargin }

// Right returns the x of the right wall
func (w *World) Right() float64 { return w.Width - w.RightMargin }

// Physics holds integrator, separator and support-chain tuning
type Physics struct {
	Gravity      float64 `toml:"gravity"`
	Restitution  float64 `toml:"restitution"`
	Friction     float64 `toml:"friction"`
	SettleSpeed  float64 `toml:"settle_speed"`
	DriftEpsilon float64 `toml:"drift_epsilon"`

	SeparationPasses int     `toml:"separation_passes"`
	SeparationSlop   float64 `toml:"separation_slop"`
	NormalDamping    float64 `toml:"normal_damping"`
	Jitter           float64 `toml:"jitter"`
	CoincidentDist   float64 `toml:"coincident_dist"`
	WallRestitution  float64 `toml:"wall_restitution"`

	SupportEpsilon        float64 `toml:"support_epsilon"`
	SupportBelowTolerance float64 `toml:"support_below_tolerance"`
}

// Gameplay holds levels, scoring and terminal-state rules
type Gameplay struct {
	MaxLevel              int     `toml:"max_level"`
	WinLevel              int     `toml:"win_level"`
	MergeScorePerLevel    int     `toml:"merge_score_per_level"`
	MergeLift             float64 `toml:"merge_lift"`
	DwellSeconds          float64 `toml:"dwell_seconds"`
	PreviewMaxLevel       int     `toml:"preview_max_level"`
	PreviewTopUnlockScore int     `toml:"preview_top_unlock_score"`
	SpawnKickUp           float64 `toml:"spawn_kick_up"`
	SpawnKickJitter       int     `toml:"spawn_kick_jitter"`
	SpawnKickHorizontal   float64 `toml:"spawn_kick_horizontal"`
}

// Placement holds the spawn search pattern
type Placement struct {
	EdgeInset          float64 `toml:"edge_inset"`
	OverlapTolerance   float64 `toml:"overlap_tolerance"`
	OffsetSteps        int     `toml:"offset_steps"`
	OffsetRadiusFactor float64 `toml:"offset_radius_factor"`
	OffsetPad          float64 `toml:"offset_pad"`
	RowAttempts        int     `toml:"row_attempts"`
	RowRadiusFactor    float64 `toml:"row_radius_factor"`
	RowPad             float64 `toml:"row_pad"`
	TopPad             float64 `toml:"top_pad"`
	FallbackPad        float64 `toml:"fallback_pad"`
}

// Audio configures sound effects
type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// Engine configures the tick driver
type Engine struct {
	FixedStep        bool    `toml:"fixed_step"`
	StepHz           int     `toml:"step_hz"`
	MaxStepsPerFrame int     `toml:"max_steps_per_frame"`
	MaxFrameDelta    float64 `toml:"max_frame_delta"`
	// Seed 0 seeds from the clock at startup
	Seed uint64 `toml:"seed"`
}

// StepInterval returns the fixed step duration
func (e *Engine) StepInterval() time.Duration {
	if e.StepHz <= 0 {
		return parameter.FixedStepInterval
	}
	return time.Second / time.Duration(e.StepHz)
}

// Default returns the tuned defaults
func Default() *Config {
	return &Config{
		World: World{
			Width:       parameter.WorldWidth,
			Height:      parameter.WorldHeight,
			FloorY:      parameter.FloorY,
			LifelineY:   parameter.LifelineY,
			LeftMargin:  parameter.LeftMargin,
			RightMargin: parameter.RightMargin,
			MaxBalls:    parameter.MaxBalls,
		},
		Physics: Physics{
			Gravity:               parameter.GravityFloat,
			Restitution:           parameter.RestitutionFloat,
			Friction:              parameter.FrictionFloat,
			SettleSpeed:           parameter.SettleSpeedFloat,
			DriftEpsilon:          parameter.DriftEpsilonFloat,
			SeparationPasses:      parameter.SeparationPasses,
			SeparationSlop:        parameter.SeparationSlop,
			NormalDamping:         parameter.SeparationNormalDamping,
			Jitter:                parameter.SeparationJitter,
			CoincidentDist:        parameter.SeparationCoincidentDist,
			WallRestitution:       parameter.WallRestitutionFloat,
			SupportEpsilon:        parameter.SupportEpsilon,
			SupportBelowTolerance: parameter.SupportBelowTolerance,
		},
		Gameplay: Gameplay{
			MaxLevel:              parameter.MaxLevel,
			WinLevel:              parameter.WinLevel,
			MergeScorePerLevel:    parameter.MergeScorePerLevel,
			MergeLift:             parameter.MergeLift,
			DwellSeconds:          parameter.DwellSeconds,
			PreviewMaxLevel:       parameter.PreviewMaxLevel,
			PreviewTopUnlockScore: parameter.PreviewTopUnlockScore,
			SpawnKickUp:           parameter.SpawnKickUp,
			SpawnKickJitter:       parameter.SpawnKickJitter,
			SpawnKickHorizontal:   parameter.SpawnKickHorizontal,
		},
		Placement: Placement{
			EdgeInset:          parameter.PlacementEdgeInset,
			OverlapTolerance:   parameter.PlacementOverlapTolerance,
			OffsetSteps:        parameter.PlacementOffsetSteps,
			OffsetRadiusFactor: parameter.PlacementOffsetRadiusFactor,
			OffsetPad:          parameter.PlacementOffsetPad,
			RowAttempts:        parameter.PlacementRowAttempts,
			RowRadiusFactor:    parameter.PlacementRowRadiusFactor,
			RowPad:             parameter.PlacementRowPad,
			TopPad:             parameter.PlacementTopPad,
			FallbackPad:        parameter.PlacementFallbackPad,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Engine: Engine{
			FixedStep:        false,
			StepHz:           int(time.Second / parameter.FixedStepInterval),
			MaxStepsPerFrame: parameter.FixedStepMaxPerFrame,
			MaxFrameDelta:    parameter.MaxFrameDelta,
		},
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	w := &c.World
	if w.Width <= w.LeftMargin+w.RightMargin {
		return fmt.Errorf("world: width %.1f must exceed margins %.1f+%.1f", w.Width, w.LeftMargin, w.RightMargin)
	}
	if w.FloorY <= 0 || w.LifelineY >= w.FloorY {
		return fmt.Errorf("world: lifeline_y %.1f must be above floor_y %.1f", w.LifelineY, w.FloorY)
	}
	if w.MaxBalls < 1 {
		return fmt.Errorf("world: max_balls must be positive, got %d", w.MaxBalls)
	}

	p := &c.Physics
	if p.Restitution < 0 || p.Restitution >= 1 {
		return fmt.Errorf("physics: restitution must be in [0, 1), got %f", p.Restitution)
	}
	if p.WallRestitution < 0 || p.WallRestitution >= 1 {
		return fmt.Errorf("physics: wall_restitution must be in [0, 1), got %f", p.WallRestitution)
	}
	if p.SeparationPasses < 1 {
		return fmt.Errorf("physics: separation_passes must be at least 1, got %d", p.SeparationPasses)
	}
	if p.NormalDamping < 0 || p.NormalDamping > 1 {
		return fmt.Errorf("physics: normal_damping must be in [0, 1], got %f", p.NormalDamping)
	}
	if p.Friction < 0 || p.SettleSpeed < 0 || p.DriftEpsilon < 0 {
		return fmt.Errorf("physics: friction, settle_speed and drift_epsilon must be non-negative")
	}

	g := &c.Gameplay
	if g.MaxLevel < 1 {
		return fmt.Errorf("gameplay: max_level must be at least 1, got %d", g.MaxLevel)
	}
	if g.WinLevel < 1 || g.WinLevel > g.MaxLevel {
		return fmt.Errorf("gameplay: win_level %d must be in [1, %d]", g.WinLevel, g.MaxLevel)
	}
	if g.PreviewMaxLevel < 1 || g.PreviewMaxLevel > g.MaxLevel {
		return fmt.Errorf("gameplay: preview_max_level %d must be in [1, %d]", g.PreviewMaxLevel, g.MaxLevel)
	}
	if g.DwellSeconds <= 0 {
		return fmt.Errorf("gameplay: dwell_seconds must be positive, got %f", g.DwellSeconds)
	}

	pl := &c.Placement
	if pl.OverlapTolerance <= 0 || pl.OverlapTolerance > 1 {
		return fmt.Errorf("placement: overlap_tolerance must be in (0, 1], got %f", pl.OverlapTolerance)
	}
	if pl.OffsetSteps < 1 || pl.RowAttempts < 0 {
		return fmt.Errorf("placement: offset_steps must be positive and row_attempts non-negative")
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio: master_volume must be in [0, 1], got %f", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio: sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	e := &c.Engine
	if e.StepHz <= 0 || e.MaxStepsPerFrame < 1 || e.MaxFrameDelta <= 0 {
		return fmt.Errorf("engine: step_hz, max_steps_per_frame and max_frame_delta must be positive")
	}
	return nil
}
