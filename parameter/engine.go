package parameter

import "time"

const (
	// FrameUpdateInterval is the render/input cadence of the front end (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FixedStepInterval is the simulation step when fixed stepping is enabled
	FixedStepInterval = time.Second / 120

	// FixedStepMaxPerFrame caps catch-up steps; leftover time is dropped
	FixedStepMaxPerFrame = 8

	// MaxFrameDelta caps a variable frame delta (s) after stalls
	MaxFrameDelta = 0.05

	// EventQueueSize must be power of 2
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1

	// DefaultSeed is used when no seed is configured and time seeding is off
	DefaultSeed = 0x9E3779B97F4A7C15
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-merge.log"
	MaxLogSize  = 10 * 1024 * 1024
)
