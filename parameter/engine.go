package parameter

import "time"

// Animation Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PerSquareDuration is the base reveal time budget per square at speed 1.0
	// Full animation (both phases) of n squares takes n*PerSquareDuration/speed
	PerSquareDuration = 400 * time.Millisecond

	// MaxFrameElapsed caps a single tick's elapsed time so a stalled frame does not jump the animation
	MaxFrameElapsed = 250 * time.Millisecond
)

// Speed Multiplier
const (
	MinSpeed     = 0.5
	MaxSpeed     = 2.0
	DefaultSpeed = 1.0

	// SpeedStep is the increment applied by the speed keys
	SpeedStep = 0.25
)

// Progress Scrubbing
const (
	// ProgressStep is the increment applied by the scrub keys
	ProgressStep = 0.05

	// PhaseSplit is the progress at which square reveal ends and arc drawing begins
	PhaseSplit = 0.5
)
