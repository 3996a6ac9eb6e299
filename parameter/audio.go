package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// ChimeDuration is the length of one reveal tone
	ChimeDuration = 120 * time.Millisecond

	// MinSoundGap between consecutive chimes
	MinSoundGap = 50 * time.Millisecond
)

// Chime Pitch
const (
	// ChimeBaseFrequency is the pitch of the first square's tone (A4)
	ChimeBaseFrequency = 440.0

	// ChimeScaleSteps is the number of pentatonic steps before the pitch wraps
	ChimeScaleSteps = 10

	// ChimeVolume is the linear amplitude of a tone
	ChimeVolume = 0.25
)
