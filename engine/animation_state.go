package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/golden-spiral/parameter"
	"github.com/lixenwraith/golden-spiral/sequence"
)

// AnimationState tracks reveal progress for one visualization
// Mutated only through its transition methods; not safe for concurrent use, see Animator
type AnimationState struct {
	Progress  float64 // [0, 1]
	Animating bool
	Speed     float64 // [MinSpeed, MaxSpeed]
	Count     int     // Square count the progress applies to
}

// NewAnimationState returns a paused state at progress 0
func NewAnimationState(count int) (AnimationState, error) {
	if count <= 0 {
		return AnimationState{}, fmt.Errorf("square count %d: %w", count, sequence.ErrInvalidArgument)
	}
	return AnimationState{
		Speed: parameter.DefaultSpeed,
		Count: count,
	}, nil
}

// Complete reports whether the animation reached the end
func (s *AnimationState) Complete() bool {
	return s.Progress >= 1
}

// Start resumes animation; no-op once complete
func (s *AnimationState) Start() {
	if s.Progress < 1 {
		s.Animating = true
	}
}

// Pause stops animation without touching progress
func (s *AnimationState) Pause() {
	s.Animating = false
}

// Toggle switches between Start and Pause
func (s *AnimationState) Toggle() {
	if s.Animating {
		s.Pause()
	} else {
		s.Start()
	}
}

// Reset rewinds to 0 and immediately replays
func (s *AnimationState) Reset() {
	s.Progress = 0
	s.Animating = true
}

// SetProgress clamps p into [0, 1]; reaching 1 auto-pauses
func (s *AnimationState) SetProgress(p float64) {
	if math.IsNaN(p) {
		return
	}
	s.Progress = clamp(p, 0, 1)
	if s.Progress == 1 {
		s.Animating = false
	}
}

// SetSpeed clamps the multiplier into [MinSpeed, MaxSpeed]
func (s *AnimationState) SetSpeed(speed float64) {
	if math.IsNaN(speed) {
		return
	}
	s.Speed = clamp(speed, parameter.MinSpeed, parameter.MaxSpeed)
}

// SetCount switches to a new square count, restarting progress from 0
// A non-positive count is rejected and the state is left untouched
func (s *AnimationState) SetCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("square count %d: %w", n, sequence.ErrInvalidArgument)
	}
	if n != s.Count {
		s.Count = n
		s.Progress = 0
	}
	return nil
}

// Advance moves progress forward by the share of the full run that elapsed covers
// Returns true only on the step that completes the animation
func (s *AnimationState) Advance(elapsed, perSquare time.Duration) bool {
	if !s.Animating || s.Complete() {
		return false
	}
	s.SetProgress(s.Progress + ProgressDelta(elapsed, s.Count, perSquare, s.Speed))
	return s.Complete()
}

// Reveal returns what is visible at the current progress
func (s *AnimationState) Reveal() Reveal {
	return ComputeReveal(s.Count, s.Progress)
}

// ProgressDelta converts elapsed time into a progress increment
// delta = elapsed / ((n * perSquare) / speed)
func ProgressDelta(elapsed time.Duration, n int, perSquare time.Duration, speed float64) float64 {
	if n <= 0 || perSquare <= 0 || speed <= 0 || elapsed <= 0 {
		return 0
	}
	total := float64(n) * perSquare.Seconds() / speed
	return elapsed.Seconds() / total
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
