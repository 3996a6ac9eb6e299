package engine

import (
	"sync"
	"time"
)

// Animator serializes access to an AnimationState shared by the frame driver and input handling
type Animator struct {
	mu    sync.RWMutex
	state AnimationState
}

// NewAnimator wraps a fresh paused state for count squares
func NewAnimator(count int) (*Animator, error) {
	st, err := NewAnimationState(count)
	if err != nil {
		return nil, err
	}
	return &Animator{state: st}, nil
}

// Snapshot returns a copy of the current state
func (a *Animator) Snapshot() AnimationState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Update applies fn under the write lock and returns the resulting state
func (a *Animator) Update(fn func(*AnimationState)) AnimationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(&a.state)
	return a.state
}

func (a *Animator) Start()  { a.Update((*AnimationState).Start) }
func (a *Animator) Pause()  { a.Update((*AnimationState).Pause) }
func (a *Animator) Toggle() { a.Update((*AnimationState).Toggle) }
func (a *Animator) Reset()  { a.Update((*AnimationState).Reset) }

func (a *Animator) SetProgress(p float64) {
	a.Update(func(s *AnimationState) { s.SetProgress(p) })
}

func (a *Animator) SetSpeed(speed float64) {
	a.Update(func(s *AnimationState) { s.SetSpeed(speed) })
}

// SetCount changes the square count; on error the previous state is kept
func (a *Animator) SetCount(n int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.SetCount(n)
}

// Advance steps the animation by elapsed; completed is true on the finishing step
func (a *Animator) Advance(elapsed, perSquare time.Duration) (st AnimationState, completed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	completed = a.state.Advance(elapsed, perSquare)
	return a.state, completed
}
