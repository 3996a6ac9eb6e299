package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/golden-spiral/parameter"
)

// DriverConfig configures the frame loop
type DriverConfig struct {
	FrameInterval time.Duration
	PerSquare     time.Duration
	Clock         TimeProvider
	Logger        *zap.Logger

	// OnFrame runs after every tick with the post-tick state
	OnFrame func(AnimationState)
	// OnComplete runs once on the tick that reaches progress 1
	OnComplete func(AnimationState)
}

// Driver advances an Animator on a fixed frame interval
// Elapsed time is measured from the clock, so a late tick catches up instead of drifting
type Driver struct {
	animator *Animator
	cfg      DriverConfig
	last     time.Time
}

// NewDriver creates a driver, filling unset config with defaults
func NewDriver(animator *Animator, cfg DriverConfig) *Driver {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = parameter.FrameUpdateInterval
	}
	if cfg.PerSquare <= 0 {
		cfg.PerSquare = parameter.PerSquareDuration
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Driver{
		animator: animator,
		cfg:      cfg,
		last:     cfg.Clock.Now(),
	}
}

// Tick performs one frame step using the clock's elapsed time since the previous tick
func (d *Driver) Tick() AnimationState {
	now := d.cfg.Clock.Now()
	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed > parameter.MaxFrameElapsed {
		elapsed = parameter.MaxFrameElapsed
	}

	st, completed := d.animator.Advance(elapsed, d.cfg.PerSquare)
	if d.cfg.OnFrame != nil {
		d.cfg.OnFrame(st)
	}
	if completed {
		d.cfg.Logger.Info("animation complete", zap.Int("squares", st.Count), zap.Float64("speed", st.Speed))
		if d.cfg.OnComplete != nil {
			d.cfg.OnComplete(st)
		}
	}
	return st
}

// Run ticks until ctx is cancelled; returns nil on cancellation
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.FrameInterval)
	defer ticker.Stop()

	d.last = d.cfg.Clock.Now()
	d.cfg.Logger.Debug("driver started", zap.Duration("frame_interval", d.cfg.FrameInterval))

	for {
		select {
		case <-ctx.Done():
			d.cfg.Logger.Debug("driver stopped")
			return nil
		case <-ticker.C:
			d.Tick()
		}
	}
}
