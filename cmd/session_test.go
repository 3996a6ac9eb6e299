package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/lixenwraith/golden-spiral/config"
	"github.com/lixenwraith/golden-spiral/parameter"
)

type recordingChimer struct {
	played []int
}

func (c *recordingChimer) PlayReveal(index int) bool {
	c.played = append(c.played, index)
	return true
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	return cfg
}

func newTestSession(t *testing.T, cfg *config.Config, sound chimer) (*session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	s, err := newSession(cfg, zap.NewNop(), screen, sound)
	require.NoError(t, err)
	return s, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSessionQuitKeys(t *testing.T) {
	s, _ := newTestSession(t, newTestConfig(t), nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"q", key('q'), true},
		{"Q", key('Q'), true},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"space", key(' '), false},
		{"unbound", key('x'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.quit, s.handleEvent(tt.ev))
		})
	}
}

func TestSessionPlayPauseReset(t *testing.T) {
	s, _ := newTestSession(t, newTestConfig(t), nil)
	require.False(t, s.animator.Snapshot().Animating)

	s.handleEvent(key(' '))
	assert.True(t, s.animator.Snapshot().Animating)
	s.handleEvent(key(' '))
	assert.False(t, s.animator.Snapshot().Animating)

	s.animator.SetProgress(0.4)
	s.handleEvent(key('r'))
	st := s.animator.Snapshot()
	assert.Equal(t, 0.0, st.Progress)
	assert.True(t, st.Animating)
}

func TestSessionScrub(t *testing.T) {
	s, _ := newTestSession(t, newTestConfig(t), nil)

	s.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.InDelta(t, parameter.ProgressStep, s.animator.Snapshot().Progress, 1e-12)

	s.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	s.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, 0.0, s.animator.Snapshot().Progress)

	s.animator.SetProgress(0.98)
	s.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, 1.0, s.animator.Snapshot().Progress)
}

func TestSessionSpeed(t *testing.T) {
	s, _ := newTestSession(t, newTestConfig(t), nil)

	s.handleEvent(key('>'))
	assert.Equal(t, 1.25, s.animator.Snapshot().Speed)

	for range 10 {
		s.handleEvent(key('>'))
	}
	assert.Equal(t, parameter.MaxSpeed, s.animator.Snapshot().Speed)

	for range 10 {
		s.handleEvent(key('<'))
	}
	assert.Equal(t, parameter.MinSpeed, s.animator.Snapshot().Speed)
}

func TestSessionCount(t *testing.T) {
	s, _ := newTestSession(t, newTestConfig(t), nil)
	s.animator.SetProgress(0.6)

	s.handleEvent(key('+'))
	st := s.animator.Snapshot()
	assert.Equal(t, 11, st.Count)
	assert.Equal(t, 0.0, st.Progress)
	assert.Equal(t, 11, s.layout.Count)
	assert.Empty(t, s.message)

	s.handleEvent(key('-'))
	s.handleEvent(key('-'))
	assert.Equal(t, 9, s.animator.Snapshot().Count)
	assert.Equal(t, 9, s.layout.Count)
}

func TestSessionCountBounds(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   rune
	}{
		{"Above max", parameter.MaxSquares, '+'},
		{"Below min", parameter.MinSquares, '-'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			cfg.Spiral.Squares = tt.start
			s, _ := newTestSession(t, cfg, nil)
			s.animator.SetProgress(0.3)

			s.handleEvent(key(tt.key))
			st := s.animator.Snapshot()
			assert.Equal(t, tt.start, st.Count)
			assert.Equal(t, 0.3, st.Progress)
			assert.Equal(t, tt.start, s.layout.Count)
			assert.Contains(t, s.message, "1..15")

			// Next key clears the message
			s.handleEvent(key('x'))
			assert.Empty(t, s.message)
		})
	}
}

func TestSessionResize(t *testing.T) {
	s, screen := newTestSession(t, newTestConfig(t), nil)
	before := s.layout.Scale

	screen.SetSize(50, 20)
	s.handleEvent(tcell.NewEventResize(50, 20))

	assert.Equal(t, 50.0, s.layout.Viewport.Width)
	assert.Less(t, s.layout.Scale, before)
	assert.Equal(t, 10, s.layout.Count)
}

func TestSessionChime(t *testing.T) {
	sound := &recordingChimer{}
	s, _ := newTestSession(t, newTestConfig(t), sound)

	s.draw()
	assert.Empty(t, sound.played)

	// n=10, progress 0.25 reveals floor(10*2*0.25) = 5 squares
	s.animator.SetProgress(0.25)
	s.draw()
	s.draw()
	assert.Equal(t, []int{4}, sound.played)

	s.animator.SetProgress(0.3)
	s.draw()
	assert.Equal(t, []int{4, 5}, sound.played)

	// Rewinding does not chime, moving forward again does
	s.animator.SetProgress(0.05)
	s.draw()
	s.animator.SetProgress(0.1)
	s.draw()
	assert.Equal(t, []int{4, 5, 1}, sound.played)
}

func TestSessionRunQuits(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Animation.FrameInterval = time.Millisecond
	cfg.Animation.PerSquare = 10 * time.Millisecond
	s, screen := newTestSession(t, cfg, nil)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()

	// Let the driver reveal something before quitting
	require.Eventually(t, func() bool {
		return s.animator.Snapshot().Progress > 0
	}, 2*time.Second, time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop on q")
	}
}

func TestSessionRunContextCancel(t *testing.T) {
	s, _ := newTestSession(t, newTestConfig(t), nil)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop on cancel")
	}
}
