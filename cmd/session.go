package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/golden-spiral/config"
	"github.com/lixenwraith/golden-spiral/engine"
	"github.com/lixenwraith/golden-spiral/parameter"
	"github.com/lixenwraith/golden-spiral/render"
	"github.com/lixenwraith/golden-spiral/scene"
)

// chimer plays the cue for a newly revealed square
type chimer interface {
	PlayReveal(index int) bool
}

// session is one interactive visualization bound to a screen
// layout, shown and message are owned by the event loop goroutine
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	animator *engine.Animator
	sound    chimer
	clock    engine.TimeProvider

	layout  scene.Layout
	shown   int
	message string

	// Restores the terminal before a panic propagates
	restore func()
}

func newSession(cfg *config.Config, log *zap.Logger, screen tcell.Screen, sound chimer) (*session, error) {
	animator, err := engine.NewAnimator(cfg.Spiral.Squares)
	if err != nil {
		return nil, err
	}
	animator.SetSpeed(cfg.Spiral.Speed)
	if speed := animator.Snapshot().Speed; speed != cfg.Spiral.Speed {
		log.Warn("speed clamped", zap.Float64("requested", cfg.Spiral.Speed), zap.Float64("speed", speed))
	}

	s := &session{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, cfg.Render.CellAspect),
		animator: animator,
		sound:    sound,
		restore:  func() {},
	}
	if err := s.refit(cfg.Spiral.Squares); err != nil {
		return nil, err
	}
	return s, nil
}

// refit rebuilds the layout for n squares against the current screen size
func (s *session) refit(n int) error {
	layout, err := scene.Build(n, s.renderer.Viewport())
	if err != nil {
		return err
	}
	s.layout = layout
	s.log.Debug("geometry fitted", zap.String("diagnostic", layout.Diagnostic))
	return nil
}

// run drives the animation and input until ctx ends or the user quits
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)
	frames := make(chan struct{}, 1)

	notify := func(engine.AnimationState) {
		select {
		case frames <- struct{}{}:
		default:
		}
	}
	driver := engine.NewDriver(s.animator, engine.DriverConfig{
		FrameInterval: s.cfg.Animation.FrameInterval,
		PerSquare:     s.cfg.Animation.PerSquare,
		Clock:         s.clock,
		Logger:        s.log,
		OnFrame: func(st engine.AnimationState) {
			if st.Animating {
				notify(st)
			}
		},
		OnComplete: notify,
	})

	s.animator.Start()
	s.draw()

	g.Go(func() error { return driver.Run(ctx) })
	g.Go(func() error {
		s.screen.ChannelEvents(events, ctx.Done())
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return s.loop(ctx, events, frames)
	})
	return g.Wait()
}

func (s *session) loop(ctx context.Context, events <-chan tcell.Event, frames <-chan struct{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.restore()
			s.log.Error("renderer panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			panic(r)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-frames:
			s.draw()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if s.handleEvent(ev) {
				return nil
			}
			s.draw()
		}
	}
}

// handleEvent applies one input event, reporting whether the session should end
func (s *session) handleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.renderer.Resize()
		if err := s.refit(s.layout.Count); err != nil {
			s.log.Error("refit failed", zap.Error(err))
		}
	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return false
}

func (s *session) handleKey(ev *tcell.EventKey) (quit bool) {
	s.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		s.scrub(-parameter.ProgressStep)
	case tcell.KeyRight:
		s.scrub(parameter.ProgressStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			s.animator.Toggle()
		case 'r', 'R':
			s.animator.Reset()
			s.shown = 0
		case '+', '=':
			s.changeCount(1)
		case '-', '_':
			s.changeCount(-1)
		case '>', '.':
			s.changeSpeed(parameter.SpeedStep)
		case '<', ',':
			s.changeSpeed(-parameter.SpeedStep)
		}
	}
	return false
}

func (s *session) scrub(delta float64) {
	s.animator.Update(func(st *engine.AnimationState) {
		st.SetProgress(st.Progress + delta)
	})
}

func (s *session) changeSpeed(delta float64) {
	st := s.animator.Snapshot()
	s.animator.SetSpeed(st.Speed + delta)
}

// changeCount rejects counts outside the interactive range and keeps the current state
func (s *session) changeCount(delta int) {
	n := s.layout.Count + delta
	if n < parameter.MinSquares || n > parameter.MaxSquares {
		s.message = fmt.Sprintf("squares must be %d..%d", parameter.MinSquares, parameter.MaxSquares)
		return
	}
	if err := s.refit(n); err != nil {
		s.message = err.Error()
		return
	}
	if err := s.animator.SetCount(n); err != nil {
		s.message = err.Error()
		return
	}
	s.shown = 0
	s.log.Info("square count changed", zap.Int("squares", n))
}

// draw renders the current state, chiming when more squares became visible
func (s *session) draw() {
	f := s.layout.Frame(s.animator.Snapshot())
	if s.sound != nil && f.Reveal.Squares > s.shown {
		s.sound.PlayReveal(f.Reveal.Squares - 1)
	}
	s.shown = f.Reveal.Squares
	s.renderer.RenderFrame(f, render.Status{Audio: s.sound != nil, Message: s.message})
}
