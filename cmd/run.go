package cmd

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/golden-spiral/audio"
	"github.com/lixenwraith/golden-spiral/config"
	"github.com/lixenwraith/golden-spiral/parameter"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the spiral in the terminal",
		Long: `Animate the spiral in the terminal.

Keys: space play/pause, r reset, +/- square count, >/< speed,
left/right scrub, q or Esc quit.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConsole: consoleDiscard},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.InteractiveSquares() {
				return fmt.Errorf("spiral.squares %d outside %d..%d: %w",
					a.cfg.Spiral.Squares, parameter.MinSquares, parameter.MaxSquares, config.ErrInvalidConfig)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			var finiOnce sync.Once
			fini := func() { finiOnce.Do(screen.Fini) }
			defer fini()

			var sound chimer
			if a.cfg.Audio.Enabled {
				sm := audio.NewSoundManager()
				if err := sm.Initialize(); err != nil {
					a.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
				} else {
					defer sm.Cleanup()
					sound = sm
				}
			}

			s, err := newSession(a.cfg, a.log, screen, sound)
			if err != nil {
				return err
			}
			s.restore = fini
			return s.run(cmd.Context())
		},
	}

	cmd.Flags().Bool("audio", false, "play a chime as squares appear")
	bind(a.v, cmd.Flags().Lookup("audio"), "audio.enabled")
	return cmd
}
