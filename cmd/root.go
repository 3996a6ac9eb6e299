// Package cmd wires configuration, logging and the spiral packages into the golden-spiral command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/golden-spiral/config"
	"github.com/lixenwraith/golden-spiral/observability"
	"github.com/lixenwraith/golden-spiral/parameter"
)

// annotationConsole selects where a command's console log stream goes
const (
	annotationConsole = "console"
	consoleDiscard    = "discard"
)

// app carries state shared by every subcommand of one root
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCmd builds the command tree around its own viper instance
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "golden-spiral",
		Short:         "Fibonacci golden-spiral geometry and terminal animation",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}
	root.SetVersionTemplate("golden-spiral {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./config.yaml)")
	flags.IntP("squares", "n", parameter.DefaultSquares, "number of squares")
	flags.Float64("speed", parameter.DefaultSpeed, "animation speed multiplier")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "rotated JSON log file")

	bind(a.v, flags.Lookup("squares"), "spiral.squares")
	bind(a.v, flags.Lookup("speed"), "spiral.speed")
	bind(a.v, flags.Lookup("log-level"), "logger.level")
	bind(a.v, flags.Lookup("log-file"), "logger.log_file")

	root.AddCommand(
		newRunCmd(a),
		newGeometryCmd(a),
		newRatiosCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command with signal-aware context and exits 1 on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
		observability.Sync()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	observability.Sync()
}

// initialize reads file and env settings, validates them and builds the logger
func (a *app) initialize(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("SPIRAL")
	a.v.SetEnvKeyReplacer(config.EnvKeyReplacer)
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		observability.Initialize(config.LoggerConfig{Level: "info", Format: "console"}, zapcore.AddSync(cmd.ErrOrStderr()))
		return err
	}
	a.cfg = cfg

	observability.Initialize(cfg.Logger, zapcore.AddSync(consoleWriter(cmd)))
	a.log = observability.GetLogger().Named(cmd.Name())
	a.log.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.Int("squares", cfg.Spiral.Squares),
		zap.Float64("speed", cfg.Spiral.Speed),
	)
	return nil
}

// consoleWriter routes console logs away from the screen for commands that own the terminal
func consoleWriter(cmd *cobra.Command) io.Writer {
	if cmd.Annotations[annotationConsole] == consoleDiscard {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

func bind(v *viper.Viper, flag *pflag.Flag, key string) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}
