// Package config loads runtime settings from file, environment and flags via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/golden-spiral/parameter"
)

// EnvKeyReplacer maps nested keys to environment names, spiral.squares -> SPIRAL_SPIRAL_SQUARES
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ErrInvalidConfig marks a setting outside its accepted range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the entire application configuration
type Config struct {
	Spiral    SpiralConfig    `mapstructure:"spiral" yaml:"spiral"`
	Viewport  ViewportConfig  `mapstructure:"viewport" yaml:"viewport"`
	Animation AnimationConfig `mapstructure:"animation" yaml:"animation"`
	Render    RenderConfig    `mapstructure:"render" yaml:"render"`
	Audio     AudioConfig     `mapstructure:"audio" yaml:"audio"`
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
}

type SpiralConfig struct {
	Squares int     `mapstructure:"squares" yaml:"squares"`
	Speed   float64 `mapstructure:"speed" yaml:"speed"`
}

// ViewportConfig is the target area for non-interactive geometry output
type ViewportConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

type AnimationConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval" yaml:"frame_interval"`
	PerSquare     time.Duration `mapstructure:"per_square" yaml:"per_square"`
}

type RenderConfig struct {
	CellAspect float64 `mapstructure:"cell_aspect" yaml:"cell_aspect"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig maps log levels to console color names
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// SetDefaults registers every key's default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("spiral.squares", parameter.DefaultSquares)
	v.SetDefault("spiral.speed", parameter.DefaultSpeed)

	v.SetDefault("viewport.width", parameter.DefaultViewportWidth)
	v.SetDefault("viewport.height", parameter.DefaultViewportHeight)

	v.SetDefault("animation.frame_interval", parameter.FrameUpdateInterval)
	v.SetDefault("animation.per_square", parameter.PerSquareDuration)

	v.SetDefault("render.cell_aspect", parameter.CellAspect)

	v.SetDefault("audio.enabled", false)

	v.SetDefault("logger.service_name", "golden-spiral")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")
}

// Load unmarshals v into a Config and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges; speed outside its bounds is not an error, it is clamped when applied
func (c *Config) Validate() error {
	if c.Spiral.Squares < 1 {
		return fmt.Errorf("spiral.squares %d must be at least 1: %w", c.Spiral.Squares, ErrInvalidConfig)
	}
	if c.Spiral.Speed <= 0 {
		return fmt.Errorf("spiral.speed %g must be positive: %w", c.Spiral.Speed, ErrInvalidConfig)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport %gx%g must be positive: %w", c.Viewport.Width, c.Viewport.Height, ErrInvalidConfig)
	}
	if c.Animation.FrameInterval <= 0 {
		return fmt.Errorf("animation.frame_interval %v must be positive: %w", c.Animation.FrameInterval, ErrInvalidConfig)
	}
	if c.Animation.PerSquare <= 0 {
		return fmt.Errorf("animation.per_square %v must be positive: %w", c.Animation.PerSquare, ErrInvalidConfig)
	}
	if c.Render.CellAspect <= 0 {
		return fmt.Errorf("render.cell_aspect %g must be positive: %w", c.Render.CellAspect, ErrInvalidConfig)
	}
	return nil
}

// InteractiveSquares reports whether the square count is inside the interactive range
func (c *Config) InteractiveSquares() bool {
	return c.Spiral.Squares >= parameter.MinSquares && c.Spiral.Squares <= parameter.MaxSquares
}
