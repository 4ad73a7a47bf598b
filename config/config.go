package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/entity"
	"github.com/lixenwraith/chaser/parameter"
	"github.com/lixenwraith/chaser/vmath"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix namespaces environment overrides, e.g. CHASER_PLAYER_SPEED
const EnvPrefix = "CHASER"

type Config struct {
	World  WorldConfig  `mapstructure:"world" yaml:"world"`
	Player EntityConfig `mapstructure:"player" yaml:"player"`
	Chaser EntityConfig `mapstructure:"chaser" yaml:"chaser"`
	Loop   LoopConfig   `mapstructure:"loop" yaml:"loop"`
	Input  InputConfig  `mapstructure:"input" yaml:"input"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Audio  AudioConfig  `mapstructure:"audio" yaml:"audio"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

type WorldConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// EntityConfig tunes one entity kind
// Start is [x, y]; empty means the world center
type EntityConfig struct {
	Radius float64   `mapstructure:"radius" yaml:"radius"`
	Speed  float64   `mapstructure:"speed" yaml:"speed"`
	Start  []float64 `mapstructure:"start" yaml:"start"`
}

type LoopConfig struct {
	UpdateRate int `mapstructure:"update_rate" yaml:"update_rate"`
	FrameRate  int `mapstructure:"frame_rate" yaml:"frame_rate"`
}

type InputConfig struct {
	KeyHold  time.Duration       `mapstructure:"key_hold" yaml:"key_hold"`
	Bindings map[string][]string `mapstructure:"bindings" yaml:"bindings"`
}

type RenderConfig struct {
	DebugColliders bool `mapstructure:"debug_colliders" yaml:"debug_colliders"`
	HUD            bool `mapstructure:"hud" yaml:"hud"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// LoggerConfig controls the file logger; an empty LogFile disables logging
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the built-in tuning on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("world.width", parameter.WorldWidth)
	v.SetDefault("world.height", parameter.WorldHeight)

	v.SetDefault("player.radius", parameter.PlayerRadius)
	v.SetDefault("player.speed", parameter.PlayerSpeed)
	v.SetDefault("player.start", []float64{})

	v.SetDefault("chaser.radius", parameter.ChaserRadius)
	v.SetDefault("chaser.speed", parameter.ChaserSpeed)
	v.SetDefault("chaser.start", []float64{parameter.ChaserStartX, parameter.ChaserStartY})

	v.SetDefault("loop.update_rate", parameter.UpdateRate)
	v.SetDefault("loop.frame_rate", parameter.FrameRate)

	v.SetDefault("input.key_hold", parameter.KeyHoldWindow)

	v.SetDefault("render.debug_colliders", false)
	v.SetDefault("render.hud", true)

	v.SetDefault("audio.enabled", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// NewDefaultConfig returns the built-in configuration
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads an optional config file plus CHASER_* environment overrides into v and decodes it
// A missing file is an error only when cfgFile names it explicitly
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("chaser")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return errors.Wrap(ErrInvalid, "world.width and world.height must be positive")
	case c.Player.Radius <= 0:
		return errors.Wrap(ErrInvalid, "player.radius must be positive")
	case c.Chaser.Radius <= 0:
		return errors.Wrap(ErrInvalid, "chaser.radius must be positive")
	case c.Player.Speed < 0:
		return errors.Wrap(ErrInvalid, "player.speed must not be negative")
	case c.Chaser.Speed < 0:
		return errors.Wrap(ErrInvalid, "chaser.speed must not be negative")
	case c.Loop.UpdateRate <= 0:
		return errors.Wrap(ErrInvalid, "loop.update_rate must be a positive integer")
	case c.Loop.FrameRate <= 0:
		return errors.Wrap(ErrInvalid, "loop.frame_rate must be a positive integer")
	case c.Input.KeyHold < 0:
		return errors.Wrap(ErrInvalid, "input.key_hold must not be negative")
	}
	if len(c.Player.Start) != 0 && len(c.Player.Start) != 2 {
		return errors.Wrap(ErrInvalid, "player.start must be [x, y]")
	}
	if len(c.Chaser.Start) != 0 && len(c.Chaser.Start) != 2 {
		return errors.Wrap(ErrInvalid, "chaser.start must be [x, y]")
	}
	return nil
}

// UpdateInterval is the fixed simulation tick
func (c *Config) UpdateInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.UpdateRate)
}

// FrameInterval is the render tick
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.FrameRate)
}

// StepDelta is the dt handed to every Step, in seconds
func (c *Config) StepDelta() float64 {
	return 1.0 / float64(c.Loop.UpdateRate)
}

// Game resolves the simulation setup
func (c *Config) Game() engine.Config {
	center := vmath.V2(c.World.Width/2, c.World.Height/2)
	return engine.Config{
		WorldWidth:  c.World.Width,
		WorldHeight: c.World.Height,
		Player:      entity.Settings{Radius: c.Player.Radius, Speed: c.Player.Speed},
		PlayerStart: startOr(c.Player.Start, center),
		Chaser:      entity.Settings{Radius: c.Chaser.Radius, Speed: c.Chaser.Speed},
		ChaserStart: startOr(c.Chaser.Start, center),
		KeyHold:     c.Input.KeyHold,
	}
}

func startOr(start []float64, fallback vmath.Vector2) vmath.Vector2 {
	if len(start) != 2 {
		return fallback
	}
	return vmath.V2(start[0], start[1])
}
