package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/chaser/audio"
	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/host"
	"github.com/lixenwraith/chaser/input"
	"github.com/lixenwraith/chaser/observability"
	"github.com/lixenwraith/chaser/parameter"
)

// newScreen is swapped for a simulation screen in tests
var newScreen = tcell.NewScreen

func newRootCmd() *cobra.Command {
	v := viper.New()
	var (
		cfgFile string
		noAudio bool
	)

	cmd := &cobra.Command{
		Use:           "chaser",
		Short:         "Keep your circle away from the one chasing it",
		Long:          "Move with WASD or the arrow keys, F1 toggles collider outlines, q or Esc quits.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			if noAudio {
				cfg.Audio.Enabled = false
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default ./chaser.yaml if present)")
	flags.BoolVar(&noAudio, "no-audio", false, "disable the collision sound")
	flags.Bool("debug-colliders", false, "draw collider outlines from the start")
	flags.String("log-file", "", "write JSON logs to this file (logging is off without it)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	mustBind(v, "render.debug_colliders", cmd, "debug-colliders")
	mustBind(v, "logger.log_file", cmd, "log-file")
	mustBind(v, "logger.level", cmd, "log-level")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// run owns the terminal for the lifetime of one session
func run(ctx context.Context, cfg *config.Config) error {
	logger := observability.Initialize(cfg.Logger)
	defer observability.Sync()
	logger.Info("starting chaser", zap.String("version", Version))

	keys := input.DefaultKeyTable()
	if err := keys.ApplyBindings(cfg.Input.Bindings); err != nil {
		return err
	}

	game, err := engine.NewGame(cfg.Game(), engine.NewMonotonicTimeProvider(), logger.Named("engine"))
	if err != nil {
		return err
	}
	game.SetDebug(cfg.Render.DebugColliders)

	var sound host.Sound
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(audio.Tone{
			Frequency: parameter.HitToneFrequency,
			Duration:  parameter.HitToneMillis * time.Millisecond,
			Volume:    parameter.HitToneVolume,
		})
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Close()
			sound = sm
		}
	}

	screen, err := newScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Restore the terminal before any error or panic text reaches stderr
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := host.NewRunner(screen, game, keys, sound, logger, host.Options{
		UpdateInterval: cfg.UpdateInterval(),
		FrameInterval:  cfg.FrameInterval(),
		StepDelta:      cfg.StepDelta(),
		EventQueueSize: parameter.EventQueueSize,
		HUD:            cfg.Render.HUD,
	})

	err = runner.Run(ctx)
	if last := runner.LastSnapshot(); last != nil {
		logger.Info("session ended", zap.Uint64("ticks", last.Tick), zap.Uint64("hits", last.Hits))
	}
	return err
}
