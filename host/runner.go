package host

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/input"
	"github.com/lixenwraith/chaser/render"
)

// ErrCrashed wraps a panic recovered from the frame loop
var ErrCrashed = errors.New("frame loop crashed")

// Options sets loop timing
type Options struct {
	UpdateInterval time.Duration // Wall time between Steps
	FrameInterval  time.Duration // Wall time between renders
	StepDelta      float64       // dt passed to every Step, seconds
	EventQueueSize int
	HUD            bool
}

// Sound receives the collision cue
type Sound interface {
	PlayHit()
}

// Runner drives a Game from a tcell screen
//
// Two goroutines: the event pump blocks in PollEvent and forwards events; the frame loop
// owns the Game and does input, fixed-dt updates and rendering. Nothing else touches the Game.
type Runner struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.Renderer
	keys     *input.KeyTable
	logger   *zap.Logger
	opts     Options

	last atomic.Pointer[engine.Snapshot]
}

// NewRunner wires game output to screen and sound; sound may be nil
func NewRunner(screen tcell.Screen, game *engine.Game, keys *input.KeyTable, sound Sound, logger *zap.Logger, opts Options) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if sound != nil {
		game.SetHitListener(sound.PlayHit)
	}
	return &Runner{
		screen:   screen,
		game:     game,
		renderer: render.NewRenderer(screen, opts.HUD),
		keys:     keys,
		logger:   logger.Named("host"),
		opts:     opts,
	}
}

// LastSnapshot returns the state published after the most recent Step, nil before the first
// Safe to call from any goroutine
func (r *Runner) LastSnapshot() *engine.Snapshot {
	return r.last.Load()
}

// Run blocks until the player quits, ctx is canceled, or the loop fails
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, r.opts.EventQueueSize)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.pump(ctx, events)
	})
	g.Go(func() error {
		// Cancel before waking the pump out of PollEvent so it sees ctx done
		defer func() { _ = r.screen.PostEvent(tcell.NewEventInterrupt(nil)) }()
		defer cancel()
		return r.loop(ctx, events)
	})

	return g.Wait()
}

func (r *Runner) pump(ctx context.Context, out chan<- tcell.Event) error {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case out <- ev:
		}
	}
}

func (r *Runner) loop(ctx context.Context, events <-chan tcell.Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("frame loop panic", zap.Any("panic", rec), zap.ByteString("stack", debug.Stack()))
			err = errors.Wrapf(ErrCrashed, "%v\n%s", rec, debug.Stack())
		}
	}()

	update := time.NewTicker(r.opts.UpdateInterval)
	defer update.Stop()
	frame := time.NewTicker(r.opts.FrameInterval)
	defer frame.Stop()

	r.logger.Info("loop started",
		zap.Duration("update_interval", r.opts.UpdateInterval),
		zap.Duration("frame_interval", r.opts.FrameInterval),
	)
	r.publish()
	r.renderer.Draw(r.game.Snapshot())

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("loop canceled")
			return nil

		case ev := <-events:
			if quit := r.handleEvent(ev); quit {
				r.logger.Info("quit requested")
				return nil
			}

		case <-update.C:
			if _, err := r.game.Step(r.opts.StepDelta); err != nil {
				return errors.Wrap(err, "step")
			}
			r.publish()

		case <-frame.C:
			r.renderer.Draw(r.game.Snapshot())
		}
	}
}

// handleEvent applies one terminal event, returns true on quit
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry := r.keys.LookupEvent(ev)
		switch entry.Action {
		case input.ActionQuit:
			return true
		case input.ActionMove:
			r.game.HandleKey(entry.Direction)
		case input.ActionToggleDebug:
			r.game.ToggleDebug()
		}

	case *tcell.EventResize:
		r.screen.Sync()
		r.renderer.Draw(r.game.Snapshot())
	}
	return false
}

func (r *Runner) publish() {
	s := r.game.Snapshot()
	r.last.Store(&s)
}
