package engine

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/chaser/entity"
	"github.com/lixenwraith/chaser/input"
	"github.com/lixenwraith/chaser/vmath"
)

// ErrNegativeDelta is returned by Step for dt < 0 or NaN
var ErrNegativeDelta = errors.New("frame delta must be non-negative")

// Config is the resolved simulation setup
type Config struct {
	WorldWidth  float64
	WorldHeight float64

	Player      entity.Settings
	PlayerStart vmath.Vector2

	Chaser      entity.Settings
	ChaserStart vmath.Vector2

	// Synthesized key release window; 0 means the host reports releases
	KeyHold time.Duration
}

// Game orchestrates one player and one chaser
// Not safe for concurrent use: the frame loop goroutine owns it
type Game struct {
	cfg    Config
	player *entity.Player
	chaser *entity.Chaser
	keys   *input.KeyTracker
	logger *zap.Logger

	onHit func()

	colliding bool
	debug     bool
	tick      uint64
	hits      uint64
}

// NewGame builds the entities from cfg
func NewGame(cfg Config, clock TimeProvider, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	player, err := entity.NewPlayer(cfg.PlayerStart, cfg.Player)
	if err != nil {
		return nil, errors.Wrap(err, "create player")
	}
	chaser, err := entity.NewChaser(cfg.ChaserStart, cfg.Chaser)
	if err != nil {
		return nil, errors.Wrap(err, "create chaser")
	}

	g := &Game{
		cfg:    cfg,
		player: player,
		chaser: chaser,
		keys:   input.NewKeyTracker(clock, cfg.KeyHold),
		logger: logger,
	}

	logger.Debug("game created",
		zap.Any("player_start", cfg.PlayerStart),
		zap.Any("chaser_start", cfg.ChaserStart),
		zap.Duration("key_hold", cfg.KeyHold),
	)
	return g, nil
}

func (g *Game) Player() *entity.Player { return g.player }
func (g *Game) Chaser() *entity.Chaser { return g.chaser }
func (g *Game) Config() Config         { return g.cfg }

// SetHitListener registers fn to run when the player starts touching the chaser
func (g *Game) SetHitListener(fn func()) {
	g.onHit = fn
}

// ToggleDebug flips the collider overlay flag carried in snapshots
func (g *Game) ToggleDebug() {
	g.debug = !g.debug
	g.logger.Debug("collider overlay toggled", zap.Bool("enabled", g.debug))
}

func (g *Game) SetDebug(on bool) { g.debug = on }

// HandleKey records a press (or auto-repeat) and re-derives player intent
func (g *Game) HandleKey(d input.Direction) {
	if g.keys.Press(d) {
		g.player.InputKeys(g.keys.Keys())
	}
}

// HandleRelease records a release and re-derives player intent
func (g *Game) HandleRelease(d input.Direction) {
	if g.keys.Release(d) {
		g.player.InputKeys(g.keys.Keys())
	}
}

// Step advances one frame and returns whether player and chaser collide
// Order: expired keys -> player -> chaser (aimed at the new player position) -> collision -> damage state
func (g *Game) Step(dt float64) (bool, error) {
	if !(dt >= 0) || math.IsInf(dt, 1) {
		return g.colliding, errors.Wrapf(ErrNegativeDelta, "dt %v", dt)
	}

	if g.keys.Expire() {
		g.player.InputKeys(g.keys.Keys())
	}

	g.player.Update(dt)
	g.chaser.Update(dt, g.player.Position())

	colliding := entity.Collides(g.player, g.chaser)
	if colliding {
		g.player.Damage()
	} else {
		g.player.Normal()
	}

	if colliding && !g.colliding {
		g.hits++
		g.logger.Debug("player hit",
			zap.Uint64("tick", g.tick),
			zap.Uint64("hits", g.hits),
			zap.Any("player", g.player.Position()),
			zap.Any("chaser", g.chaser.Position()),
		)
		if g.onHit != nil {
			g.onHit()
		}
	}

	g.colliding = colliding
	g.tick++
	return colliding, nil
}

// Snapshot captures render state after the last Step
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		WorldWidth:  g.cfg.WorldWidth,
		WorldHeight: g.cfg.WorldHeight,
		Player:      bodyOf(g.player),
		Chaser:      bodyOf(g.chaser),
		PlayerAlpha: g.player.Alpha(),
		Colliding:   g.colliding,
		Debug:       g.debug,
		Tick:        g.tick,
		Hits:        g.hits,
	}
}
