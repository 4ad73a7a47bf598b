package entity

import (
	"github.com/lixenwraith/chaser/input"
	"github.com/lixenwraith/chaser/parameter"
	"github.com/lixenwraith/chaser/physics"
	"github.com/lixenwraith/chaser/vmath"
)

// Player render alpha for the normal and damaged visual states
const (
	AlphaNormal  = 1.0
	AlphaDamaged = parameter.PlayerDamagedAlpha
)

// Player moves by discrete per-axis intent driven from key state
type Player struct {
	body
	horizontal AxisState
	vertical   AxisState
	alpha      float64
}

// NewPlayer creates a player at position with both axes Active(NoMove)
func NewPlayer(position vmath.Vector2, s Settings) (*Player, error) {
	b, err := newBody(position, s)
	if err != nil {
		return nil, err
	}
	return &Player{
		body:       b,
		horizontal: Active(NoMove),
		vertical:   Active(NoMove),
		alpha:      AlphaNormal,
	}, nil
}

func (p *Player) Horizontal() AxisState { return p.horizontal }
func (p *Player) Vertical() AxisState   { return p.vertical }

// KillAxis permanently disables movement on axis
func (p *Player) KillAxis(axis Axis) {
	switch axis {
	case AxisHorizontal:
		p.horizontal = Dead()
	case AxisVertical:
		p.vertical = Dead()
	}
}

// Input maps key state to per-axis intent; Dead axes are left untouched
// Vertical Minus is screen-down (+Y), Plus is screen-up (-Y)
func (p *Player) Input(left, right, up, down input.KeyState) {
	if !p.horizontal.IsDead() {
		p.horizontal = Active(axisIntent(left, right))
	}
	if !p.vertical.IsDead() {
		p.vertical = Active(axisIntent(down, up))
	}
}

// InputKeys is Input over a Keys snapshot
func (p *Player) InputKeys(k input.Keys) {
	p.Input(k.Left, k.Right, k.Up, k.Down)
}

// axisIntent: only minus -> Minus, only plus -> Plus, both or neither -> NoMove
func axisIntent(minus, plus input.KeyState) Intent {
	switch {
	case minus == input.Pressed && plus == input.NotPressed:
		return Minus
	case minus == input.NotPressed && plus == input.Pressed:
		return Plus
	default:
		return NoMove
	}
}

// Update advances position by one frame
//
// The target is built per axis, each active axis offset by speed*dt, then reached through
// MoveTowards capped at the same speed*dt. Diagonal targets sit speed*dt*√2 away, so
// diagonal motion is throttled to the single-axis cap rather than normalized.
func (p *Player) Update(dt float64) {
	step := p.speed * dt
	current := p.Position()
	target := current

	switch p.horizontal.Intent() {
	case Minus:
		target.X = current.X - step
	case Plus:
		target.X = current.X + step
	}

	switch p.vertical.Intent() {
	case Minus:
		target.Y = current.Y + step
	case Plus:
		target.Y = current.Y - step
	}

	if target != current {
		p.SetPosition(physics.MoveTowards(current, target, step))
	}
}

// Damage switches to the translucent hit state
func (p *Player) Damage() { p.alpha = AlphaDamaged }

// Normal restores the opaque state
func (p *Player) Normal() { p.alpha = AlphaNormal }

func (p *Player) Alpha() float64 { return p.alpha }
func (p *Player) Damaged() bool  { return p.alpha != AlphaNormal }
