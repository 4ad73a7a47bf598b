package entity

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/chaser/physics"
	"github.com/lixenwraith/chaser/vmath"
)

// ErrInvalidSpeed is returned for negative entity speeds
var ErrInvalidSpeed = errors.New("entity speed must not be negative")

// Positioned exposes an entity's world position
type Positioned interface {
	Position() vmath.Vector2
	SetPosition(vmath.Vector2)
}

// Collidable is a positioned entity bounded by a collider
type Collidable interface {
	Positioned
	Collider() *physics.Collider
}

// Collides reports whether two entities' colliders overlap
func Collides(a, b Collidable) bool {
	return a.Collider().CollidesWith(b.Collider())
}

// Settings holds per-kind tuning
type Settings struct {
	Radius float64 // Collider radius, world units
	Speed  float64 // World units per second
}

// body is the collider-backed position shared by Player and Chaser
type body struct {
	collider *physics.Collider
	speed    float64
}

func newBody(position vmath.Vector2, s Settings) (body, error) {
	if s.Speed < 0 {
		return body{}, errors.Wrapf(ErrInvalidSpeed, "speed %v", s.Speed)
	}
	c, err := physics.NewCollider(position, s.Radius)
	if err != nil {
		return body{}, err
	}
	return body{collider: c, speed: s.Speed}, nil
}

func (b *body) Position() vmath.Vector2     { return b.collider.Position() }
func (b *body) SetPosition(p vmath.Vector2) { b.collider.SetPosition(p) }
func (b *body) Collider() *physics.Collider { return b.collider }
func (b *body) Speed() float64              { return b.speed }
