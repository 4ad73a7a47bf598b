package physics

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/chaser/vmath"
)

// ErrInvalidRadius is returned when a collider is built with a non-positive radius
var ErrInvalidRadius = errors.New("collider radius must be greater than 0")

// ColliderState toggles collision participation
type ColliderState uint8

const (
	ColliderEnabled ColliderState = iota
	ColliderDisabled
)

func (s ColliderState) String() string {
	switch s {
	case ColliderEnabled:
		return "enabled"
	case ColliderDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Collider is a circular bounding volume owned by a single entity
// The owner moves it; the collider never moves itself
type Collider struct {
	state    ColliderState
	position vmath.Vector2
	radius   float64
}

// NewCollider creates an enabled collider, failing for radius <= 0
func NewCollider(position vmath.Vector2, radius float64) (*Collider, error) {
	// NaN fails every comparison, reject it alongside non-positive values
	if !(radius > 0) {
		return nil, errors.Wrapf(ErrInvalidRadius, "radius %v", radius)
	}
	return &Collider{
		state:    ColliderEnabled,
		position: position,
		radius:   radius,
	}, nil
}

// MustCollider is NewCollider for constant radii; panics on error
func MustCollider(position vmath.Vector2, radius float64) *Collider {
	c, err := NewCollider(position, radius)
	if err != nil {
		panic(err)
	}
	return c
}

// CollidesWith reports overlap with other
// Both must be enabled; touching circles (distance == r1+r2) do not collide
func (c *Collider) CollidesWith(other *Collider) bool {
	if c.state != ColliderEnabled || other.state != ColliderEnabled {
		return false
	}
	minDistance := c.radius + other.radius
	return vmath.Distance(c.position, other.position) < minDistance
}

func (c *Collider) Enable()  { c.state = ColliderEnabled }
func (c *Collider) Disable() { c.state = ColliderDisabled }

func (c *Collider) State() ColliderState { return c.state }
func (c *Collider) Enabled() bool        { return c.state == ColliderEnabled }
func (c *Collider) Radius() float64      { return c.radius }

func (c *Collider) Position() vmath.Vector2 { return c.position }

func (c *Collider) SetPosition(p vmath.Vector2) { c.position = p }
