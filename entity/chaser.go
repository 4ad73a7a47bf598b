package entity

import (
	"github.com/lixenwraith/chaser/physics"
	"github.com/lixenwraith/chaser/vmath"
)

// Chaser pursues a target that is re-aimed every frame
// No discrete intent and no memory of previous targets
type Chaser struct {
	body
}

// NewChaser creates a chaser at position
func NewChaser(position vmath.Vector2, s Settings) (*Chaser, error) {
	b, err := newBody(position, s)
	if err != nil {
		return nil, err
	}
	return &Chaser{body: b}, nil
}

// Update seeks target capped at speed*dt
func (c *Chaser) Update(dt float64, target vmath.Vector2) {
	position := c.Position()
	if position == target {
		return
	}
	c.SetPosition(physics.MoveTowards(position, target, c.speed*dt))
}
