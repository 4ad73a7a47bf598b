package engine

import (
	"github.com/lixenwraith/chaser/entity"
	"github.com/lixenwraith/chaser/vmath"
)

// Body is the render view of one collidable entity
type Body struct {
	Position        vmath.Vector2
	Radius          float64
	ColliderEnabled bool
}

// Snapshot is a copy of everything the renderer reads for one frame
type Snapshot struct {
	WorldWidth, WorldHeight float64

	Player      Body
	Chaser      Body
	PlayerAlpha float64

	Colliding bool
	Debug     bool
	Tick      uint64
	Hits      uint64
}

func bodyOf(e entity.Collidable) Body {
	c := e.Collider()
	return Body{
		Position:        e.Position(),
		Radius:          c.Radius(),
		ColliderEnabled: c.Enabled(),
	}
}
