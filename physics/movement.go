package physics

import (
	"github.com/lixenwraith/chaser/vmath"
)

// MoveTowards steps position toward target by at most maxDistanceDelta
// Snaps to the exact target once within reach, so arrival never overshoots or leaves float residue
// maxDistanceDelta must be non-negative (speed * dt)
func MoveTowards(position, target vmath.Vector2, maxDistanceDelta float64) vmath.Vector2 {
	vmath.Assert(maxDistanceDelta >= 0, "negative max distance delta")

	diff := target.Sub(position)
	dist := diff.Magnitude()

	if dist == 0 || dist <= maxDistanceDelta {
		return target
	}

	return diff.DivScalar(dist).Scale(maxDistanceDelta).Add(position)
}
