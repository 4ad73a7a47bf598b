package parameter

// Player Entity
const (
	// PlayerRadius is the collider and render radius in world units
	PlayerRadius = 50.0

	// PlayerSpeed is the per-axis speed in world units per second
	PlayerSpeed = 250.0

	// PlayerDamagedAlpha is the render alpha while touching the chaser
	PlayerDamagedAlpha = 0.25
)
