package parameter

// Chaser Entity
const (
	ChaserRadius = 25.0

	// ChaserSpeed is kept below PlayerSpeed so the player can outrun it on a single axis
	ChaserSpeed = 150.0

	ChaserStartX = 0.0
	ChaserStartY = 0.0
)
