package parameter

import "time"

// Game Loop Timing
const (
	// UpdateRate is the fixed number of simulation steps per second; each step gets dt = 1/UpdateRate
	UpdateRate = 120

	// FrameRate is the render rate
	FrameRate = 60

	// EventQueueSize is the buffered capacity between the terminal event pump and the frame loop
	EventQueueSize = 100
)

// Input
const (
	// KeyHoldWindow keeps a key pressed after its last press or auto-repeat
	// Must exceed the terminal's initial auto-repeat delay (typically 250-500ms) to avoid stutter
	KeyHoldWindow = 400 * time.Millisecond
)
