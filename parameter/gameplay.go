package parameter

// World
const (
	WorldWidth  = 1024.0
	WorldHeight = 512.0
)

// Audio
const (
	// HitToneFrequency is the sine frequency of the collision cue in Hz
	HitToneFrequency = 880.0

	// HitToneMillis is the collision cue length
	HitToneMillis = 50

	// HitToneVolume is the beep effects.Volume level (log2 scale, 0 = unity)
	HitToneVolume = -1.0
)
