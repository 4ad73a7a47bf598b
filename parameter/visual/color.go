package visual

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scene palette
var (
	Background = colorful.Color{R: 0.25, G: 0.25, B: 0.25}
	Player     = colorful.Color{R: 1, G: 1, B: 1}
	Chaser     = colorful.Color{R: 1, G: 0, B: 0}
	Debug      = colorful.Color{R: 0, G: 1, B: 0}
	HUD        = colorful.Color{R: 0.8, G: 0.8, B: 0.8}
)

const (
	// DebugAlpha is the collider outline blend over whatever is beneath it
	DebugAlpha = 0.5

	// CellAspect is a terminal cell's height over its width
	CellAspect = 2.0
)
