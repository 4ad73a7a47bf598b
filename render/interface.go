package render

import "github.com/gdamore/tcell/v2"

// Canvas is the slice of tcell.Screen the renderer draws to
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}
