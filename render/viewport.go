package render

import (
	"math"

	"github.com/lixenwraith/chaser/parameter/visual"
	"github.com/lixenwraith/chaser/vmath"
)

// Viewport maps world coordinates onto a cell grid, preserving aspect and centering the world
type Viewport struct {
	unitsPerCol float64
	unitsPerRow float64
	offsetX     float64 // In cells
	offsetY     float64
	top         int // First row available to the world
}

// NewViewport fits a worldW x worldH world into cols x rows cells starting at row top
func NewViewport(worldW, worldH float64, cols, rows, top int) Viewport {
	avail := rows - top
	if cols <= 0 || avail <= 0 {
		return Viewport{unitsPerCol: math.Inf(1), unitsPerRow: math.Inf(1), top: top}
	}

	perCol := math.Max(worldW/float64(cols), worldH/(float64(avail)*visual.CellAspect))
	perRow := perCol * visual.CellAspect

	return Viewport{
		unitsPerCol: perCol,
		unitsPerRow: perRow,
		offsetX:     (float64(cols) - worldW/perCol) / 2,
		offsetY:     (float64(avail) - worldH/perRow) / 2,
		top:         top,
	}
}

// CellCenter returns the world position of the center of cell x, y
func (v Viewport) CellCenter(x, y int) vmath.Vector2 {
	return vmath.V2(
		(float64(x)+0.5-v.offsetX)*v.unitsPerCol,
		(float64(y-v.top)+0.5-v.offsetY)*v.unitsPerRow,
	)
}

// ToCell returns the cell containing world position p
func (v Viewport) ToCell(p vmath.Vector2) (x, y int) {
	return int(math.Floor(p.X/v.unitsPerCol + v.offsetX)),
		int(math.Floor(p.Y/v.unitsPerRow+v.offsetY)) + v.top
}

// CellSize returns the world extent of one cell
func (v Viewport) CellSize() (w, h float64) {
	return v.unitsPerCol, v.unitsPerRow
}
