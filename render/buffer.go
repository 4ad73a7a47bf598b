package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// RenderBuffer composes a frame before it is flushed to a Canvas
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

func (b *RenderBuffer) Width() int  { return b.width }
func (b *RenderBuffer) Height() int { return b.height }

// Fill resets every cell to a blank of color bg
func (b *RenderBuffer) Fill(bg colorful.Color) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields the zero Cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// BlendBg alpha-blends c over the cell background
func (b *RenderBuffer) BlendBg(x, y int, c colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Bg = cell.Bg.BlendRgb(c, clamp01(alpha)).Clamped()
}

// SetText writes runes starting at x, y with foreground fg, keeping backgrounds
func (b *RenderBuffer) SetText(x, y int, text string, fg colorful.Color) {
	for _, r := range text {
		if !b.inBounds(x, y) {
			return
		}
		cell := &b.cells[y*b.width+x]
		cell.Rune = r
		cell.Fg = fg
		x++
	}
}

// Flush copies every cell to the canvas and shows it
func (b *RenderBuffer) Flush(c Canvas) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Fg)).
				Background(toTcell(cell.Bg))
			c.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	c.Show()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
