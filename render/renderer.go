package render

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/parameter/visual"
	"github.com/lixenwraith/chaser/vmath"
)

// Renderer draws snapshots as filled circles on a terminal grid
type Renderer struct {
	canvas Canvas
	buf    *RenderBuffer
	hud    bool
}

// NewRenderer creates a renderer for canvas; hud reserves the top row for a status line
func NewRenderer(canvas Canvas, hud bool) *Renderer {
	w, h := canvas.Size()
	return &Renderer{
		canvas: canvas,
		buf:    NewRenderBuffer(w, h),
		hud:    hud,
	}
}

// Buffer exposes the last composed frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Draw composes and flushes one frame
// Chaser first, player over it with its alpha; collider outlines on top in debug mode
func (r *Renderer) Draw(s engine.Snapshot) {
	w, h := r.canvas.Size()
	if w != r.buf.Width() || h != r.buf.Height() {
		r.buf.Resize(w, h)
	}
	r.buf.Fill(visual.Background)

	top := 0
	if r.hud {
		top = 1
	}
	vp := NewViewport(s.WorldWidth, s.WorldHeight, w, h, top)

	r.fillCircle(vp, s.Chaser, visual.Chaser, 1)
	r.fillCircle(vp, s.Player, visual.Player, s.PlayerAlpha)

	if s.Debug {
		r.outlineCollider(vp, s.Chaser)
		r.outlineCollider(vp, s.Player)
	}

	if r.hud {
		r.drawHUD(s)
	}

	r.buf.Flush(r.canvas)
}

func (r *Renderer) fillCircle(vp Viewport, b engine.Body, c colorful.Color, alpha float64) {
	r.forCellsNear(vp, b.Position, b.Radius, func(x, y int, dist float64) {
		if dist < b.Radius {
			r.buf.BlendBg(x, y, c, alpha)
		}
	})
}

// outlineCollider marks cells whose center lies within half a cell of the collider boundary
// Disabled colliders are not drawn
func (r *Renderer) outlineCollider(vp Viewport, b engine.Body) {
	if !b.ColliderEnabled {
		return
	}
	cw, ch := vp.CellSize()
	band := math.Max(cw, ch) / 2
	r.forCellsNear(vp, b.Position, b.Radius+band, func(x, y int, dist float64) {
		if math.Abs(dist-b.Radius) <= band {
			r.buf.BlendBg(x, y, visual.Debug, visual.DebugAlpha)
		}
	})
}

func (r *Renderer) forCellsNear(vp Viewport, center vmath.Vector2, radius float64, fn func(x, y int, dist float64)) {
	x0, y0 := vp.ToCell(center.Sub(vmath.V2(radius, radius)))
	x1, y1 := vp.ToCell(center.Add(vmath.V2(radius, radius)))
	top := 0
	if r.hud {
		top = 1
	}
	x0, y0 = max(x0, 0), max(y0, top)
	x1, y1 = min(x1, r.buf.Width()-1), min(y1, r.buf.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(x, y, vmath.Distance(vp.CellCenter(x, y), center))
		}
	}
}

func (r *Renderer) drawHUD(s engine.Snapshot) {
	state := "safe"
	if s.Colliding {
		state = "HIT"
	}
	line := fmt.Sprintf(" chaser | hits %d | %s | wasd/arrows move, F1 colliders, q quit", s.Hits, state)
	r.buf.SetText(0, 0, line, visual.HUD)
}
