package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/parameter/visual"
	"github.com/lixenwraith/chaser/vmath"
)

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]tcell.Style
	runes map[[2]int]rune
	shows int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{
		w: w, h: h,
		cells: make(map[[2]int]tcell.Style),
		runes: make(map[[2]int]rune),
	}
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }
func (c *fakeCanvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = style
	c.runes[[2]int{x, y}] = r
}
func (c *fakeCanvas) Show() { c.shows++ }

// 1024x512 world on 64x16 cells: 16 units per column, 32 per row, no offset
func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		WorldWidth:  1024,
		WorldHeight: 512,
		Player:      engine.Body{Position: vmath.V2(512, 256), Radius: 50, ColliderEnabled: true},
		Chaser:      engine.Body{Position: vmath.V2(0, 0), Radius: 25, ColliderEnabled: true},
		PlayerAlpha: 1,
	}
}

func assertColor(t *testing.T, want, got colorful.Color, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, want.AlmostEqualRgb(got), append([]any{"want %v got %v", want, got}, msgAndArgs...)...)
}

func TestViewportMapping(t *testing.T) {
	vp := NewViewport(1024, 512, 64, 16, 0)

	w, h := vp.CellSize()
	assert.Equal(t, 16.0, w)
	assert.Equal(t, 32.0, h)
	assert.Equal(t, vmath.V2(8, 16), vp.CellCenter(0, 0))

	x, y := vp.ToCell(vmath.V2(512, 256))
	assert.Equal(t, 32, x)
	assert.Equal(t, 8, y)
}

func TestViewportCentersNarrowWorld(t *testing.T) {
	// Height-bound: 512 world units over 16 rows => 32 per row, 16 per column
	vp := NewViewport(512, 512, 64, 16, 0)

	x, _ := vp.ToCell(vmath.V2(0, 0))
	assert.Equal(t, 16, x, "Expected 16 cells of horizontal margin")

	vpHUD := NewViewport(1024, 512, 64, 17, 1)
	_, y := vpHUD.ToCell(vmath.V2(0, 0))
	assert.Equal(t, 1, y, "Expected world to start below the HUD row")
}

func TestRendererDrawsEntities(t *testing.T) {
	canvas := newFakeCanvas(64, 16)
	r := NewRenderer(canvas, false)

	r.Draw(testSnapshot())

	buf := r.Buffer()
	assertColor(t, visual.Player, buf.Get(32, 8).Bg, "player center")
	assertColor(t, visual.Chaser, buf.Get(0, 0).Bg, "chaser center")
	assertColor(t, visual.Background, buf.Get(63, 15).Bg, "empty corner")

	assert.Len(t, canvas.cells, 64*16)
	assert.Equal(t, 1, canvas.shows)

	_, bg, _ := canvas.cells[[2]int{32, 8}].Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), bg)
}

func TestRendererDamagedPlayerIsTranslucent(t *testing.T) {
	r := NewRenderer(newFakeCanvas(64, 16), false)
	s := testSnapshot()
	s.PlayerAlpha = 0.25

	r.Draw(s)

	want := visual.Background.BlendRgb(visual.Player, 0.25)
	assertColor(t, want, r.Buffer().Get(32, 8).Bg)
}

func TestRendererDebugOutline(t *testing.T) {
	s := testSnapshot()
	r := NewRenderer(newFakeCanvas(64, 16), false)

	r.Draw(s)
	plain := r.Buffer().Get(35, 8).Bg
	centerPlain := r.Buffer().Get(32, 8).Bg

	s.Debug = true
	r.Draw(s)
	assert.False(t, plain.AlmostEqualRgb(r.Buffer().Get(35, 8).Bg), "Expected outline near the collider edge")
	assertColor(t, centerPlain, r.Buffer().Get(32, 8).Bg, "Expected center untouched")

	// Disabled colliders are not outlined
	s.Player.ColliderEnabled = false
	r.Draw(s)
	assertColor(t, plain, r.Buffer().Get(35, 8).Bg)
}

func TestRendererHUDAndResize(t *testing.T) {
	canvas := newFakeCanvas(80, 20)
	r := NewRenderer(canvas, true)
	s := testSnapshot()
	s.Hits = 3
	s.Colliding = true

	r.Draw(s)
	require.Equal(t, 80, r.Buffer().Width())
	assert.Equal(t, 'c', r.Buffer().Get(1, 0).Rune)

	var line []rune
	for x := 0; x < 30; x++ {
		line = append(line, canvas.runes[[2]int{x, 0}])
	}
	assert.Contains(t, string(line), "hits 3")
	assert.Contains(t, string(line), "HIT")

	canvas.w, canvas.h = 40, 10
	r.Draw(s)
	assert.Equal(t, 40, r.Buffer().Width())
	assert.Equal(t, 10, r.Buffer().Height())
}

func TestRenderBufferBounds(t *testing.T) {
	b := NewRenderBuffer(2, 2)
	b.Fill(visual.Background)

	assert.NotPanics(t, func() {
		b.BlendBg(-1, 0, visual.Player, 1)
		b.BlendBg(2, 2, visual.Player, 1)
		b.SetText(1, 1, "overflow", visual.HUD)
	})
	assert.Equal(t, Cell{}, b.Get(5, 5))
	assert.Equal(t, 'o', b.Get(1, 1).Rune)
}
