package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func TestKeyTrackerPressAndExpire(t *testing.T) {
	clock := newFakeClock()
	tr := NewKeyTracker(clock, 100*time.Millisecond)

	assert.True(t, tr.Press(DirLeft))
	assert.Equal(t, Keys{Left: Pressed}, tr.Keys())

	// Auto-repeat does not change the snapshot
	clock.Advance(60 * time.Millisecond)
	assert.False(t, tr.Press(DirLeft))

	// Hold window restarts from the repeat
	clock.Advance(60 * time.Millisecond)
	assert.False(t, tr.Expire())
	assert.Equal(t, Pressed, tr.Keys().Left)

	clock.Advance(40 * time.Millisecond)
	assert.True(t, tr.Expire())
	assert.Equal(t, Keys{}, tr.Keys())

	assert.False(t, tr.Expire(), "Expected nothing left to expire")
}

func TestKeyTrackerSynthesizedPressReleasesOpposite(t *testing.T) {
	tr := NewKeyTracker(newFakeClock(), time.Second)

	tr.Press(DirLeft)
	tr.Press(DirUp)
	assert.True(t, tr.Press(DirRight))
	assert.Equal(t, Keys{Right: Pressed, Up: Pressed}, tr.Keys())

	tr.Press(DirDown)
	assert.Equal(t, Keys{Right: Pressed, Down: Pressed}, tr.Keys())
}

func TestKeyTrackerExplicitReleaseMode(t *testing.T) {
	clock := newFakeClock()
	tr := NewKeyTracker(clock, 0)

	tr.Press(DirLeft)
	tr.Press(DirRight)
	assert.Equal(t, Keys{Left: Pressed, Right: Pressed}, tr.Keys(), "Expected both held without synthesis")

	clock.Advance(time.Hour)
	assert.False(t, tr.Expire())

	assert.True(t, tr.Release(DirLeft))
	assert.False(t, tr.Release(DirLeft))
	assert.Equal(t, Keys{Right: Pressed}, tr.Keys())

	tr.Reset()
	assert.Equal(t, Keys{}, tr.Keys())
}

func TestKeysGetWith(t *testing.T) {
	var k Keys
	for d := DirLeft; d < dirCount; d++ {
		k = k.With(d, Pressed)
		assert.Equal(t, Pressed, k.Get(d), d.String())
	}
	assert.Equal(t, Keys{Pressed, Pressed, Pressed, Pressed}, k)
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"left", "right", "up", "down"} {
		d, ok := ParseDirection(name)
		assert.True(t, ok)
		assert.Equal(t, name, d.String())
	}
	_, ok := ParseDirection("sideways")
	assert.False(t, ok)
}
