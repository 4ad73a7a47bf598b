package input

import "time"

// Clock supplies the current time; engine.TimeProvider satisfies it
type Clock interface {
	Now() time.Time
}

// KeyTracker turns key events into a Keys snapshot
//
// Terminals deliver presses and auto-repeats but no releases. With a positive hold window
// a key counts as pressed until hold has elapsed since its last press or repeat, and pressing
// a direction releases its opposite (only the most recent key auto-repeats, so a stale
// opposite would otherwise cancel movement until it expires).
// With hold <= 0 keys stay pressed until Release, for hosts that report releases.
type KeyTracker struct {
	clock     Clock
	hold      time.Duration
	keys      Keys
	lastPress [dirCount]time.Time
}

// NewKeyTracker creates a tracker with all keys released
func NewKeyTracker(clock Clock, hold time.Duration) *KeyTracker {
	return &KeyTracker{
		clock: clock,
		hold:  hold,
	}
}

// Keys returns the current snapshot
func (t *KeyTracker) Keys() Keys {
	return t.keys
}

// Synthesized reports whether releases are synthesized from the hold window
func (t *KeyTracker) Synthesized() bool {
	return t.hold > 0
}

// Press marks d pressed, returns true if the snapshot changed
func (t *KeyTracker) Press(d Direction) bool {
	if d >= dirCount {
		return false
	}
	before := t.keys
	t.lastPress[d] = t.clock.Now()
	t.keys = t.keys.With(d, Pressed)
	if t.Synthesized() {
		t.keys = t.keys.With(opposite(d), NotPressed)
	}
	return t.keys != before
}

// Release marks d not pressed, returns true if the snapshot changed
func (t *KeyTracker) Release(d Direction) bool {
	if d >= dirCount {
		return false
	}
	before := t.keys
	t.keys = t.keys.With(d, NotPressed)
	return t.keys != before
}

// Expire releases keys whose last press is older than the hold window
// Returns true if any key was released
func (t *KeyTracker) Expire() bool {
	if !t.Synthesized() {
		return false
	}
	now := t.clock.Now()
	changed := false
	for d := Direction(0); d < dirCount; d++ {
		if t.keys.Get(d) != Pressed {
			continue
		}
		if now.Sub(t.lastPress[d]) >= t.hold {
			t.keys = t.keys.With(d, NotPressed)
			changed = true
		}
	}
	return changed
}

// Reset releases every key
func (t *KeyTracker) Reset() {
	t.keys = Keys{}
}

func opposite(d Direction) Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}
