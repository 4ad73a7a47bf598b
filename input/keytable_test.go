package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want KeyEntry
	}{
		{"w up", tcell.KeyRune, 'w', KeyEntry{ActionMove, DirUp}},
		{"A left uppercase", tcell.KeyRune, 'A', KeyEntry{ActionMove, DirLeft}},
		{"s down", tcell.KeyRune, 's', KeyEntry{ActionMove, DirDown}},
		{"d right", tcell.KeyRune, 'd', KeyEntry{ActionMove, DirRight}},
		{"arrow left", tcell.KeyLeft, 0, KeyEntry{ActionMove, DirLeft}},
		{"arrow down", tcell.KeyDown, 0, KeyEntry{ActionMove, DirDown}},
		{"escape quits", tcell.KeyEscape, 0, KeyEntry{Action: ActionQuit}},
		{"q quits", tcell.KeyRune, 'q', KeyEntry{Action: ActionQuit}},
		{"F1 debug", tcell.KeyF1, 0, KeyEntry{Action: ActionToggleDebug}},
		{"unbound rune", tcell.KeyRune, 'x', KeyEntry{}},
		{"unbound key", tcell.KeyTab, 0, KeyEntry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Lookup(tt.key, tt.r))
		})
	}
}

func TestApplyBindings(t *testing.T) {
	kt := DefaultKeyTable()

	err := kt.ApplyBindings(map[string][]string{
		"left":  {"h"},
		"right": {"L"},
	})
	require.NoError(t, err)

	assert.Equal(t, KeyEntry{ActionMove, DirLeft}, kt.Lookup(tcell.KeyRune, 'h'))
	assert.Equal(t, KeyEntry{ActionMove, DirRight}, kt.Lookup(tcell.KeyRune, 'l'))
	assert.Equal(t, KeyEntry{}, kt.Lookup(tcell.KeyRune, 'a'), "Expected old left binding dropped")
	assert.Equal(t, KeyEntry{ActionMove, DirUp}, kt.Lookup(tcell.KeyRune, 'w'), "Expected untouched direction kept")
	assert.Equal(t, KeyEntry{Action: ActionQuit}, kt.Lookup(tcell.KeyRune, 'q'))
}

func TestApplyBindingsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string][]string
	}{
		{"unknown direction", map[string][]string{"sideways": {"x"}}},
		{"multi-char key", map[string][]string{"up": {"up"}}},
		{"empty key", map[string][]string{"up": {""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultKeyTable().ApplyBindings(tt.bindings)
			assert.ErrorIs(t, err, ErrInvalidBinding)
		})
	}
}
