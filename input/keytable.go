package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action classifies a key event for the host loop
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
	ActionToggleDebug
)

// KeyEntry describes a key's behavior; Direction is only meaningful for ActionMove
type KeyEntry struct {
	Action    Action
	Direction Direction
}

// KeyTable maps terminal keys to host actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns WASD + arrows movement, Esc/Ctrl+C/q quit, F1 debug overlay
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   {ActionMove, DirLeft},
			tcell.KeyRight:  {ActionMove, DirRight},
			tcell.KeyUp:     {ActionMove, DirUp},
			tcell.KeyDown:   {ActionMove, DirDown},
			tcell.KeyEscape: {Action: ActionQuit},
			tcell.KeyCtrlC:  {Action: ActionQuit},
			tcell.KeyF1:     {Action: ActionToggleDebug},
		},
		Runes: map[rune]KeyEntry{
			'a': {ActionMove, DirLeft},
			'd': {ActionMove, DirRight},
			'w': {ActionMove, DirUp},
			's': {ActionMove, DirDown},
			'q': {Action: ActionQuit},
		},
	}
}

// Lookup resolves a key (and its rune when key is tcell.KeyRune)
func (kt *KeyTable) Lookup(key tcell.Key, r rune) KeyEntry {
	if key == tcell.KeyRune {
		if e, ok := kt.Runes[unicode.ToLower(r)]; ok {
			return e
		}
		return KeyEntry{}
	}
	if e, ok := kt.SpecialKeys[key]; ok {
		return e
	}
	return KeyEntry{}
}

// LookupEvent resolves a tcell key event
func (kt *KeyTable) LookupEvent(ev *tcell.EventKey) KeyEntry {
	return kt.Lookup(ev.Key(), ev.Rune())
}
