package input

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidBinding is returned for unknown directions or non single-rune keys
var ErrInvalidBinding = errors.New("invalid key binding")

// ApplyBindings overrides movement runes from a direction -> keys map
// Every rune previously bound to a listed direction is dropped before the new runes are bound
// Directions absent from the map keep their defaults
func (kt *KeyTable) ApplyBindings(bindings map[string][]string) error {
	parsed := make(map[Direction][]rune, len(bindings))
	for name, keys := range bindings {
		dir, ok := ParseDirection(name)
		if !ok {
			return errors.Wrapf(ErrInvalidBinding, "unknown direction %q", name)
		}
		for _, k := range keys {
			r, size := utf8.DecodeRuneInString(k)
			if r == utf8.RuneError || size != len(k) {
				return errors.Wrapf(ErrInvalidBinding, "%s: key %q is not a single character", name, k)
			}
			parsed[dir] = append(parsed[dir], unicode.ToLower(r))
		}
	}

	for r, e := range kt.Runes {
		if _, ok := parsed[e.Direction]; ok && e.Action == ActionMove {
			delete(kt.Runes, r)
		}
	}
	for dir, runes := range parsed {
		for _, r := range runes {
			kt.Runes[r] = KeyEntry{Action: ActionMove, Direction: dir}
		}
	}
	return nil
}
