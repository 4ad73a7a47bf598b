package input

// KeyState is the press state of one logical direction button
type KeyState uint8

const (
	NotPressed KeyState = iota
	Pressed
)

func (s KeyState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "not-pressed"
}

// Direction is a logical movement button
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	dirCount
)

var directionNames = [dirCount]string{"left", "right", "up", "down"}

func (d Direction) String() string {
	if d < dirCount {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection resolves a direction name as used in config files
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return 0, false
}

// Keys is a snapshot of all four direction buttons
// Replaces process-wide key globals: the host passes a fresh snapshot on every event
type Keys struct {
	Left, Right, Up, Down KeyState
}

// Get returns the state of one direction
func (k Keys) Get(d Direction) KeyState {
	switch d {
	case DirLeft:
		return k.Left
	case DirRight:
		return k.Right
	case DirUp:
		return k.Up
	case DirDown:
		return k.Down
	}
	return NotPressed
}

// With returns a copy with direction d set to s
func (k Keys) With(d Direction, s KeyState) Keys {
	switch d {
	case DirLeft:
		k.Left = s
	case DirRight:
		k.Right = s
	case DirUp:
		k.Up = s
	case DirDown:
		k.Down = s
	}
	return k
}
