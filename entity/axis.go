package entity

// Intent is the directional command on one axis
type Intent uint8

const (
	NoMove Intent = iota
	Plus
	Minus
)

func (i Intent) String() string {
	switch i {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	default:
		return "no-move"
	}
}

// Axis selects the horizontal or vertical movement axis
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// AxisState is Active(intent) or Dead
// The zero value is Active(NoMove)
type AxisState struct {
	dead   bool
	intent Intent
}

// Active returns a live axis carrying intent
func Active(intent Intent) AxisState {
	return AxisState{intent: intent}
}

// Dead returns a permanently disabled axis
func Dead() AxisState {
	return AxisState{dead: true}
}

func (s AxisState) IsDead() bool { return s.dead }

// Intent returns the active intent; Dead axes report NoMove
func (s AxisState) Intent() Intent {
	if s.dead {
		return NoMove
	}
	return s.intent
}

func (s AxisState) String() string {
	if s.dead {
		return "dead"
	}
	return "active(" + s.intent.String() + ")"
}
