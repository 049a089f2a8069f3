package model

// State is the state of a single cell
type State uint8

const (
	Dead State = iota
	Alive
)

func stateOf(alive bool) State {
	if alive {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the cell is alive
func (s State) IsAlive() bool {
	return s == Alive
}

// Toggle returns the opposite state
func (s State) Toggle() State {
	if s == Alive {
		return Dead
	}
	return Alive
}

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
