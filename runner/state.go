package runner

import "strconv"

// State is the dino's movement state.
type State int

const (
	StateGrounded State = iota
	StateJumping
	// StateDucking and StateDead are declared but nothing transitions into them yet.
	StateDucking
	StateDead
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateJumping:
		return "jumping"
	case StateDucking:
		return "ducking"
	case StateDead:
		return "dead"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}
