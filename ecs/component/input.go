package component

// Input stores per-tick jump input for an entity. JumpPressed and JumpReleased
// are true only on the tick the edge happened.
type Input struct {
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
}

var InputComponent = NewComponent[Input]()
