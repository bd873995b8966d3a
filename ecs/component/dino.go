package component

import "github.com/milk9111/dinorunner/runner"

// Dino binds an entity to a jump state machine. Machine is built lazily by the
// dino controller system from Config.
type Dino struct {
	Config  runner.JumpConfig
	Machine *runner.JumpStateMachine
	Last    runner.VelocityUpdate
}

var DinoComponent = NewComponent[Dino]()
