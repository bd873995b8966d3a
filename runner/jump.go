package runner

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

var (
	// Up and Down follow screen coordinates, where y grows downward.
	Up   = cp.Vector{X: 0, Y: -1}
	Down = cp.Vector{X: 0, Y: 1}
)

// Mover displaces a body with collision response and reports whether it ended
// the move resting on walkable geometry.
type Mover interface {
	MoveWithVelocity(velocity, up cp.Vector) (onFloor bool)
}

type MoverFunc func(velocity, up cp.Vector) bool

func (f MoverFunc) MoveWithVelocity(velocity, up cp.Vector) bool {
	return f(velocity, up)
}

// Animator starts playing the named animation. Nothing is returned.
type Animator interface {
	Play(name string)
}

type AnimatorFunc func(name string)

func (f AnimatorFunc) Play(name string) {
	f(name)
}

type noopAnimator struct{}

func (noopAnimator) Play(string) {}

// TickInput carries the edge-triggered jump signals for one step.
type TickInput struct {
	JumpPressed  bool
	JumpReleased bool
}

// Character is the motion state owned by a JumpStateMachine.
type Character struct {
	State    State
	Velocity cp.Vector
	Gravity  float64
}

// VelocityUpdate is the outcome of a single Tick.
type VelocityUpdate struct {
	Velocity cp.Vector
	State    State
	// Moved is true when the mover was called on this tick.
	Moved bool
	// OnFloor is the floor contact the mover reported. Always false when Moved is false.
	OnFloor bool
}

// JumpStateMachine drives the dino's vertical motion one fixed step at a time.
//
// Gravity doubles as the short hop memory: releasing jump while rising swaps in
// ShortHopGravity, and it goes back to RegularGravity as soon as the dino starts
// falling so the next jump begins with a full arc.
type JumpStateMachine struct {
	cfg      JumpConfig
	mover    Mover
	animator Animator

	char  Character
	ready bool
}

func NewJumpStateMachine(cfg JumpConfig, mover Mover, animator Animator) (*JumpStateMachine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: new jump state machine: %w", err)
	}
	if mover == nil {
		return nil, fmt.Errorf("runner: new jump state machine: nil mover: %w", ErrInvalidConfig)
	}
	if animator == nil {
		animator = noopAnimator{}
	}
	return &JumpStateMachine{
		cfg:      cfg,
		mover:    mover,
		animator: animator,
		char:     Character{State: StateGrounded},
	}, nil
}

// OnReady runs the entry side effects of the initial state. Only the first call
// has any effect.
func (m *JumpStateMachine) OnReady() {
	if m.ready {
		return
	}
	m.ready = true
	if m.cfg.GroundedAnimation != "" {
		m.animator.Play(m.cfg.GroundedAnimation)
	}
}

// Tick advances the machine by delta seconds.
func (m *JumpStateMachine) Tick(delta float64, in TickInput) VelocityUpdate {
	update := VelocityUpdate{}

	switch m.char.State {
	case StateGrounded:
		if in.JumpPressed {
			m.char.State = StateJumping
			m.char.Velocity = Up.Mult(m.cfg.InitialJumpSpeed)
			m.char.Gravity = m.cfg.RegularGravity
			m.animator.Play(m.cfg.JumpAnimation)
		}
	case StateJumping:
		if in.JumpReleased && m.char.Velocity.Dot(Up) > 0 {
			m.char.Gravity = m.cfg.ShortHopGravity
		}

		m.char.Velocity = m.char.Velocity.Add(Down.Mult(m.char.Gravity * delta))

		// falling: the short hop is spent, restore the full arc for the next jump
		if m.char.Velocity.Dot(Up) < 0 {
			m.char.Gravity = m.cfg.RegularGravity
		}

		update.Moved = true
		update.OnFloor = m.mover.MoveWithVelocity(m.char.Velocity, Up)
		if update.OnFloor {
			m.char.State = StateGrounded
		}
	case StateDucking, StateDead:
	default:
		panic(fmt.Sprintf("runner: unhandled state %v", m.char.State))
	}

	update.Velocity = m.char.Velocity
	update.State = m.char.State
	return update
}

func (m *JumpStateMachine) State() State {
	return m.char.State
}

func (m *JumpStateMachine) Velocity() cp.Vector {
	return m.char.Velocity
}

func (m *JumpStateMachine) Gravity() float64 {
	return m.char.Gravity
}

func (m *JumpStateMachine) Character() Character {
	return m.char
}

func (m *JumpStateMachine) Config() JumpConfig {
	return m.cfg
}
