package runner

import (
	"errors"
	"fmt"
)

const (
	DefaultRegularGravity    = 2400.0
	DefaultShortHopGravity   = 4800.0
	DefaultInitialJumpSpeed  = 800.0
	DefaultJumpAnimation     = "Run"
	DefaultGroundedAnimation = "Idle"
)

var ErrInvalidConfig = errors.New("runner: invalid config")

// JumpConfig is fixed for the lifetime of a JumpStateMachine.
type JumpConfig struct {
	// RegularGravity is the downward acceleration in px/s² for a full jump.
	RegularGravity float64
	// ShortHopGravity replaces RegularGravity when jump is released while rising.
	ShortHopGravity float64
	// InitialJumpSpeed is the upward speed in px/s at takeoff.
	InitialJumpSpeed float64

	JumpAnimation     string
	GroundedAnimation string
}

// DefaultJumpConfig returns the tuning the dino ships with.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		RegularGravity:    DefaultRegularGravity,
		ShortHopGravity:   DefaultShortHopGravity,
		InitialJumpSpeed:  DefaultInitialJumpSpeed,
		JumpAnimation:     DefaultJumpAnimation,
		GroundedAnimation: DefaultGroundedAnimation,
	}
}

func (c JumpConfig) Validate() error {
	if c.RegularGravity <= 0 {
		return fmt.Errorf("regular gravity %v must be positive: %w", c.RegularGravity, ErrInvalidConfig)
	}
	if c.ShortHopGravity <= 0 {
		return fmt.Errorf("short hop gravity %v must be positive: %w", c.ShortHopGravity, ErrInvalidConfig)
	}
	if c.InitialJumpSpeed <= 0 {
		return fmt.Errorf("initial jump speed %v must be positive: %w", c.InitialJumpSpeed, ErrInvalidConfig)
	}
	return nil
}
