package entity

import (
	"fmt"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/prefabs"
	"github.com/milk9111/dinorunner/runner"
)

func NewDino(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadDinoSpec()
	if err != nil {
		return 0, err
	}
	return NewDinoFromSpec(w, spec)
}

// DinoConfig maps the prefab onto the jump tuning. Animation names left empty
// in the prefab keep their defaults.
func DinoConfig(spec *prefabs.DinoSpec) runner.JumpConfig {
	cfg := runner.JumpConfig{
		RegularGravity:    spec.RegularGravity,
		ShortHopGravity:   spec.ShortHopGravity,
		InitialJumpSpeed:  spec.InitialJumpSpeed,
		JumpAnimation:     spec.JumpAnimation,
		GroundedAnimation: spec.GroundedAnimation,
	}
	if cfg.JumpAnimation == "" {
		cfg.JumpAnimation = runner.DefaultJumpAnimation
	}
	if cfg.GroundedAnimation == "" {
		cfg.GroundedAnimation = runner.DefaultGroundedAnimation
	}
	return cfg
}

func NewDinoFromSpec(w *ecs.World, spec *prefabs.DinoSpec) (ecs.Entity, error) {
	cfg := DinoConfig(spec)
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("entity: build dino: %w", err)
	}
	return build(w, "dino",
		func(e ecs.Entity) error { return ecs.Add(w, e, component.DinoTagComponent, component.DinoTag{}) },
		func(e ecs.Entity) error { return ecs.Add(w, e, component.InputComponent, component.Input{}) },
		func(e ecs.Entity) error { return ecs.Add(w, e, component.DinoComponent, component.Dino{Config: cfg}) },
		func(e ecs.Entity) error { return addTransform(w, e, spec.Transform) },
		func(e ecs.Entity) error { return addPhysicsBody(w, e, spec.Collider, false) },
		func(e ecs.Entity) error { return addBox(w, e, spec.Box, spec.Collider) },
		func(e ecs.Entity) error { return addRenderLayer(w, e, spec.RenderLayer) },
		func(e ecs.Entity) error { return addAnimation(w, e, spec.Animation) },
	)
}
