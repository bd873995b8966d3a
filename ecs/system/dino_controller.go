package system

import (
	"log"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/runner"
)

// DinoControllerSystem ticks each dino's jump state machine once per update.
type DinoControllerSystem struct {
	physics *PhysicsSystem
	delta   float64
}

func NewDinoControllerSystem(physics *PhysicsSystem, delta float64) *DinoControllerSystem {
	return &DinoControllerSystem{physics: physics, delta: delta}
}

func (d *DinoControllerSystem) Update(w *ecs.World) {
	if d == nil || w == nil || d.physics == nil {
		return
	}

	entities := w.Query(
		component.DinoComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		dino, ok := ecs.GetPtr(w, e, component.DinoComponent)
		if !ok {
			continue
		}
		input, _ := ecs.Get(w, e, component.InputComponent)

		if dino.Machine == nil {
			m, err := runner.NewJumpStateMachine(dino.Config, d.physics.Mover(w, e), animationPlayer{w: w, e: e})
			if err != nil {
				log.Printf("dino controller: entity %v: %v", e, err)
				continue
			}
			dino.Machine = m
			m.OnReady()
		}

		dino.Last = dino.Machine.Tick(d.delta, runner.TickInput{
			JumpPressed:  input.JumpPressed,
			JumpReleased: input.JumpReleased,
		})
	}
}

// animationPlayer restarts the named clip on an entity's Animation component.
type animationPlayer struct {
	w *ecs.World
	e ecs.Entity
}

func (a animationPlayer) Play(name string) {
	anim, ok := ecs.GetPtr(a.w, a.e, component.AnimationComponent)
	if !ok {
		return
	}
	if _, ok := anim.Defs[name]; !ok {
		log.Printf("animation: entity %v has no clip %q", a.e, name)
	}
	anim.Current = name
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
	anim.Plays++
}
