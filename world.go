package main

import (
	"fmt"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/entity"
	"github.com/milk9111/dinorunner/ecs/system"
)

// buildWorld loads every prefab into a fresh world and the systems that run
// it at the given tick rate.
func buildWorld(tps int) (*ecs.World, *ecs.Scheduler, error) {
	delta := 1.0 / float64(tps)
	w := ecs.NewWorld()

	if _, err := entity.NewGround(w); err != nil {
		return nil, nil, fmt.Errorf("build world: %w", err)
	}
	if _, err := entity.NewDino(w); err != nil {
		return nil, nil, fmt.Errorf("build world: %w", err)
	}
	if _, err := entity.NewPterodactyl(w); err != nil {
		return nil, nil, fmt.Errorf("build world: %w", err)
	}

	physics := system.NewPhysicsSystem(delta)
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		physics,
		system.NewDinoControllerSystem(physics, delta),
		system.NewScrollSystem(delta),
		system.NewSpawnHeightSystem(),
		system.NewAnimationSystem(tps),
	)
	return w, scheduler, nil
}
