package system

import (
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
)

// SpawnHeightSystem drops newly created or respawned entities onto one of
// their two spawn heights. Only the transform's y is touched.
type SpawnHeightSystem struct{}

func NewSpawnHeightSystem() *SpawnHeightSystem {
	return &SpawnHeightSystem{}
}

func (s *SpawnHeightSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.SpawnHeightComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, spawn *component.SpawnHeight, transform *component.Transform) {
		scroll, hasScroll := ecs.GetPtr(w, e, component.ScrollComponent)
		respawned := hasScroll && scroll.Respawned
		if spawn.Applied && !respawned {
			return
		}
		if spawn.Randomizer == nil {
			return
		}

		_, offset := spawn.Randomizer.Place(transform.X, transform.Y)
		transform.Y = spawn.Baseline + offset
		spawn.Applied = true
		if hasScroll {
			scroll.Respawned = false
		}
	})
}
