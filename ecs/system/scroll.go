package system

import (
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
)

type ScrollSystem struct {
	delta float64
}

func NewScrollSystem(delta float64) *ScrollSystem {
	return &ScrollSystem{delta: delta}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ScrollComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, scroll *component.Scroll, transform *component.Transform) {
		transform.X -= scroll.Speed * s.delta
		if transform.X < scroll.MinX {
			transform.X = scroll.SpawnX
			scroll.Respawned = true
		}
	})
}
