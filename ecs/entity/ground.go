package entity

import (
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/prefabs"
)

func NewGround(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadGroundSpec()
	if err != nil {
		return 0, err
	}
	return NewGroundFromSpec(w, spec)
}

func NewGroundFromSpec(w *ecs.World, spec *prefabs.GroundSpec) (ecs.Entity, error) {
	return build(w, "ground",
		func(e ecs.Entity) error { return ecs.Add(w, e, component.GroundTagComponent, component.GroundTag{}) },
		func(e ecs.Entity) error { return addTransform(w, e, spec.Transform) },
		func(e ecs.Entity) error { return addPhysicsBody(w, e, spec.Collider, true) },
		func(e ecs.Entity) error { return addBox(w, e, spec.Box, spec.Collider) },
		func(e ecs.Entity) error { return addRenderLayer(w, e, spec.RenderLayer) },
	)
}

// GroundTop returns the y of the ground's walkable edge.
func GroundTop(spec *prefabs.GroundSpec) float64 {
	return spec.Transform.Y - spec.Collider.Height/2
}
