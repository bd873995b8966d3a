package entity

import (
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/prefabs"
	"github.com/milk9111/dinorunner/runner"
)

// offscreenMargin is how far past the left edge a pterodactyl travels before
// it wraps back to its spawn x.
const offscreenMargin = 64.0

func NewPterodactyl(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPterodactylSpec()
	if err != nil {
		return 0, err
	}
	return NewPterodactylFromSpec(w, spec, nil)
}

// NewPterodactylFromSpec builds a pterodactyl whose transform y is the baseline
// its spawn offsets are measured from. A nil randomizer is seeded from entropy.
func NewPterodactylFromSpec(w *ecs.World, spec *prefabs.PterodactylSpec, rnd *runner.SpawnHeightRandomizer) (ecs.Entity, error) {
	if rnd == nil {
		offsets := runner.SpawnOffsets{High: spec.HighOffset, Low: spec.LowOffset}
		if offsets == (runner.SpawnOffsets{}) {
			offsets = runner.DefaultSpawnOffsets()
		}
		rnd = runner.NewSpawnHeightRandomizer(offsets)
	}
	return build(w, "pterodactyl",
		func(e ecs.Entity) error {
			return ecs.Add(w, e, component.PterodactylTagComponent, component.PterodactylTag{})
		},
		func(e ecs.Entity) error { return addTransform(w, e, spec.Transform) },
		func(e ecs.Entity) error {
			return ecs.Add(w, e, component.SpawnHeightComponent, component.SpawnHeight{
				Randomizer: rnd,
				Baseline:   spec.Transform.Y,
			})
		},
		func(e ecs.Entity) error {
			return ecs.Add(w, e, component.ScrollComponent, component.Scroll{
				Speed:  spec.ScrollSpeed,
				SpawnX: spec.Transform.X,
				MinX:   -spec.Box.Width - offscreenMargin,
			})
		},
		func(e ecs.Entity) error { return addBox(w, e, spec.Box, prefabs.ColliderSpec{}) },
		func(e ecs.Entity) error { return addRenderLayer(w, e, spec.RenderLayer) },
		func(e ecs.Entity) error { return addAnimation(w, e, spec.Animation) },
	)
}
