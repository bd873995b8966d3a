package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/prefabs"
)

var defaultBoxColor = color.NRGBA{R: 0x53, G: 0x53, B: 0x53, A: 0xff}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, _ := ecs.Get(w, e, component.TransformComponent)
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent, t)
}

func addTransform(w *ecs.World, e ecs.Entity, spec prefabs.TransformSpec) error {
	return ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

// addBox falls back to the collider size for zero dimensions.
func addBox(w *ecs.World, e ecs.Entity, spec prefabs.BoxSpec, collider prefabs.ColliderSpec) error {
	box := component.Box{Width: spec.Width, Height: spec.Height, Color: defaultBoxColor}
	if box.Width <= 0 {
		box.Width = collider.Width
	}
	if box.Height <= 0 {
		box.Height = collider.Height
	}
	if spec.Color != nil && spec.Color.Color != nil {
		box.Color = spec.Color.Color
	}
	if box.Width <= 0 || box.Height <= 0 {
		return fmt.Errorf("box has no size: %+v", box)
	}
	return ecs.Add(w, e, component.BoxComponent, box)
}

func addRenderLayer(w *ecs.World, e ecs.Entity, spec prefabs.RenderLayerSpec) error {
	return ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: spec.Index})
}

func addAnimation(w *ecs.World, e ecs.Entity, spec prefabs.AnimationSpec) error {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if spec.Current != "" {
		if _, ok := defs[spec.Current]; !ok {
			return fmt.Errorf("unknown current animation %q", spec.Current)
		}
	}
	return ecs.Add(w, e, component.AnimationComponent, component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Playing: spec.Playing,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, spec prefabs.ColliderSpec, static bool) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("collider must have a positive size, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:    spec.Width,
		Height:   spec.Height,
		Mass:     spec.Mass,
		Friction: spec.Friction,
		Static:   static,
	})
}

// build runs each step and destroys the half-built entity on the first error.
func build(w *ecs.World, name string, steps ...func(ecs.Entity) error) (ecs.Entity, error) {
	e := w.CreateEntity()
	for _, step := range steps {
		if err := step(e); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("entity: build %s: %w", name, err)
		}
	}
	return e, nil
}
