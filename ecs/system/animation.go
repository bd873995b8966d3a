package system

import (
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
)

type AnimationSystem struct {
	tps int
}

func NewAnimationSystem(tps int) *AnimationSystem {
	if tps <= 0 {
		tps = 60
	}
	return &AnimationSystem{tps: tps}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and TPS
		ticksPerFrame := int(float64(a.tps) / def.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}
	})
}
