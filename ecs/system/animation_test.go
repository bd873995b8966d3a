package system

import (
	"testing"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
)

func TestAnimationPlayerAndSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.AnimationComponent, component.Animation{
		Defs: map[string]component.AnimationDef{
			"Run":  {Name: "Run", FrameCount: 2, FPS: 30, Loop: true},
			"Once": {Name: "Once", FrameCount: 2, FPS: 60},
		},
	})

	animationPlayer{w: w, e: e}.Play("Run")
	sys := NewAnimationSystem(60)

	frames := []int{}
	for i := 0; i < 6; i++ {
		sys.Update(w)
		anim, _ := ecs.Get(w, e, component.AnimationComponent)
		frames = append(frames, anim.Frame)
	}
	want := []int{0, 1, 1, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("looping frames %v, want %v", frames, want)
		}
	}

	animationPlayer{w: w, e: e}.Play("Once")
	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	if anim.Playing || anim.Frame != 1 || anim.Plays != 2 {
		t.Fatalf("one-shot clip should stop on its last frame, got %+v", anim)
	}
}

func TestInputSystemFansOut(t *testing.T) {
	w := ecs.NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	_ = ecs.Add(w, a, component.InputComponent, component.Input{})
	_ = ecs.Add(w, b, component.InputComponent, component.Input{JumpPressed: true})

	sys := NewInputSystemWithSampler(func() component.Input {
		return component.Input{JumpReleased: true}
	})
	sys.Update(w)

	for _, e := range []ecs.Entity{a, b} {
		in, _ := ecs.Get(w, e, component.InputComponent)
		if in.JumpPressed || !in.JumpReleased {
			t.Fatalf("entity %v got %+v", e, in)
		}
	}
}
