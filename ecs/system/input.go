package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
)

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// InputSampler reads the device state for one tick.
type InputSampler func() component.Input

type InputSystem struct {
	sample InputSampler
}

func NewInputSystem() *InputSystem {
	return &InputSystem{sample: sampleEbitenInput}
}

func NewInputSystemWithSampler(sample InputSampler) *InputSystem {
	return &InputSystem{sample: sample}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.sample == nil {
		return
	}

	in := i.sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}

func sampleEbitenInput() component.Input {
	sources := make([]component.Input, 0, len(jumpKeys)+1)
	for _, k := range jumpKeys {
		sources = append(sources, component.Input{
			Jump:         ebiten.IsKeyPressed(k),
			JumpPressed:  inpututil.IsKeyJustPressed(k),
			JumpReleased: inpututil.IsKeyJustReleased(k),
		})
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		btn := ebiten.StandardGamepadButtonRightBottom
		sources = append(sources, component.Input{
			Jump:         ebiten.IsStandardGamepadButtonPressed(id, btn),
			JumpPressed:  inpututil.IsStandardGamepadButtonJustPressed(id, btn),
			JumpReleased: inpututil.IsStandardGamepadButtonJustReleased(id, btn),
		})
	}

	return mergeJumpInputs(sources...)
}

// mergeJumpInputs folds every jump key and button into one signal. Jump is
// only released once nothing bound to it is still held.
func mergeJumpInputs(sources ...component.Input) component.Input {
	var in component.Input
	for _, src := range sources {
		in.Jump = in.Jump || src.Jump
		in.JumpPressed = in.JumpPressed || src.JumpPressed
		in.JumpReleased = in.JumpReleased || src.JumpReleased
	}
	in.JumpReleased = in.JumpReleased && !in.Jump
	return in
}
