package system

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
)

var backgroundColor = color.NRGBA{R: 0xf7, G: 0xf7, B: 0xf7, A: 0xff}

type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	screen.Fill(backgroundColor)

	for _, e := range drawOrder(w) {
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		box, _ := ecs.Get(w, e, component.BoxComponent)
		vector.DrawFilledRect(
			screen,
			float32(transform.X-box.Width/2),
			float32(transform.Y-box.Height/2),
			float32(box.Width),
			float32(box.Height),
			box.Color,
			false,
		)
	}

	if r.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f\n%s", ebiten.ActualTPS(), DebugText(w)))
	}
}

// drawOrder sorts boxes by render layer, then by entity for stable ties.
func drawOrder(w *ecs.World) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.BoxComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

// DebugText describes every dino's motion state, one line each.
func DebugText(w *ecs.World) string {
	var b strings.Builder
	ecs.ForEach(w, component.DinoComponent.Kind(), func(e ecs.Entity, dino *component.Dino) {
		if dino.Machine == nil {
			fmt.Fprintf(&b, "dino %v: not ready\n", e)
			return
		}
		c := dino.Machine.Character()
		anim := ""
		if a, ok := ecs.Get(w, e, component.AnimationComponent); ok {
			anim = fmt.Sprintf(" anim=%s#%d", a.Current, a.Frame)
		}
		fmt.Fprintf(&b, "dino %v: %s vy=%.1f g=%.0f%s\n", e, c.State, c.Velocity.Y, c.Gravity, anim)
	})
	return b.String()
}
