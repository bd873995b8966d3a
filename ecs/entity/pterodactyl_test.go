package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/prefabs"
	"github.com/milk9111/dinorunner/runner"
)

func TestPterodactylSpawnOffsets(t *testing.T) {
	injected := runner.NewSpawnHeightRandomizerWithSource(runner.SpawnOffsets{High: -10, Low: -5}, rand.NewPCG(1, 2))

	cases := []struct {
		name string
		spec prefabs.PterodactylSpec
		rnd  *runner.SpawnHeightRandomizer
		want runner.SpawnOffsets
	}{
		{
			name: "prefab offsets",
			spec: prefabs.PterodactylSpec{HighOffset: -200, LowOffset: -60},
			want: runner.SpawnOffsets{High: -200, Low: -60},
		},
		{
			name: "defaults when unset",
			want: runner.DefaultSpawnOffsets(),
		},
		{
			name: "injected randomizer wins",
			spec: prefabs.PterodactylSpec{HighOffset: -200, LowOffset: -60},
			rnd:  injected,
			want: runner.SpawnOffsets{High: -10, Low: -5},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spec := c.spec
			spec.Transform = prefabs.TransformSpec{X: 1340, Y: 600}
			spec.Box = prefabs.BoxSpec{Width: 46, Height: 26}

			e, err := NewPterodactylFromSpec(w, &spec, c.rnd)
			if err != nil {
				t.Fatalf("NewPterodactylFromSpec: %v", err)
			}
			spawn, ok := ecs.Get(w, e, component.SpawnHeightComponent)
			if !ok || spawn.Randomizer == nil {
				t.Fatalf("spawn height missing: %+v", spawn)
			}
			if c.rnd != nil && spawn.Randomizer != c.rnd {
				t.Fatalf("injected randomizer replaced")
			}
			if got := spawn.Randomizer.Offsets(); got != c.want {
				t.Fatalf("expected offsets %+v, got %+v", c.want, got)
			}
			if spawn.Baseline != 600 {
				t.Fatalf("expected baseline 600, got %v", spawn.Baseline)
			}
		})
	}
}
