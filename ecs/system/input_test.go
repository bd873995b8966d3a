package system

import (
	"testing"

	"github.com/milk9111/dinorunner/ecs/component"
)

func TestMergeJumpInputs(t *testing.T) {
	cases := []struct {
		name    string
		sources []component.Input
		want    component.Input
	}{
		{
			name: "nothing",
			want: component.Input{},
		},
		{
			name: "single press",
			sources: []component.Input{
				{Jump: true, JumpPressed: true},
				{},
			},
			want: component.Input{Jump: true, JumpPressed: true},
		},
		{
			name: "last key released",
			sources: []component.Input{
				{JumpReleased: true},
				{},
			},
			want: component.Input{JumpReleased: true},
		},
		{
			name: "tap another key while holding",
			sources: []component.Input{
				{Jump: true},
				{JumpReleased: true},
			},
			want: component.Input{Jump: true},
		},
		{
			name: "switch keys in one tick",
			sources: []component.Input{
				{JumpReleased: true},
				{Jump: true, JumpPressed: true},
			},
			want: component.Input{Jump: true, JumpPressed: true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := mergeJumpInputs(c.sources...); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}
