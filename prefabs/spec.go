package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type DinoSpec struct {
	Name              string          `yaml:"name"`
	RegularGravity    float64         `yaml:"regular_gravity"`
	ShortHopGravity   float64         `yaml:"short_hop_gravity"`
	InitialJumpSpeed  float64         `yaml:"initial_jump_speed"`
	JumpAnimation     string          `yaml:"jump_animation"`
	GroundedAnimation string          `yaml:"grounded_animation"`
	Transform         TransformSpec   `yaml:"transform"`
	Collider          ColliderSpec    `yaml:"collider"`
	Box               BoxSpec         `yaml:"box"`
	RenderLayer       RenderLayerSpec `yaml:"render_layer"`
	Animation         AnimationSpec   `yaml:"animation"`
}

func LoadDinoSpec() (*DinoSpec, error) {
	spec, err := LoadSpec[DinoSpec]("dino.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PterodactylSpec struct {
	Name        string          `yaml:"name"`
	HighOffset  float64         `yaml:"high_offset"`
	LowOffset   float64         `yaml:"low_offset"`
	ScrollSpeed float64         `yaml:"scroll_speed"`
	Transform   TransformSpec   `yaml:"transform"`
	Box         BoxSpec         `yaml:"box"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	Animation   AnimationSpec   `yaml:"animation"`
}

func LoadPterodactylSpec() (*PterodactylSpec, error) {
	spec, err := LoadSpec[PterodactylSpec]("pterodactyl.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GroundSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Collider    ColliderSpec    `yaml:"collider"`
	Box         BoxSpec         `yaml:"box"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadGroundSpec() (*GroundSpec, error) {
	spec, err := LoadSpec[GroundSpec]("ground.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

// BoxSpec sizes default to the collider when left at zero.
type BoxSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type AnimationSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
	Playing bool                        `yaml:"playing"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
