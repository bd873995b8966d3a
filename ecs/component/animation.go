package component

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation tracks which named clip is playing. There is no sprite sheet; the
// render system only prints the clip and frame.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
	// Plays counts Play calls, so a restart of the same clip is visible.
	Plays int
}

var AnimationComponent = NewComponent[Animation]()
