package component

// Scroll moves an entity left at Speed px/s and wraps it back to SpawnX once
// it passes MinX.
type Scroll struct {
	Speed     float64
	SpawnX    float64
	MinX      float64
	Respawned bool
}

var ScrollComponent = NewComponent[Scroll]()
