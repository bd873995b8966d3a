package component

import "github.com/milk9111/dinorunner/runner"

// SpawnHeight places an entity at a random one of two heights when it is
// created and every time it respawns.
type SpawnHeight struct {
	// Randomizer picks between the high and low offsets.
	Randomizer *runner.SpawnHeightRandomizer
	// Baseline is added to the chosen offset; usually the ground's top edge.
	Baseline float64
	Applied  bool
}

var SpawnHeightComponent = NewComponent[SpawnHeight]()
