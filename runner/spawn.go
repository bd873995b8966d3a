package runner

import "math/rand/v2"

const (
	DefaultHighOffset = -160.0
	DefaultLowOffset  = -48.0
)

// SpawnOffsets are the two vertical positions a pterodactyl can fly at.
type SpawnOffsets struct {
	High float64
	Low  float64
}

func DefaultSpawnOffsets() SpawnOffsets {
	return SpawnOffsets{High: DefaultHighOffset, Low: DefaultLowOffset}
}

// SpawnHeightRandomizer flips a fair coin between the high and low offsets.
type SpawnHeightRandomizer struct {
	offsets SpawnOffsets
	rng     *rand.Rand
}

// NewSpawnHeightRandomizer seeds from runtime entropy, so runs differ.
func NewSpawnHeightRandomizer(offsets SpawnOffsets) *SpawnHeightRandomizer {
	return NewSpawnHeightRandomizerWithSource(offsets, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func NewSpawnHeightRandomizerWithSource(offsets SpawnOffsets, src rand.Source) *SpawnHeightRandomizer {
	return &SpawnHeightRandomizer{offsets: offsets, rng: rand.New(src)}
}

func (r *SpawnHeightRandomizer) ChooseSpawnOffset() float64 {
	if r.rng.IntN(2) == 0 {
		return r.offsets.High
	}
	return r.offsets.Low
}

// Place returns the spawn position for an entity at (x, y). Only y changes.
func (r *SpawnHeightRandomizer) Place(x, _ float64) (float64, float64) {
	return x, r.ChooseSpawnOffset()
}

func (r *SpawnHeightRandomizer) Offsets() SpawnOffsets {
	return r.offsets
}
