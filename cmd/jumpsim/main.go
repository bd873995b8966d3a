// Command jumpsim runs the dino jump state machine headless against a flat
// floor and prints one row per tick. Useful for tuning dino.yaml.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dinorunner/ecs/entity"
	"github.com/milk9111/dinorunner/prefabs"
	"github.com/milk9111/dinorunner/runner"
)

type options struct {
	press   int
	release int
	ticks   int
	tps     int
}

type row struct {
	tick    int
	input   runner.TickInput
	update  runner.VelocityUpdate
	height  float64
	gravity float64
}

// flatFloor moves a point along y with the floor at y=0. Up is negative y.
type flatFloor struct {
	delta float64
	y     float64
}

func (f *flatFloor) MoveWithVelocity(velocity, up cp.Vector) bool {
	f.y += velocity.Y * f.delta
	if f.y >= 0 && velocity.Dot(up) <= 0 {
		f.y = 0
		return true
	}
	return false
}

func simulate(cfg runner.JumpConfig, opts options) ([]row, error) {
	if opts.tps <= 0 {
		return nil, fmt.Errorf("jumpsim: tps must be positive, got %d", opts.tps)
	}
	delta := 1.0 / float64(opts.tps)
	floor := &flatFloor{delta: delta}

	m, err := runner.NewJumpStateMachine(cfg, floor, nil)
	if err != nil {
		return nil, fmt.Errorf("jumpsim: %w", err)
	}
	m.OnReady()

	rows := make([]row, 0, opts.ticks)
	for tick := 0; tick < opts.ticks; tick++ {
		in := runner.TickInput{
			JumpPressed:  tick == opts.press,
			JumpReleased: tick == opts.release,
		}
		update := m.Tick(delta, in)
		rows = append(rows, row{
			tick:    tick,
			input:   in,
			update:  update,
			height:  -floor.y,
			gravity: m.Gravity(),
		})
	}
	return rows, nil
}

func writeRows(out io.Writer, rows []row) {
	fmt.Fprintf(out, "%5s %-9s %4s %4s %9s %8s %7s\n", "tick", "state", "prs", "rel", "vy", "height", "gravity")
	for _, r := range rows {
		fmt.Fprintf(out, "%5d %-9s %4t %4t %9.2f %8.2f %7.0f\n",
			r.tick, r.update.State, r.input.JumpPressed, r.input.JumpReleased,
			r.update.Velocity.Y, r.height, r.gravity)
	}
}

func main() {
	press := flag.Int("press", 0, "tick on which jump is pressed")
	release := flag.Int("release", -1, "tick on which jump is released (-1 holds it)")
	ticks := flag.Int("ticks", 90, "number of ticks to simulate")
	tps := flag.Int("tps", 60, "ticks per second")
	seed := flag.Uint64("seed", 0, "seed for spawn height samples (0 uses runtime entropy)")
	spawns := flag.Int("spawns", 5, "number of spawn height samples to print")
	flag.Parse()

	spec, err := prefabs.LoadDinoSpec()
	if err != nil {
		log.Fatal(err)
	}
	rows, err := simulate(entity.DinoConfig(spec), options{
		press:   *press,
		release: *release,
		ticks:   *ticks,
		tps:     *tps,
	})
	if err != nil {
		log.Fatal(err)
	}
	writeRows(os.Stdout, rows)

	offsets := runner.DefaultSpawnOffsets()
	if ptero, err := prefabs.LoadPterodactylSpec(); err == nil {
		offsets = runner.SpawnOffsets{High: ptero.HighOffset, Low: ptero.LowOffset}
	} else {
		log.Printf("using default spawn offsets: %v", err)
	}
	rnd := runner.NewSpawnHeightRandomizer(offsets)
	if *seed != 0 {
		rnd = runner.NewSpawnHeightRandomizerWithSource(offsets, rand.NewPCG(*seed, *seed))
	}
	for i := 0; i < *spawns; i++ {
		fmt.Printf("spawn %d: offset %.0f\n", i, rnd.ChooseSpawnOffset())
	}
}
