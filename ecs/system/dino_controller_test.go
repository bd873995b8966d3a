package system

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/ecs/entity"
	"github.com/milk9111/dinorunner/prefabs"
	"github.com/milk9111/dinorunner/runner"
)

const testDelta = 1.0 / 60.0

const (
	groundY     = 612.0
	groundH     = 24.0
	dinoH       = 44.0
	dinoRestY   = groundY - groundH/2 - dinoH/2
	landingSlop = 0.5
)

func testGroundSpec() *prefabs.GroundSpec {
	return &prefabs.GroundSpec{
		Name:      "ground",
		Transform: prefabs.TransformSpec{X: 640, Y: groundY},
		Collider:  prefabs.ColliderSpec{Width: 1280, Height: groundH, Friction: 0.8},
	}
}

func testDinoSpec() *prefabs.DinoSpec {
	return &prefabs.DinoSpec{
		Name:             "dino",
		RegularGravity:   2400,
		ShortHopGravity:  4800,
		InitialJumpSpeed: 800,
		Transform:        prefabs.TransformSpec{X: 96, Y: dinoRestY},
		Collider:         prefabs.ColliderSpec{Width: 40, Height: dinoH, Mass: 1},
		Animation: prefabs.AnimationSpec{Defs: map[string]prefabs.AnimationDefSpec{
			"Idle": {FrameCount: 1, FPS: 1, Loop: true},
			"Run":  {FrameCount: 2, FPS: 10, Loop: true},
		}},
	}
}

// scriptedInput presses jump on tick 0 and releases it on releaseAt.
type scriptedInput struct {
	tick      int
	releaseAt int
}

func (s *scriptedInput) sample() component.Input {
	in := component.Input{
		JumpPressed:  s.tick == 0,
		JumpReleased: s.tick == s.releaseAt,
		Jump:         s.tick < s.releaseAt,
	}
	s.tick++
	return in
}

type dinoRig struct {
	w       *ecs.World
	dino    ecs.Entity
	sched   *ecs.Scheduler
	physics *PhysicsSystem
}

func newDinoRig(t *testing.T, input *scriptedInput) *dinoRig {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewGroundFromSpec(w, testGroundSpec()); err != nil {
		t.Fatalf("ground: %v", err)
	}
	dino, err := entity.NewDinoFromSpec(w, testDinoSpec())
	if err != nil {
		t.Fatalf("dino: %v", err)
	}
	physics := NewPhysicsSystem(testDelta)
	sched := ecs.NewScheduler(
		NewInputSystemWithSampler(input.sample),
		physics,
		NewDinoControllerSystem(physics, testDelta),
		NewAnimationSystem(60),
	)
	return &dinoRig{w: w, dino: dino, sched: sched, physics: physics}
}

func (r *dinoRig) dinoState(t *testing.T) component.Dino {
	t.Helper()
	d, ok := ecs.Get(r.w, r.dino, component.DinoComponent)
	if !ok {
		t.Fatalf("dino component missing")
	}
	return d
}

func (r *dinoRig) dinoY(t *testing.T) float64 {
	t.Helper()
	tr, ok := ecs.Get(r.w, r.dino, component.TransformComponent)
	if !ok {
		t.Fatalf("transform missing")
	}
	return tr.Y
}

// jumpToLanding runs ticks until the dino is grounded again and returns the
// peak height above its rest position.
func jumpToLanding(t *testing.T, r *dinoRig) float64 {
	t.Helper()
	r.sched.Update(r.w)
	if d := r.dinoState(t); d.Last.State != runner.StateJumping {
		t.Fatalf("expected jumping after press, got %v", d.Last.State)
	}

	peak := 0.0
	for i := 0; i < 240; i++ {
		r.sched.Update(r.w)
		if h := dinoRestY - r.dinoY(t); h > peak {
			peak = h
		}
		d := r.dinoState(t)
		if d.Last.State == runner.StateGrounded {
			if !d.Last.OnFloor {
				t.Fatalf("grounded without floor contact")
			}
			if y := r.dinoY(t); y < dinoRestY-landingSlop || y > dinoRestY+landingSlop {
				t.Fatalf("landed at y=%v, expected near %v", y, dinoRestY)
			}
			return peak
		}
	}
	t.Fatalf("dino never landed")
	return 0
}

func TestDinoJumpsAndLandsOnGround(t *testing.T) {
	r := newDinoRig(t, &scriptedInput{releaseAt: 1000})
	peak := jumpToLanding(t, r)

	// v²/2g for 800 px/s at 2400 px/s², minus Euler and step losses
	if peak < 100 || peak > 140 {
		t.Fatalf("unexpected full jump peak %v", peak)
	}

	anim, _ := ecs.Get(r.w, r.dino, component.AnimationComponent)
	if anim.Current != "Run" || anim.Plays != 2 {
		t.Fatalf("expected Idle then Run, got current=%q plays=%d", anim.Current, anim.Plays)
	}
}

func TestDinoRestsOnGroundAfterRepeatedJumps(t *testing.T) {
	input := &scriptedInput{releaseAt: 1000}
	r := newDinoRig(t, input)

	for jump := 0; jump < 20; jump++ {
		// alternate full jumps and short hops
		input.tick = 0
		input.releaseAt = 1000
		if jump%2 == 1 {
			input.releaseAt = 4
		}
		jumpToLanding(t, r)

		for i := 0; i < 5; i++ {
			r.sched.Update(r.w)
		}
		if y := r.dinoY(t); math.Abs(y-dinoRestY) > landingSlop {
			t.Fatalf("jump %d: dino resting at y=%v, expected %v", jump, y, dinoRestY)
		}
	}
}

func TestDinoShortHopIsLower(t *testing.T) {
	full := jumpToLanding(t, newDinoRig(t, &scriptedInput{releaseAt: 1000}))
	short := jumpToLanding(t, newDinoRig(t, &scriptedInput{releaseAt: 4}))

	if short >= full {
		t.Fatalf("short hop peak %v should be below full jump %v", short, full)
	}
}

func TestDinoStaysGroundedWithoutInput(t *testing.T) {
	r := newDinoRig(t, &scriptedInput{releaseAt: 1000, tick: 1})
	for i := 0; i < 30; i++ {
		r.sched.Update(r.w)
	}
	d := r.dinoState(t)
	if d.Machine == nil || d.Machine.State() != runner.StateGrounded {
		t.Fatalf("expected grounded machine, got %+v", d.Last)
	}
	if y := r.dinoY(t); y != dinoRestY {
		t.Fatalf("grounded dino moved to %v", y)
	}
	if !strings.Contains(DebugText(r.w), "grounded") {
		t.Fatalf("debug text missing state: %q", DebugText(r.w))
	}
}

func TestSpawnHeightAndScrollWrap(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.PterodactylSpec{
		Name:        "pterodactyl",
		HighOffset:  -160,
		LowOffset:   -48,
		ScrollSpeed: 600,
		Transform:   prefabs.TransformSpec{X: 1340, Y: 600},
		Box:         prefabs.BoxSpec{Width: 46, Height: 26},
	}
	rnd := runner.NewSpawnHeightRandomizerWithSource(runner.DefaultSpawnOffsets(), rand.NewPCG(7, 11))
	e, err := entity.NewPterodactylFromSpec(w, spec, rnd)
	if err != nil {
		t.Fatalf("pterodactyl: %v", err)
	}

	validY := func(y float64) bool { return y == 600-160 || y == 600-48 }

	spawn := NewSpawnHeightSystem()
	spawn.Update(w)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 1340 || !validY(tr.Y) {
		t.Fatalf("unexpected spawn position %+v", tr)
	}
	firstY := tr.Y
	for i := 0; i < 20; i++ {
		spawn.Update(w)
	}
	if tr, _ = ecs.Get(w, e, component.TransformComponent); tr.Y != firstY {
		t.Fatalf("spawn height changed without a respawn: %v -> %v", firstY, tr.Y)
	}

	scroll := NewScrollSystem(testDelta)
	wrapped := false
	for i := 0; i < 600 && !wrapped; i++ {
		scroll.Update(w)
		sc, _ := ecs.Get(w, e, component.ScrollComponent)
		wrapped = sc.Respawned
	}
	if !wrapped {
		t.Fatalf("pterodactyl never wrapped")
	}
	spawn.Update(w)
	tr, _ = ecs.Get(w, e, component.TransformComponent)
	sc, _ := ecs.Get(w, e, component.ScrollComponent)
	if tr.X != 1340 || !validY(tr.Y) || sc.Respawned {
		t.Fatalf("respawn not applied: transform=%+v scroll=%+v", tr, sc)
	}
}
