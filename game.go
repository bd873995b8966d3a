package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/ecs/system"
	"github.com/milk9111/dinorunner/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	tps       int
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	watcher   *prefabs.Watcher
}

func NewGame(tps int, debug bool) (*Game, error) {
	w, scheduler, err := buildWorld(tps)
	if err != nil {
		return nil, err
	}

	g := &Game{
		tps:       tps,
		world:     w,
		scheduler: scheduler,
		render:    system.NewRenderSystem(debug),
	}

	if debug {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.handleReload()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// pollWatcher turns prefab edits into a reload request without blocking the tick.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			e := g.world.CreateEntity()
			if err := ecs.Add(g.world, e, component.ReloadRequestComponent, component.ReloadRequest{Reason: name}); err != nil {
				log.Printf("queue prefab reload: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

// handleReload rebuilds the world when any reload request is pending. A broken
// prefab keeps the current world running.
func (g *Game) handleReload() {
	requests := g.world.Query(component.ReloadRequestComponent.Kind())
	if len(requests) == 0 {
		return
	}
	for _, e := range requests {
		req, _ := ecs.Get(g.world, e, component.ReloadRequestComponent)
		log.Printf("reloading world: %s changed", req.Reason)
		g.world.DestroyEntity(e)
	}

	w, scheduler, err := buildWorld(g.tps)
	if err != nil {
		log.Printf("reload failed, keeping current world: %v", err)
		return
	}
	g.world = w
	g.scheduler = scheduler
}
