package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dinorunner/ecs"
	"github.com/milk9111/dinorunner/ecs/component"
	"github.com/milk9111/dinorunner/prefabs"
)

func usePrefabDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })
	return dir
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	w, scheduler, err := buildWorld(60)
	if err != nil {
		t.Fatalf("buildWorld: %v", err)
	}
	return &Game{tps: 60, world: w, scheduler: scheduler}
}

func requestReload(t *testing.T, g *Game) {
	t.Helper()
	e := g.world.CreateEntity()
	if err := ecs.Add(g.world, e, component.ReloadRequestComponent, component.ReloadRequest{Reason: "dino.yaml"}); err != nil {
		t.Fatalf("add reload request: %v", err)
	}
}

func TestBuildWorld(t *testing.T) {
	usePrefabDir(t)
	g := newTestGame(t)

	for _, tc := range []struct {
		name string
		kind component.Kind
	}{
		{name: "dino", kind: component.DinoTagComponent.Kind()},
		{name: "ground", kind: component.GroundTagComponent.Kind()},
		{name: "pterodactyl", kind: component.PterodactylTagComponent.Kind()},
	} {
		if got := len(g.world.Query(tc.kind)); got != 1 {
			t.Fatalf("expected one %s, got %d", tc.name, got)
		}
	}
	if got := len(g.scheduler.Systems()); got != 6 {
		t.Fatalf("expected 6 systems, got %d", got)
	}
}

func TestHandleReloadRebuildsWorld(t *testing.T) {
	usePrefabDir(t)
	g := newTestGame(t)
	old := g.world

	g.handleReload()
	if g.world != old {
		t.Fatalf("world rebuilt without a request")
	}

	requestReload(t, g)
	g.handleReload()
	if g.world == old {
		t.Fatalf("world not rebuilt")
	}
	if _, ok := g.world.First(component.ReloadRequestComponent.Kind()); ok {
		t.Fatalf("reload request carried into the new world")
	}
}

func TestHandleReloadKeepsWorldOnBadPrefab(t *testing.T) {
	dir := usePrefabDir(t)
	g := newTestGame(t)
	old := g.world

	if err := os.WriteFile(filepath.Join(dir, "dino.yaml"), []byte("regular_gravity: [1, 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	requestReload(t, g)
	g.handleReload()

	if g.world != old {
		t.Fatalf("broken prefab replaced the running world")
	}
	if _, ok := g.world.First(component.ReloadRequestComponent.Kind()); ok {
		t.Fatalf("reload request should be consumed even when the rebuild fails")
	}
}

func TestRunGameClosesWatcherOnError(t *testing.T) {
	dir := usePrefabDir(t)
	g, err := NewGame(60, true)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.watcher == nil {
		t.Fatalf("debug game should watch %s", dir)
	}
	events := g.watcher.Events

	runErr := errors.New("window closed")
	err = runGame(g, func(ebiten.Game) error { return runErr })
	if !errors.Is(err, runErr) {
		t.Fatalf("expected run error, got %v", err)
	}

	// Events is closed once the watcher goroutine has exited
	for range events {
	}
}
