package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dinorunner/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the state overlay and hot reload prefabs from disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tps := flag.Int("tps", 60, "fixed simulation ticks per second")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}
	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("dinorunner")
	ebiten.SetTPS(*tps)

	game, err := NewGame(*tps, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := runGame(game, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// runGame closes g once run returns, before any error reaches log.Fatal.
func runGame(g *Game, run func(ebiten.Game) error) error {
	err := run(g)
	if cerr := g.Close(); cerr != nil {
		log.Printf("close game: %v", cerr)
	}
	return err
}
