package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cameraman/common"
	"github.com/milk9111/cameraman/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw the dead zone, look-at line and marker")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	configDir := flag.String("config", prefabs.Dir, "directory checked for camera.yaml, target.yaml and scene.yaml overrides")
	script := flag.String("script", "", "drive the target with a tengo motion script instead of the keyboard")
	flag.Parse()

	prefabs.Dir = *configDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("cameraman")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*debug, *script)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
