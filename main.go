package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "demo", "level name in levels/ or embedded (basename, .json optional)")
	autoload := flag.Bool("autoload", true, "instantiate the level on start")
	gizmos := flag.Bool("gizmos", false, "draw the tile overlay on top of the instantiated level")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("gridpaint")

	game, err := NewGame(*levelName, *autoload, *gizmos)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
