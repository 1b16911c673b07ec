package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/levels"
	"github.com/milk9111/gridpaint/prefabs"
	"github.com/milk9111/gridpaint/script"
	"github.com/milk9111/gridpaint/session"
	"github.com/milk9111/gridpaint/settings"
)

func main() {
	levelDir := flag.String("dir", "levels", "Directory levels are saved to and loaded from")
	levelName := flag.String("level", "", "Level name to open (basename or filename, .json optional)")
	scriptName := flag.String("script", "", "Tengo generation script to run against the opened level")
	importPath := flag.String("import", "", "Tiled .tmx map to import as a new level")
	interpolate := flag.Bool("interpolate", false, "Fill skipped cells between drag samples")
	flag.Parse()

	log.Println("Editor starting...")

	prefs := settings.Open()
	saved := prefs.Load()

	sess := session.New(level.NewFileStore(*levelDir))
	sess.Surface.Interpolate = *interpolate

	name := *levelName
	if name == "" {
		name = saved.LastLevel
	}

	switch {
	case *importPath != "":
		abs, err := filepath.Abs(*importPath)
		if err != nil {
			log.Fatalf("Failed to resolve %s: %v", *importPath, err)
		}
		if err := sess.Import(os.DirFS(filepath.Dir(abs)), filepath.Base(abs)); err != nil {
			log.Fatalf("Failed to import %s: %v", *importPath, err)
		}
	default:
		if err := sess.OpenSeeded(name, levels.Load); err != nil {
			log.Fatalf("Failed to open level %s: %v", name, err)
		}
	}

	if *scriptName != "" {
		var stats script.Stats
		err := sess.Apply(func(doc *level.Document) error {
			var err error
			stats, err = script.RunFile(context.Background(), doc, *scriptName)
			return err
		})
		if err != nil {
			log.Printf("Script %s failed, level left unchanged: %v", *scriptName, err)
		} else {
			log.Printf("Script %s: %d placed, %d removed", *scriptName, stats.Placed, stats.Removed)
		}
	}

	watcher, err := prefabs.NewWatcher(watchDirs(*levelDir)...)
	if err != nil {
		log.Printf("File watching disabled: %v", err)
	}

	game := NewEditor(sess, prefs, watcher)
	game.applyPrefs(saved)
	defer game.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("gridpaint editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Editor exited: %v", err)
	}
}

func watchDirs(levelDir string) []string {
	var dirs []string
	for _, d := range []string{"prefabs", levelDir} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
