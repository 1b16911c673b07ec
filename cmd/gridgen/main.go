// Command gridgen runs a tengo generation script against a level and saves
// the result without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/prefabs"
	"github.com/milk9111/gridpaint/script"
)

func main() {
	levelDir := flag.String("dir", "levels", "Directory levels are read from and written to")
	levelName := flag.String("level", "generated", "Level to load (created when missing)")
	scriptName := flag.String("script", "", "Script file path or embedded script name")
	out := flag.String("out", "", "Save under this name instead of -level")
	fresh := flag.Bool("new", false, "Start from an empty level instead of loading -level")
	timeout := flag.Duration("timeout", 10*time.Second, "Abort scripts that run longer than this")
	list := flag.Bool("list", false, "List levels in -dir and exit")
	flag.Parse()

	store := level.NewFileStore(*levelDir)
	if *list {
		names, err := store.List()
		if err != nil {
			log.Fatalf("list: %v", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	if strings.TrimSpace(*scriptName) == "" {
		log.Fatal("gridgen: -script is required")
	}

	src, err := loadScript(*scriptName)
	if err != nil {
		log.Fatalf("gridgen: %v", err)
	}

	var doc *level.Document
	if *fresh {
		doc = level.New()
	} else if doc, err = store.LoadOrCreate(*levelName); err != nil {
		log.Fatalf("gridgen: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := script.Run(ctx, doc, src)
	if err != nil {
		log.Fatalf("gridgen: %s: %v", *scriptName, err)
	}

	name := *levelName
	if *out != "" {
		name = *out
	}
	if err := store.Save(name, doc); err != nil {
		log.Fatalf("gridgen: %v", err)
	}

	w, h := doc.GridSize()
	log.Printf("%s: %d placed, %d removed, %d tiles, grid %dx%d", name, stats.Placed, stats.Removed, doc.Len(), w, h)
}

// loadScript prefers a file on disk and falls back to the embedded scripts.
func loadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	data, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	return data, nil
}
