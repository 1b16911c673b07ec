package playback

import (
	"errors"
	"log"

	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/palette"
)

var ErrNoSpawner = errors.New("playback: no spawner")

// Instantiator spawns one instance per resolvable tile and remembers what it
// spawned so Clear removes exactly those instances.
type Instantiator struct {
	Doc     *level.Document
	Spawner Spawner
	// ClearPrevious destroys the previous batch before Load.
	ClearPrevious bool

	spawned []Instance
}

func NewInstantiator(doc *level.Document, spawner Spawner) *Instantiator {
	return &Instantiator{Doc: doc, Spawner: spawner, ClearPrevious: true}
}

// Load instantiates the document's tiles. Unknown tile ids and spawn
// failures are logged and skipped.
func (in *Instantiator) Load() error {
	if in.Doc == nil {
		log.Println("playback: level document is not assigned")
		return level.ErrNoDocument
	}
	if in.Spawner == nil {
		log.Println("playback: no spawner assigned")
		return ErrNoSpawner
	}
	if in.ClearPrevious {
		in.Clear()
	}

	for _, t := range in.Doc.Tiles {
		tmpl, ok := palette.TemplateFor(t.TileID)
		if !ok {
			log.Printf("playback: unknown tile type: %q", t.TileID)
			continue
		}
		inst, err := in.Spawner.Spawn(tmpl, CellCenter(t.Position))
		if err != nil {
			log.Printf("playback: spawn %s at %v: %v", tmpl, t.Position, err)
			continue
		}
		in.spawned = append(in.spawned, inst)
	}

	log.Printf("Level loaded: %d tiles", len(in.spawned))
	return nil
}

// Clear destroys every instance produced by Load.
func (in *Instantiator) Clear() {
	for _, inst := range in.spawned {
		if inst != nil {
			inst.Destroy()
		}
	}
	clear(in.spawned)
	in.spawned = in.spawned[:0]
}

// Refresh clears and reloads.
func (in *Instantiator) Refresh() error {
	in.Clear()
	return in.Load()
}

// Count returns the number of live instances.
func (in *Instantiator) Count() int {
	return len(in.spawned)
}
