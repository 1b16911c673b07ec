// Package scene assembles the ECS world, the physics space and the
// instantiator that turns a level document into live tile entities.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/entity"
	"github.com/milk9111/gridpaint/ecs/system"
	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/physics"
	"github.com/milk9111/gridpaint/playback"
)

const stepDT = 1.0 / 60.0

type Scene struct {
	World        *ecs.World
	Space        *physics.Space
	Spawner      *entity.TileSpawner
	Instantiator *playback.Instantiator
}

func New(doc *level.Document) *Scene {
	w := ecs.NewWorld()
	space := physics.NewSpace()
	spawner := entity.NewTileSpawner(w, space)
	w.AddSystem(system.NewRenderSystem())

	return &Scene{
		World:        w,
		Space:        space,
		Spawner:      spawner,
		Instantiator: playback.NewInstantiator(doc, spawner),
	}
}

// SetDocument points the instantiator at doc. Spawned tiles stay until the
// next Load or Clear.
func (s *Scene) SetDocument(doc *level.Document) {
	s.Instantiator.Doc = doc
}

func (s *Scene) Load() error {
	return s.Instantiator.Load()
}

func (s *Scene) Clear() {
	s.Instantiator.Clear()
}

func (s *Scene) Refresh() error {
	return s.Instantiator.Refresh()
}

// ReloadTemplates drops cached templates and respawns live tiles.
func (s *Scene) ReloadTemplates() error {
	s.Spawner.Reload()
	if s.Instantiator.Count() == 0 {
		return nil
	}
	return s.Instantiator.Refresh()
}

func (s *Scene) Count() int {
	return s.Instantiator.Count()
}

func (s *Scene) Update() {
	s.World.Update()
	s.Space.Step(stepDT)
}

func (s *Scene) Draw(screen *ebiten.Image, view ecs.View) {
	s.World.Draw(screen, view)
}
