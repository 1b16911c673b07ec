package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/physics"
	"github.com/milk9111/gridpaint/playback"
	"github.com/milk9111/gridpaint/prefabs"
)

func newTestSpawner() (*TileSpawner, *ecs.World, *physics.Space) {
	w := ecs.NewWorld()
	space := physics.NewSpace()
	s := NewTileSpawner(w, space)
	return s, w, space
}

func TestSpawnFromEmbeddedTemplates(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		pos        playback.Vec2
		wantSolid  bool
		wantSensor bool
		wantLayer  int
	}{
		{"ground", "ground_tile", playback.Vec2{X: 0.5, Y: 0.5}, true, false, component.LayerTerrain},
		{"wall", "wall_tile", playback.Vec2{X: 2.5, Y: 1.5}, true, false, component.LayerTerrain},
		{"coin", "coin", playback.Vec2{X: 4.5, Y: 0.5}, false, true, component.LayerPickup},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, w, space := newTestSpawner()
			inst, err := s.Spawn(tc.template, tc.pos)
			if err != nil {
				t.Fatalf("Spawn: %v", err)
			}
			ti := inst.(*TileInstance)
			e := ti.Entity()

			tr, ok := ecs.Get(w, e, component.TransformComponent)
			if !ok || tr.X != tc.pos.X || tr.Y != tc.pos.Y {
				t.Fatalf("transform = %+v ok=%v", tr, ok)
			}
			layer, _ := ecs.Get(w, e, component.RenderLayerComponent)
			if layer.Index != tc.wantLayer {
				t.Fatalf("render layer = %d want %d", layer.Index, tc.wantLayer)
			}
			parent, ok := ecs.Get(w, e, component.ParentComponent)
			if !ok || parent.Entity != uint64(s.Root()) {
				t.Fatalf("tile not parented to root")
			}
			if got := space.SolidAt(tc.pos.X, tc.pos.Y); got != tc.wantSolid {
				t.Fatalf("SolidAt = %v want %v", got, tc.wantSolid)
			}
			if got := space.SensorAt(tc.pos.X, tc.pos.Y); got != tc.wantSensor {
				t.Fatalf("SensorAt = %v want %v", got, tc.wantSensor)
			}

			inst.Destroy()
			inst.Destroy()
			if ecs.IsAlive(w, e) {
				t.Fatalf("entity alive after Destroy")
			}
			if space.Len() != 0 {
				t.Fatalf("shape left in space after Destroy")
			}
			if !ecs.IsAlive(w, s.Root()) {
				t.Fatalf("root should outlive its children")
			}
		})
	}
}

func TestSpawnTileCell(t *testing.T) {
	s, w, _ := newTestSpawner()
	inst, err := s.Spawn("ground_tile", playback.CellCenter(level.Cell{X: -2, Y: 3}))
	if err != nil {
		t.Fatal(err)
	}
	tile, _ := ecs.Get(w, inst.(*TileInstance).Entity(), component.TileComponent)
	if tile.X != -2 || tile.Y != 3 {
		t.Fatalf("tile cell = (%d,%d) want (-2,3)", tile.X, tile.Y)
	}
}

func TestSpawnUnknownTemplate(t *testing.T) {
	s, w, _ := newTestSpawner()
	if _, err := s.Spawn("lava", playback.Vec2{}); !errors.Is(err, prefabs.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("failed spawn left entities behind")
	}
}

func TestTemplateCacheAndReload(t *testing.T) {
	s, _, _ := newTestSpawner()
	loads := 0
	s.Load = func(name string) (*prefabs.TileTemplate, error) {
		loads++
		return &prefabs.TileTemplate{Name: name, Color: "#ffffff", Size: 1, Collider: prefabs.ColliderNone}, nil
	}

	for i := 0; i < 3; i++ {
		if _, err := s.Spawn("ground_tile", playback.Vec2{X: float64(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if loads != 1 {
		t.Fatalf("expected 1 template load, got %d", loads)
	}
	s.Reload()
	s.Spawn("ground_tile", playback.Vec2{})
	if loads != 2 {
		t.Fatalf("expected reload to re-read template, got %d loads", loads)
	}
}

func TestInstantiatorIntoWorld(t *testing.T) {
	s, w, space := newTestSpawner()

	doc := level.New()
	doc.PlaceTile(level.Cell{X: 0, Y: 0}, "ground")
	doc.PlaceTile(level.Cell{X: 1, Y: 0}, "wall")
	doc.PlaceTile(level.Cell{X: 2, Y: 0}, "coin")
	doc.PlaceTile(level.Cell{X: 3, Y: 0}, "lava")

	in := playback.NewInstantiator(doc, s)
	if err := in.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if in.Count() != 3 {
		t.Fatalf("expected 3 instances, got %d", in.Count())
	}
	if len(s.Children()) != 3 {
		t.Fatalf("expected 3 children under root, got %d", len(s.Children()))
	}
	if !space.SolidAt(1.5, 0.5) || !space.SensorAt(2.5, 0.5) {
		t.Fatalf("colliders missing after instantiate")
	}

	if err := in.Refresh(); err != nil {
		t.Fatal(err)
	}
	if len(s.Children()) != 3 || space.Len() != 3 {
		t.Fatalf("refresh duplicated tiles: %d children %d shapes", len(s.Children()), space.Len())
	}

	in.Clear()
	if len(s.Children()) != 0 || space.Len() != 0 {
		t.Fatalf("clear left %d children %d shapes", len(s.Children()), space.Len())
	}
	if got := ecs.Count(w, component.TileComponent); got != 0 {
		t.Fatalf("clear left %d tile components", got)
	}
}
