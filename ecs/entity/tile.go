package entity

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/physics"
	"github.com/milk9111/gridpaint/playback"
	"github.com/milk9111/gridpaint/prefabs"
)

// RootName names the container entity every spawned tile is parented to.
const RootName = "Level"

// TemplateLoader resolves a template name. prefabs.LoadTemplate is the default.
type TemplateLoader func(name string) (*prefabs.TileTemplate, error)

// TileSpawner builds tile entities from prefab templates. It satisfies
// playback.Spawner.
type TileSpawner struct {
	World *ecs.World
	Space *physics.Space
	Load  TemplateLoader

	root      ecs.Entity
	templates map[string]*prefabs.TileTemplate
}

// NewTileSpawner creates a spawner and its root container entity.
func NewTileSpawner(w *ecs.World, space *physics.Space) *TileSpawner {
	return &TileSpawner{
		World:     w,
		Space:     space,
		Load:      prefabs.LoadTemplate,
		templates: make(map[string]*prefabs.TileTemplate),
	}
}

// Root returns the container entity, creating it on first use.
func (s *TileSpawner) Root() ecs.Entity {
	if s.root.Valid() && ecs.IsAlive(s.World, s.root) {
		return s.root
	}
	s.root = ecs.CreateEntity(s.World)
	_ = ecs.Add(s.World, s.root, component.NameComponent, component.Name{Value: RootName})
	_ = ecs.Add(s.World, s.root, component.TransformComponent, component.Transform{ScaleX: 1, ScaleY: 1})
	return s.root
}

// Children returns the entities parented to the root.
func (s *TileSpawner) Children() []ecs.Entity {
	if !s.root.Valid() {
		return nil
	}
	var out []ecs.Entity
	ecs.ForEach(s.World, component.ParentComponent, func(e ecs.Entity, p component.Parent) {
		if p.Entity == uint64(s.root) {
			out = append(out, e)
		}
	})
	return out
}

// Reload drops cached templates so the next Spawn reads them again.
func (s *TileSpawner) Reload() {
	s.templates = make(map[string]*prefabs.TileTemplate)
}

func (s *TileSpawner) template(name string) (*prefabs.TileTemplate, error) {
	if tpl, ok := s.templates[name]; ok {
		return tpl, nil
	}
	load := s.Load
	if load == nil {
		load = prefabs.LoadTemplate
	}
	tpl, err := load(name)
	if err != nil {
		return nil, err
	}
	if s.templates == nil {
		s.templates = make(map[string]*prefabs.TileTemplate)
	}
	s.templates[name] = tpl
	return tpl, nil
}

// Spawn creates one tile entity centered on pos.
func (s *TileSpawner) Spawn(template string, pos playback.Vec2) (playback.Instance, error) {
	if s == nil || s.World == nil {
		return nil, fmt.Errorf("entity: spawn %s: no world", template)
	}
	tpl, err := s.template(template)
	if err != nil {
		return nil, fmt.Errorf("entity: spawn %s: %w", template, err)
	}

	root := s.Root()
	e := ecs.CreateEntity(s.World)
	inst := &TileInstance{spawner: s, entity: e}

	if err := ecs.Add(s.World, e, component.TransformComponent, component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		inst.Destroy()
		return nil, err
	}
	if err := ecs.Add(s.World, e, component.SpriteComponent, component.Sprite{
		Color:  tpl.RGBA(),
		Width:  tpl.Size,
		Height: tpl.Size,
	}); err != nil {
		inst.Destroy()
		return nil, err
	}
	if err := ecs.Add(s.World, e, component.RenderLayerComponent, component.RenderLayer{Index: tpl.RenderLayer}); err != nil {
		inst.Destroy()
		return nil, err
	}
	if err := ecs.Add(s.World, e, component.TileComponent, component.Tile{
		Template: tpl.Name,
		X:        int(math.Floor(pos.X)),
		Y:        int(math.Floor(pos.Y)),
	}); err != nil {
		inst.Destroy()
		return nil, err
	}
	if err := ecs.Add(s.World, e, component.ParentComponent, component.Parent{Entity: uint64(root)}); err != nil {
		inst.Destroy()
		return nil, err
	}

	if tpl.Collider != prefabs.ColliderNone && s.Space != nil {
		sensor := tpl.Collider == prefabs.ColliderSensor
		shape := s.Space.AddBox(pos.X, pos.Y, tpl.Size, tpl.Size, sensor)
		if shape == nil {
			log.Printf("entity: %s at (%.1f, %.1f) has an empty collider", tpl.Name, pos.X, pos.Y)
		} else {
			inst.shape = shape
			_ = ecs.Add(s.World, e, component.PhysicsBodyComponent, component.PhysicsBody{
				Shape:  shape,
				Width:  tpl.Size,
				Height: tpl.Size,
				Sensor: sensor,
			})
		}
	}

	return inst, nil
}

// TileInstance is one spawned tile.
type TileInstance struct {
	spawner *TileSpawner
	entity  ecs.Entity
	shape   *cp.Shape
}

// Entity returns the backing entity.
func (i *TileInstance) Entity() ecs.Entity {
	return i.entity
}

// Destroy removes the tile's collider and entity. Safe to call twice.
func (i *TileInstance) Destroy() {
	if i == nil || i.spawner == nil {
		return
	}
	if i.shape != nil {
		i.spawner.Space.Remove(i.shape)
		i.shape = nil
	}
	ecs.DestroyEntity(i.spawner.World, i.entity)
}
