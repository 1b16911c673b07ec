package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

// RenderSystem draws every entity with a Transform and Sprite as a filled
// quad, lowest RenderLayer first.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

// Sorted returns the drawable entities in draw order.
func (r *RenderSystem) Sorted(w *ecs.World) []ecs.Entity {
	entities := ecs.Query(w, component.TransformComponent.ID(), component.SpriteComponent.ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li := component.LayerOf(ecs.Get(w, entities[i], component.RenderLayerComponent))
		lj := component.LayerOf(ecs.Get(w, entities[j], component.RenderLayerComponent))
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, view ecs.View) {
	if r == nil || w == nil || screen == nil || view == nil {
		return
	}
	scale := view.Scale()

	for _, e := range r.Sorted(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Color == nil {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		wPx := s.Width * sx * scale
		hPx := s.Height * sy * scale
		cx, cy := view.WorldToScreen(t.X, t.Y)

		vector.FillRect(screen, float32(cx-wPx/2), float32(cy-hPx/2), float32(wPx), float32(hPx), s.Color, false)
	}
}
