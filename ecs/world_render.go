package ecs

import "github.com/hajimehoshi/ebiten/v2"

// View maps world cell coordinates onto screen pixels.
type View interface {
	WorldToScreen(x, y float64) (float64, float64)
	Scale() float64
}

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image, view View)
}

// Draw calls all render-capable systems.
func (w *World) Draw(screen *ebiten.Image, view View) {
	if w == nil || screen == nil || view == nil {
		return
	}
	for _, s := range w.systems {
		rs, ok := s.(RenderSystem)
		if !ok || rs == nil {
			continue
		}
		rs.Draw(w, screen, view)
	}
}
