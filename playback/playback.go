// Package playback replays a level document into visible output, either by
// instantiating one template instance per tile or by drawing an overlay.
package playback

import (
	"image/color"

	"github.com/milk9111/gridpaint/level"
)

// Vec2 is a world-space position measured in cells.
type Vec2 struct {
	X, Y float64
}

// CellCenter returns the world position of a cell's center.
func CellCenter(c level.Cell) Vec2 {
	return Vec2{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Renderer draws world-space primitives.
type Renderer interface {
	DrawLine(a, b Vec2, c color.Color)
	DrawCube(center Vec2, size float64, c color.Color)
	DrawWireCube(center Vec2, size float64, c color.Color)
}

// Instance is a spawned, destroyable template instance.
type Instance interface {
	Destroy()
}

// Spawner produces template instances at world positions.
type Spawner interface {
	Spawn(template string, pos Vec2) (Instance, error)
}
