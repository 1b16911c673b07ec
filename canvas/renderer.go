package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gridpaint/playback"
)

const strokeWidth = 1

// Renderer draws playback primitives onto an ebiten image through a camera.
type Renderer struct {
	Screen *ebiten.Image
	Camera *Camera
}

func NewRenderer(screen *ebiten.Image, cam *Camera) *Renderer {
	return &Renderer{Screen: screen, Camera: cam}
}

func (r *Renderer) DrawLine(a, b playback.Vec2, c color.Color) {
	x0, y0 := r.Camera.WorldToScreen(a.X, a.Y)
	x1, y1 := r.Camera.WorldToScreen(b.X, b.Y)
	vector.StrokeLine(r.Screen, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, c, false)
}

func (r *Renderer) DrawCube(center playback.Vec2, size float64, c color.Color) {
	x, y, s := r.square(center, size)
	vector.FillRect(r.Screen, x, y, s, s, c, false)
}

func (r *Renderer) DrawWireCube(center playback.Vec2, size float64, c color.Color) {
	x, y, s := r.square(center, size)
	vector.StrokeRect(r.Screen, x, y, s, s, strokeWidth, c, false)
}

func (r *Renderer) square(center playback.Vec2, size float64) (float32, float32, float32) {
	px := size * r.Camera.Scale()
	cx, cy := r.Camera.WorldToScreen(center.X, center.Y)
	return float32(cx - px/2), float32(cy - px/2), float32(px)
}
