// Package canvas maps level cells onto the ebiten screen and draws
// playback overlays with the vector package.
package canvas

const (
	DefaultCellSize = 32.0
	MinZoom         = 0.25
	MaxZoom         = 8.0
	zoomStep        = 1.1
)

// Camera is a pan/zoom transform from world cell units to screen pixels.
// The scene starts at OriginX so a side panel can sit to its left.
type Camera struct {
	OriginX  float64
	CellSize float64
	Zoom     float64
	OffsetX  float64
	OffsetY  float64

	panning bool
	lastX   float64
	lastY   float64
}

func NewCamera(originX float64) *Camera {
	return &Camera{OriginX: originX, CellSize: DefaultCellSize, Zoom: 1}
}

func (c *Camera) zoom() float64 {
	if c.Zoom == 0 {
		c.Zoom = 1
	}
	return c.Zoom
}

// Scale returns screen pixels per world cell.
func (c *Camera) Scale() float64 {
	size := c.CellSize
	if size <= 0 {
		size = DefaultCellSize
	}
	return size * c.zoom()
}

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	s := c.Scale()
	return c.OriginX + c.OffsetX + x*s, c.OffsetY + y*s
}

// ScreenToWorld maps screen pixels to a world point.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	s := c.Scale()
	return (sx - c.OriginX - c.OffsetX) / s, (sy - c.OffsetY) / s
}

// InScene reports whether a screen x lies right of the panel.
func (c *Camera) InScene(sx float64) bool {
	return sx >= c.OriginX
}

// ZoomAt scales around the screen point so the world point under it stays
// fixed. wheel > 0 zooms in.
func (c *Camera) ZoomAt(sx, sy, wheel float64) {
	if wheel == 0 {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	factor := zoomStep
	if wheel < 0 {
		factor = 1 / zoomStep
	}
	z := c.zoom() * factor
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	c.Zoom = z

	s := c.Scale()
	c.OffsetX = sx - c.OriginX - wx*s
	c.OffsetY = sy - wy*s
}

// Pan shifts the view by a screen delta.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// DragPan tracks a held pan button. Call every frame with the button state.
func (c *Camera) DragPan(held bool, sx, sy float64) {
	if !held {
		c.panning = false
		return
	}
	if c.panning {
		c.Pan(sx-c.lastX, sy-c.lastY)
	}
	c.panning = true
	c.lastX, c.lastY = sx, sy
}

// Fit centers a w x h cell area inside a viewport of the given pixel size.
func (c *Camera) Fit(w, h int, viewW, viewH float64) {
	c.Zoom = 1
	s := c.Scale()
	c.OffsetX = (viewW - c.OriginX - float64(w)*s) / 2
	c.OffsetY = (viewH - float64(h)*s) / 2
}
