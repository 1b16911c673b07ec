package canvas

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCameraRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		cam  Camera
		x, y float64
	}{
		{"identity", Camera{CellSize: 32, Zoom: 1}, 3.5, 2.25},
		{"panel_origin", Camera{OriginX: 240, CellSize: 32, Zoom: 1}, -1, 4},
		{"zoomed_panned", Camera{OriginX: 100, CellSize: 16, Zoom: 2.5, OffsetX: -40, OffsetY: 13}, 7, -3.5},
		{"zero_zoom_defaults", Camera{CellSize: 32}, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := tc.cam
			sx, sy := cam.WorldToScreen(tc.x, tc.y)
			wx, wy := cam.ScreenToWorld(sx, sy)
			if !near(wx, tc.x) || !near(wy, tc.y) {
				t.Fatalf("round trip (%v,%v) -> (%v,%v)", tc.x, tc.y, wx, wy)
			}
		})
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := NewCamera(200)
	sx, sy := 500.0, 300.0
	wx, wy := cam.ScreenToWorld(sx, sy)

	cam.ZoomAt(sx, sy, 1)
	if cam.Zoom <= 1 {
		t.Fatalf("wheel up should zoom in, zoom=%v", cam.Zoom)
	}
	gx, gy := cam.ScreenToWorld(sx, sy)
	if !near(gx, wx) || !near(gy, wy) {
		t.Fatalf("point under cursor moved: (%v,%v) -> (%v,%v)", wx, wy, gx, gy)
	}
}

func TestZoomClamps(t *testing.T) {
	cam := NewCamera(0)
	for i := 0; i < 100; i++ {
		cam.ZoomAt(10, 10, 1)
	}
	if cam.Zoom != MaxZoom {
		t.Fatalf("zoom = %v want %v", cam.Zoom, MaxZoom)
	}
	for i := 0; i < 200; i++ {
		cam.ZoomAt(10, 10, -1)
	}
	if cam.Zoom != MinZoom {
		t.Fatalf("zoom = %v want %v", cam.Zoom, MinZoom)
	}
}

func TestDragPan(t *testing.T) {
	cam := NewCamera(0)
	cam.DragPan(true, 10, 10)
	cam.DragPan(true, 25, 5)
	cam.DragPan(false, 100, 100)
	cam.DragPan(true, 0, 0)
	if cam.OffsetX != 15 || cam.OffsetY != -5 {
		t.Fatalf("offset = (%v,%v) want (15,-5)", cam.OffsetX, cam.OffsetY)
	}
}

func TestFitCentersGrid(t *testing.T) {
	cam := NewCamera(200)
	cam.Fit(20, 10, 1000, 600)
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(20, 10)
	if !near((x0+x1)/2, 600) || !near((y0+y1)/2, 300) {
		t.Fatalf("grid center = (%v,%v) want (600,300)", (x0+x1)/2, (y0+y1)/2)
	}
}
