package playback

import (
	"image/color"

	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/palette"
)

var (
	DefaultGridColor = color.NRGBA{R: 128, G: 128, B: 128, A: 77}
	tileBorderColor  = color.NRGBA{A: 128}
)

const tileFillSize = 0.9

// Overlay draws the grid and one colored marker per tile.
type Overlay struct {
	Doc        *level.Document
	ShowGizmos bool
	ShowGrid   bool
	GridColor  color.Color
}

func NewOverlay(doc *level.Document) *Overlay {
	return &Overlay{Doc: doc, ShowGizmos: true, ShowGrid: true, GridColor: DefaultGridColor}
}

// Draw renders the grid implied by the document's grid size followed by the
// tiles at their cell centers.
func (o *Overlay) Draw(r Renderer) {
	if o == nil || r == nil || o.Doc == nil || !o.ShowGizmos {
		return
	}
	if o.ShowGrid {
		w, h := o.Doc.GridSize()
		DrawGrid(r, w, h, o.GridColor)
	}
	for _, t := range o.Doc.Tiles {
		DrawTile(r, t)
	}
}

// DrawTile draws a filled marker with a unit wire border at the tile's cell center.
func DrawTile(r Renderer, t level.TileRecord) {
	center := CellCenter(t.Position)
	r.DrawCube(center, tileFillSize, palette.ColorFor(t.TileID))
	r.DrawWireCube(center, 1, tileBorderColor)
}

// DrawGrid draws w+1 vertical and h+1 horizontal lines covering [0,w] x [0,h].
func DrawGrid(r Renderer, w, h int, c color.Color) {
	if c == nil {
		c = DefaultGridColor
	}
	for x := 0; x <= w; x++ {
		r.DrawLine(Vec2{X: float64(x)}, Vec2{X: float64(x), Y: float64(h)}, c)
	}
	for y := 0; y <= h; y++ {
		r.DrawLine(Vec2{Y: float64(y)}, Vec2{X: float64(w), Y: float64(y)}, c)
	}
}

// TileAt returns the record at pos, if any.
func (o *Overlay) TileAt(pos level.Cell) (level.TileRecord, bool) {
	if o == nil {
		return level.TileRecord{}, false
	}
	return o.Doc.FindTileAt(pos)
}

func (o *Overlay) HasTileAt(pos level.Cell) bool {
	_, ok := o.TileAt(pos)
	return ok
}
