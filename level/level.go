// Package level holds the tile level document: an ordered list of placed
// tiles and the grid size derived from them. It has no dependencies on
// ebiten or the ECS world, pure data only.
package level

const (
	// DefaultName is the name given to freshly created documents.
	DefaultName = "New Level"

	MinGridWidth  = 20
	MinGridHeight = 10
	// GridMargin is added to the tile bounding box on each axis.
	GridMargin = 5
)

// Cell is an integer grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileRecord is one placed tile. TileID is empty when the kind is unknown.
// Layer is stored for future stacking but never used in lookups.
type TileRecord struct {
	Position Cell   `json:"position"`
	TileID   string `json:"tileId,omitempty"`
	Layer    int    `json:"layer"`
}

// Document is a level: a name plus tiles unique by position.
type Document struct {
	Name  string
	Tiles []TileRecord

	dirty bool
}

// New returns an empty document with the default name.
func New() *Document {
	return &Document{Name: DefaultName}
}

// GridSize returns the bounding grid of all tiles expanded by GridMargin and
// floored at MinGridWidth x MinGridHeight. An empty document yields the minimum.
func (d *Document) GridSize() (int, int) {
	if d == nil || len(d.Tiles) == 0 {
		return MinGridWidth, MinGridHeight
	}

	minX, maxX := d.Tiles[0].Position.X, d.Tiles[0].Position.X
	minY, maxY := d.Tiles[0].Position.Y, d.Tiles[0].Position.Y
	for _, t := range d.Tiles[1:] {
		minX = min(minX, t.Position.X)
		maxX = max(maxX, t.Position.X)
		minY = min(minY, t.Position.Y)
		maxY = max(maxY, t.Position.Y)
	}

	return max(MinGridWidth, maxX-minX+GridMargin), max(MinGridHeight, maxY-minY+GridMargin)
}

// InBounds reports whether c lies inside [0,w) x [0,h) of the current grid.
func (d *Document) InBounds(c Cell) bool {
	w, h := d.GridSize()
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// PlaceTile places tileID on layer 0 at pos. See PlaceTileLayer.
func (d *Document) PlaceTile(pos Cell, tileID string) {
	d.PlaceTileLayer(pos, tileID, 0)
}

// PlaceTileLayer overwrites the tile id of the record at pos, leaving its
// layer untouched, or appends a new record. Callers do their own bounds checks.
func (d *Document) PlaceTileLayer(pos Cell, tileID string, layer int) {
	if d == nil {
		return
	}
	if i := d.indexOf(pos); i >= 0 {
		d.Tiles[i].TileID = tileID
	} else {
		d.Tiles = append(d.Tiles, TileRecord{Position: pos, TileID: tileID, Layer: layer})
	}
	d.dirty = true
}

// RemoveTile removes every record at pos and reports whether any was removed.
func (d *Document) RemoveTile(pos Cell) bool {
	if d == nil {
		return false
	}
	kept := d.Tiles[:0]
	for _, t := range d.Tiles {
		if t.Position != pos {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(d.Tiles)
	clear(d.Tiles[len(kept):])
	d.Tiles = kept
	if removed {
		d.dirty = true
	}
	return removed
}

// FindTileAt returns the record at pos, if any.
func (d *Document) FindTileAt(pos Cell) (TileRecord, bool) {
	if d == nil {
		return TileRecord{}, false
	}
	if i := d.indexOf(pos); i >= 0 {
		return d.Tiles[i], true
	}
	return TileRecord{}, false
}

func (d *Document) HasTileAt(pos Cell) bool {
	_, ok := d.FindTileAt(pos)
	return ok
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Tiles)
}

// Dirty reports whether the document changed since the last MarkClean.
func (d *Document) Dirty() bool {
	return d != nil && d.dirty
}

func (d *Document) MarkDirty() {
	if d != nil {
		d.dirty = true
	}
}

func (d *Document) MarkClean() {
	if d != nil {
		d.dirty = false
	}
}

// Clone returns a deep copy. The copy starts clean.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Name: d.Name}
	if d.Tiles != nil {
		out.Tiles = append([]TileRecord(nil), d.Tiles...)
	}
	return out
}

func (d *Document) indexOf(pos Cell) int {
	for i := range d.Tiles {
		if d.Tiles[i].Position == pos {
			return i
		}
	}
	return -1
}
