package level

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ImportTMX converts the tile layers of a Tiled map into a document. Each
// non-empty tile becomes a record at its (column, row); the tile id comes
// from the tileset tile's "kind" property, falling back to the layer name.
func ImportTMX(fsys fs.FS, tmxPath string) (*Document, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("level: load TMX %s: %w", tmxPath, err)
	}

	d := New()
	if name := strings.TrimSuffix(path.Base(tmxPath), ".tmx"); name != "" && name != "." {
		d.Name = name
	}

	for _, layer := range m.Layers {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				idx := y*m.Width + x
				if idx >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[idx]
				if tile == nil || tile.IsNil() {
					continue
				}

				id := strings.ToLower(layer.Name)
				if tile.Tileset != nil {
					if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
						if kind := tt.Properties.GetString("kind"); kind != "" {
							id = kind
						}
					}
				}
				d.PlaceTile(Cell{X: x, Y: y}, id)
			}
		}
	}

	d.MarkClean()
	return d, nil
}
