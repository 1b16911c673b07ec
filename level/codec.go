package level

import (
	"encoding/json"
	"fmt"
)

type documentJSON struct {
	LevelName string       `json:"levelName"`
	Tiles     []TileRecord `json:"tiles"`
}

// Marshal encodes the document as indented JSON.
func Marshal(d *Document) ([]byte, error) {
	if d == nil {
		return nil, ErrNoDocument
	}
	tiles := d.Tiles
	if tiles == nil {
		tiles = []TileRecord{}
	}
	return json.MarshalIndent(documentJSON{LevelName: d.Name, Tiles: tiles}, "", "  ")
}

// Unmarshal decodes a document. Records sharing a position collapse onto the
// first one, keeping the last tile id seen. The result is clean.
func Unmarshal(data []byte) (*Document, error) {
	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}

	d := &Document{Name: raw.LevelName}
	if d.Name == "" {
		d.Name = DefaultName
	}
	for _, t := range raw.Tiles {
		d.PlaceTileLayer(t.Position, t.TileID, t.Layer)
	}
	d.MarkClean()
	return d, nil
}
