// Package palette maps tile ids onto the fixed tile kind vocabulary, along
// with the overlay color and instantiation template of each kind.
package palette

import (
	"image/color"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindGround
	KindWall
	KindCoin
)

type entry struct {
	id       string
	label    string
	color    color.NRGBA
	template string
}

var table = map[Kind]entry{
	KindGround: {id: "ground", label: "Ground Tile", color: rgba(0.6, 0.4, 0.2, 1), template: "ground_tile"},
	KindWall:   {id: "wall", label: "Wall Tile", color: rgba(0.4, 0.4, 0.4, 1), template: "wall_tile"},
	KindCoin:   {id: "coin", label: "Coin", color: rgba(1, 0.92, 0.016, 1), template: "coin"},
}

// FallbackColor is drawn for ids outside the vocabulary.
var FallbackColor = rgba(1, 1, 1, 0.3)

// ParseKind matches id case-insensitively against the vocabulary. Empty or
// unrecognized ids map to KindUnknown.
func ParseKind(id string) Kind {
	for k, e := range table {
		if strings.EqualFold(id, e.id) {
			return k
		}
	}
	return KindUnknown
}

// Kinds returns the paintable kinds in palette order.
func Kinds() []Kind {
	return []Kind{KindGround, KindWall, KindCoin}
}

// ID returns the canonical tile id, or "" for KindUnknown.
func (k Kind) ID() string {
	return table[k].id
}

// Label is the palette button text.
func (k Kind) Label() string {
	if e, ok := table[k]; ok {
		return e.label
	}
	return "None"
}

func (k Kind) String() string {
	if e, ok := table[k]; ok {
		return e.id
	}
	return "unknown"
}

func (k Kind) Known() bool {
	_, ok := table[k]
	return ok
}

// Color returns the overlay color for k, FallbackColor when unknown.
func (k Kind) Color() color.NRGBA {
	if e, ok := table[k]; ok {
		return e.color
	}
	return FallbackColor
}

// Template returns the template name registered for k.
func (k Kind) Template() (string, bool) {
	e, ok := table[k]
	if !ok {
		return "", false
	}
	return e.template, true
}

// ColorFor is shorthand for ParseKind(id).Color().
func ColorFor(id string) color.NRGBA {
	return ParseKind(id).Color()
}

// TemplateFor is shorthand for ParseKind(id).Template().
func TemplateFor(id string) (string, bool) {
	return ParseKind(id).Template()
}

func rgba(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: to8(a)}
}

func to8(v float64) uint8 {
	return uint8(v*255 + 0.5)
}
