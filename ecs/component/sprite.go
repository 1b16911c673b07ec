package component

import "image/color"

// Sprite is a solid colored quad centered on the entity's transform.
type Sprite struct {
	Color  color.Color
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
