package component

// Transform is a world position in cell units.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
