package component

// Draw bands for tile templates. Pickups sit above terrain.
const (
	LayerTerrain = 0
	LayerPickup  = 10
)

// RenderLayer orders tile sprites; lower bands draw first.
type RenderLayer struct {
	Index int
}

// LayerOf returns the band of l, or LayerTerrain when there is no RenderLayer.
func LayerOf(l RenderLayer, ok bool) int {
	if !ok {
		return LayerTerrain
	}
	return l.Index
}

var RenderLayerComponent = NewComponent[RenderLayer]()
