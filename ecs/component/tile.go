package component

// Tile marks an entity spawned from a level tile record.
type Tile struct {
	Template string
	X        int
	Y        int
}

var TileComponent = NewComponent[Tile]()
