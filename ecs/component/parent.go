package component

// Parent links an entity to its container entity.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

// Name is a display name, used for container entities.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
