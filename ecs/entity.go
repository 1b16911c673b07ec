package ecs

import "fmt"

// Entity is a generational handle. The low half is the storage slot, the
// high half counts how often that slot has been reused, so a handle kept
// across a level refresh no longer resolves once its tile is destroyed.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(slot entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(slot))
}

func (e Entity) id() entityID           { return entityID(e & 0xffffffff) }
func (e Entity) generation() generation { return generation(e >> 32) }

// String renders slot and generation, e.g. "7#2".
func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}

// Valid reports whether e refers to a slot at all. Slot 0 is never handed out.
func (e Entity) Valid() bool {
	return e.id() != 0
}
