package ecs

import "github.com/milk9111/gridpaint/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) {
		out = append(out, e)
	})
	return out
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
