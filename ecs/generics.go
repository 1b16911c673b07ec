package ecs

import "github.com/milk9111/gridpaint/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if !IsAlive(w, e) {
		return zero, false
	}
	value, ok := w.store(handle.Kind().ID(), false).Get(e)
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// ForEach calls fn for every entity holding the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, T)) {
	s := w.store(handle.Kind().ID(), false)
	if s == nil {
		return
	}
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// Count returns the number of entities holding the component.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	return w.store(handle.Kind().ID(), false).Len()
}
