package ecs

import "github.com/milk9111/gridpaint/ecs/component"

// Query returns the entities holding every listed component, iterating the
// smallest store.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, s := range sets {
			if !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
