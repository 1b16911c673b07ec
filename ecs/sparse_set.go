package ecs

// SparseSet stores one component value per entity slot in dense arrays.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

func (s *SparseSet) index(e Entity) int {
	id := int(e.id())
	if s == nil || id >= len(s.sparse) {
		return -1
	}
	idx := s.sparse[id]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1
	}
	return idx
}

// Has reports whether e has a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	return s.index(e) >= 0
}

// Get returns the value for e, or nil.
func (s *SparseSet) Get(e Entity) (any, bool) {
	idx := s.index(e)
	if idx < 0 {
		return nil, false
	}
	return s.values[idx], true
}

// Set inserts or replaces the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	if idx := s.index(e); idx >= 0 {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) <= id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense) - 1
}

// Remove deletes the value for e and reports whether one existed.
func (s *SparseSet) Remove(e Entity) bool {
	idx := s.index(e)
	if idx < 0 {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()] = idx

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()] = -1
	return true
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
