// internal/entity/store.go
package entity

import "go-grid-defense/internal/types"

// Store keeps components keyed by EntityID and iterates them in insertion
// order. Removing while iterating is safe: the entry is dropped from the
// lookup at once and the ordering slice is compacted when the outermost
// Each returns.
type Store[T any] struct {
	items map[types.EntityID]*T
	order []types.EntityID
	depth int
	dirty bool
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[types.EntityID]*T)}
}

func (s *Store[T]) Add(id types.EntityID, v *T) {
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

// Get resolves an ID. ok is false once the entity has been removed.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Remove(id types.EntityID) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	s.dirty = true
	if s.depth == 0 {
		s.compact()
	}
}

func (s *Store[T]) Len() int { return len(s.items) }

// Each visits live entries in insertion order. Entries added during the
// walk are picked up by the next one.
func (s *Store[T]) Each(fn func(id types.EntityID, v *T)) {
	s.depth++
	order := s.order
	for _, id := range order {
		if v, ok := s.items[id]; ok {
			fn(id, v)
		}
	}
	s.depth--
	if s.depth == 0 && s.dirty {
		s.compact()
	}
}

// IDs returns a snapshot of live IDs in insertion order.
func (s *Store[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.items))
	for _, id := range s.order {
		if _, ok := s.items[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store[T]) Clear() {
	s.items = make(map[types.EntityID]*T)
	s.order = nil
	s.dirty = false
}

func (s *Store[T]) compact() {
	kept := make([]types.EntityID, 0, len(s.items))
	for _, id := range s.order {
		if _, ok := s.items[id]; ok {
			kept = append(kept, id)
		}
	}
	s.order = kept
	s.dirty = false
}
