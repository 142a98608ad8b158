// Package memstore is an id-keyed in-memory collection used by the
// repositories when no database is configured.
package memstore

import (
	"slices"
	"sync"
)

type Store[T any] struct {
	mu    sync.RWMutex
	id    func(T) int
	items []T
}

// New seeds a store with items, kept in ascending id order.
func New[T any](id func(T) int, items []T) *Store[T] {
	s := &Store[T]{id: id}
	for _, item := range items {
		s.Put(item)
	}
	return s
}

// Put inserts v or replaces the entry with the same id.
func (s *Store[T]) Put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(v)
	idx, found := slices.BinarySearchFunc(s.items, id, func(item T, target int) int {
		return s.id(item) - target
	})
	if found {
		s.items[idx] = v
		return
	}
	s.items = slices.Insert(s.items, idx, v)
}

func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, found := slices.BinarySearchFunc(s.items, id, func(item T, target int) int {
		return s.id(item) - target
	})
	if !found {
		var zero T
		return zero, false
	}
	return s.items[idx], true
}

// List returns a copy of every entry ordered by id.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}
