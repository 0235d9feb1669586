package index

import (
	"iter"
	"maps"
)

var _ Index[string] = (*Hash[string])(nil)

// Hash is an unordered Index backed by a Go map.
type Hash[T comparable] struct {
	entries  map[T]Handle
	capacity int
}

// NewHash creates an empty Hash sized for capacity entries.
func NewHash[T comparable](capacity int) *Hash[T] {
	return &Hash[T]{
		entries:  make(map[T]Handle, max(capacity, 0)),
		capacity: max(capacity, 0),
	}
}

func (h *Hash[T]) Get(key T) (Handle, bool) {
	handle, ok := h.entries[key]
	return handle, ok
}

func (h *Hash[T]) Put(key T, handle Handle) {
	h.entries[key] = handle
}

func (h *Hash[T]) Delete(key T) (Handle, bool) {
	handle, ok := h.entries[key]
	if ok {
		delete(h.entries, key)
	}
	return handle, ok
}

func (h *Hash[T]) Admits(key T) bool {
	return key == key //nolint:gocritic,staticcheck // false only for NaN and values holding one
}

func (h *Hash[T]) Len() int {
	return len(h.entries)
}

func (h *Hash[T]) Clear() {
	h.entries = make(map[T]Handle, h.capacity)
}

func (h *Hash[T]) All() iter.Seq2[T, Handle] {
	return func(yield func(T, Handle) bool) {
		for key, handle := range h.entries {
			if !yield(key, handle) {
				return
			}
		}
	}
}

func (h *Hash[T]) Clone() *Hash[T] {
	return &Hash[T]{
		entries:  maps.Clone(h.entries),
		capacity: h.capacity,
	}
}
