package bimap

import "ocm.software/open-component-model/bindings/go/bimap/internal/index"

// Linked is a hash based bimap that remembers the order in which its pairs
// were created. Keys and values both iterate in that order, forward or
// backward. A pair created by Set to replace others is the newest pair.
type Linked[K, V comparable] struct {
	reversible[K, V, *index.Linked[K], *index.Linked[V]]
}

// NewLinked creates an empty Linked bimap.
func NewLinked[K, V comparable](opts ...Option) (*Linked[K, V], error) {
	if err := checkTypes[K, V](); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	c := newCore[K, V](index.NewLinked[K](o.capacity), index.NewLinked[V](o.capacity), o)
	return &Linked[K, V]{reversible: reversible[K, V, *index.Linked[K], *index.Linked[V]]{core: c}}, nil
}

// MustNewLinked is like NewLinked but panics on error.
func MustNewLinked[K, V comparable](opts ...Option) *Linked[K, V] {
	m, err := NewLinked[K, V](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Clone returns an independent copy of m.
func (m *Linked[K, V]) Clone() *Linked[K, V] {
	c := m.cloneWith(m.forward.Clone(), m.backward.Clone())
	return &Linked[K, V]{reversible: reversible[K, V, *index.Linked[K], *index.Linked[V]]{core: c}}
}
