package bimap

import "ocm.software/open-component-model/bindings/go/bimap/internal/index"

// Unordered is a bimap backed by hash maps. Lookups and updates take constant
// time on average; pairs can only be walked forward, in no particular order.
type Unordered[K, V comparable] struct {
	core[K, V, *index.Hash[K], *index.Hash[V]]
}

// NewUnordered creates an empty Unordered bimap.
func NewUnordered[K, V comparable](opts ...Option) (*Unordered[K, V], error) {
	if err := checkTypes[K, V](); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Unordered[K, V]{
		core: newCore[K, V](index.NewHash[K](o.capacity), index.NewHash[V](o.capacity), o),
	}, nil
}

// MustNewUnordered is like NewUnordered but panics on error.
func MustNewUnordered[K, V comparable](opts ...Option) *Unordered[K, V] {
	m, err := NewUnordered[K, V](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Clone returns an independent copy of m.
func (m *Unordered[K, V]) Clone() *Unordered[K, V] {
	return &Unordered[K, V]{core: m.cloneWith(m.forward.Clone(), m.backward.Clone())}
}
