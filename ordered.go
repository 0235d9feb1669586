package bimap

import (
	"cmp"

	"ocm.software/open-component-model/bindings/go/bimap/internal/index"
)

// Ordered is a bimap that keeps keys and values sorted. Lookups and updates
// take logarithmic time, and pairs can be walked by key or by value in
// ascending as well as descending order.
type Ordered[K, V any] struct {
	reversible[K, V, *index.Tree[K], *index.Tree[V]]
}

// NewOrdered creates an empty Ordered bimap using the natural order of K and V.
func NewOrdered[K, V cmp.Ordered](opts ...Option) (*Ordered[K, V], error) {
	return NewOrderedFunc[K, V](cmp.Compare[K], cmp.Compare[V], opts...)
}

// NewOrderedFunc creates an empty Ordered bimap sorting keys by keyCmp and
// values by valueCmp. Both functions follow the cmp.Compare contract.
func NewOrderedFunc[K, V any](keyCmp func(a, b K) int, valueCmp func(a, b V) int, opts ...Option) (*Ordered[K, V], error) {
	if err := checkTypes[K, V](); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	c := newCore[K, V](index.NewTree(o.degree, keyCmp), index.NewTree(o.degree, valueCmp), o)
	return &Ordered[K, V]{reversible: reversible[K, V, *index.Tree[K], *index.Tree[V]]{core: c}}, nil
}

// MustNewOrdered is like NewOrdered but panics on error.
func MustNewOrdered[K, V cmp.Ordered](opts ...Option) *Ordered[K, V] {
	m, err := NewOrdered[K, V](opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Clone returns an independent copy of m.
func (m *Ordered[K, V]) Clone() *Ordered[K, V] {
	c := m.cloneWith(m.forward.Clone(), m.backward.Clone())
	return &Ordered[K, V]{reversible: reversible[K, V, *index.Tree[K], *index.Tree[V]]{core: c}}
}
