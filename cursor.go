package bimap

import (
	"ocm.software/open-component-model/bindings/go/bimap/internal/index"
)

// Cursor is a bidirectional cursor over the pairs of an Ordered or Linked
// bimap. Next moves along the traversal order and Prev against it:
//
//	c := m.KeyCursor()
//	for c.Next() {
//		fmt.Println(c.Key(), c.Value())
//	}
//	for c.Prev() {
//		fmt.Println(c.Key(), c.Value())
//	}
//
// A cursor stepped past the last pair is exhausted, and Prev from there lands on
// the last pair. A cursor stepped before the first pair is back at its start,
// and Next from there lands on the first pair. Unlike Iterator, a Cursor holds no
// resources and needs no Close.
//
// A Cursor is invalidated by any change to the bimap it was created from.
type Cursor[K, V any] struct {
	records *arena[K, V]
	order   traversal
	pos     position
	current index.Handle
	nav     navigator
}

// navigator finds records next to a record in the traversal order of a Cursor.
type navigator interface {
	first() (index.Handle, bool)
	last() (index.Handle, bool)
	after(h index.Handle) (index.Handle, bool)
	before(h index.Handle) (index.Handle, bool)
}

// neighbors navigates a Reversible index by the key or value of the current
// record. With reverse set the native order of the index is walked backwards.
type neighbors[K, V, T any] struct {
	records *arena[K, V]
	idx     index.Reversible[T]
	keyOf   func(Pair[K, V]) T
	reverse bool
}

func (n neighbors[K, V, T]) first() (index.Handle, bool) {
	if n.reverse {
		return n.idx.Last()
	}
	return n.idx.First()
}

func (n neighbors[K, V, T]) last() (index.Handle, bool) {
	if n.reverse {
		return n.idx.First()
	}
	return n.idx.Last()
}

func (n neighbors[K, V, T]) after(h index.Handle) (index.Handle, bool) {
	key := n.keyOf(n.records.get(h))
	if n.reverse {
		return n.idx.Before(key)
	}
	return n.idx.After(key)
}

func (n neighbors[K, V, T]) before(h index.Handle) (index.Handle, bool) {
	key := n.keyOf(n.records.get(h))
	if n.reverse {
		return n.idx.After(key)
	}
	return n.idx.Before(key)
}

// Next advances the cursor and reports whether it is positioned on a pair.
func (c *Cursor[K, V]) Next() bool {
	var h index.Handle
	var ok bool
	switch c.pos {
	case exhausted:
		return false
	case beforeFirst:
		h, ok = c.nav.first()
	case atPair:
		h, ok = c.nav.after(c.current)
	}
	if !ok {
		c.pos = exhausted
		return false
	}
	c.pos, c.current = atPair, h
	return true
}

// Prev moves the cursor back and reports whether it is positioned on a pair.
func (c *Cursor[K, V]) Prev() bool {
	var h index.Handle
	var ok bool
	switch c.pos {
	case beforeFirst:
		return false
	case exhausted:
		h, ok = c.nav.last()
	case atPair:
		h, ok = c.nav.before(c.current)
	}
	if !ok {
		c.pos = beforeFirst
		return false
	}
	c.pos, c.current = atPair, h
	return true
}

// Pair returns the pair the cursor is positioned on, or the zero Pair.
func (c *Cursor[K, V]) Pair() Pair[K, V] {
	if c.pos != atPair {
		return Pair[K, V]{}
	}
	return c.records.get(c.current)
}

func (c *Cursor[K, V]) Key() K {
	return c.Pair().key
}

func (c *Cursor[K, V]) Value() V {
	return c.Pair().value
}

// Equal reports whether both cursors belong to the same bimap, walk it in the
// same order and stand at the same position.
func (c *Cursor[K, V]) Equal(other *Cursor[K, V]) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.records != other.records || c.order != other.order || c.pos != other.pos {
		return false
	}
	return c.pos != atPair || c.current == other.current
}
