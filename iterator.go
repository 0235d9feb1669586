package bimap

import (
	"iter"

	"ocm.software/open-component-model/bindings/go/bimap/internal/index"
)

type traversal uint8

const (
	forwardByKey traversal = iota
	forwardByValue
	reverseByKey
	reverseByValue
)

type position uint8

const (
	beforeFirst position = iota
	atPair
	exhausted
)

// Iterator is a cursor over the pairs of a bimap in one of its traversal
// orders. It starts before the first pair; call Next to advance it:
//
//	it := m.KeyIterator()
//	defer it.Close()
//	for it.Next() {
//		fmt.Println(it.Key(), it.Value())
//	}
//
// An Iterator is invalidated by any change to the bimap it was created from.
type Iterator[K, V any] struct {
	records *arena[K, V]
	order   traversal
	pos     position
	current index.Handle
	next    func() (index.Handle, bool)
	stop    func()
}

func newIterator[K, V any](records *arena[K, V], order traversal, seq iter.Seq[index.Handle]) *Iterator[K, V] {
	next, stop := iter.Pull(seq)
	return &Iterator[K, V]{
		records: records,
		order:   order,
		next:    next,
		stop:    stop,
	}
}

// Next advances the iterator and reports whether it is positioned on a pair.
func (it *Iterator[K, V]) Next() bool {
	if it.pos == exhausted {
		return false
	}
	h, ok := it.next()
	if !ok {
		it.Close()
		return false
	}
	it.pos, it.current = atPair, h
	return true
}

// Pair returns the pair the iterator is positioned on, or the zero Pair if
// Next has not been called yet or returned false.
func (it *Iterator[K, V]) Pair() Pair[K, V] {
	if it.pos != atPair {
		return Pair[K, V]{}
	}
	return it.records.get(it.current)
}

func (it *Iterator[K, V]) Key() K {
	return it.Pair().key
}

func (it *Iterator[K, V]) Value() V {
	return it.Pair().value
}

// Close releases the iterator. A closed iterator is exhausted.
func (it *Iterator[K, V]) Close() {
	it.pos = exhausted
	it.stop()
}

// Equal reports whether both iterators belong to the same bimap, walk it in
// the same order and stand at the same position. Iterators of different bimaps
// are never equal.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	if it == nil || other == nil {
		return it == other
	}
	if it.records != other.records || it.order != other.order || it.pos != other.pos {
		return false
	}
	return it.pos != atPair || it.current == other.current
}
