package index

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var _ Reversible[string] = (*Linked[string])(nil)

// Linked is an Index that remembers the order in which keys were first put.
// Putting a key that is already present keeps its position.
type Linked[T comparable] struct {
	entries  *orderedmap.OrderedMap[T, Handle]
	capacity int
}

// NewLinked creates an empty Linked sized for capacity entries.
func NewLinked[T comparable](capacity int) *Linked[T] {
	l := &Linked[T]{capacity: max(capacity, 0)}
	l.Clear()
	return l
}

func (l *Linked[T]) Get(key T) (Handle, bool) {
	return l.entries.Get(key)
}

func (l *Linked[T]) Put(key T, handle Handle) {
	l.entries.Set(key, handle)
}

func (l *Linked[T]) Delete(key T) (Handle, bool) {
	return l.entries.Delete(key)
}

func (l *Linked[T]) Admits(key T) bool {
	return key == key //nolint:gocritic,staticcheck // false only for NaN and values holding one
}

func (l *Linked[T]) Len() int {
	return l.entries.Len()
}

func (l *Linked[T]) Clear() {
	l.entries = orderedmap.New[T, Handle](orderedmap.WithCapacity[T, Handle](l.capacity))
}

func (l *Linked[T]) All() iter.Seq2[T, Handle] {
	return func(yield func(T, Handle) bool) {
		for p := l.entries.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (l *Linked[T]) Backward() iter.Seq2[T, Handle] {
	return func(yield func(T, Handle) bool) {
		for p := l.entries.Newest(); p != nil; p = p.Prev() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (l *Linked[T]) First() (Handle, bool) {
	return handleOf(l.entries.Oldest())
}

func (l *Linked[T]) Last() (Handle, bool) {
	return handleOf(l.entries.Newest())
}

func (l *Linked[T]) After(key T) (Handle, bool) {
	p := l.entries.GetPair(key)
	if p == nil {
		return 0, false
	}
	return handleOf(p.Next())
}

func (l *Linked[T]) Before(key T) (Handle, bool) {
	p := l.entries.GetPair(key)
	if p == nil {
		return 0, false
	}
	return handleOf(p.Prev())
}

func handleOf[T comparable](p *orderedmap.Pair[T, Handle]) (Handle, bool) {
	if p == nil {
		return 0, false
	}
	return p.Value, true
}

func (l *Linked[T]) Clone() *Linked[T] {
	clone := NewLinked[T](max(l.capacity, l.entries.Len()))
	for key, handle := range l.All() {
		clone.entries.Set(key, handle)
	}
	return clone
}
