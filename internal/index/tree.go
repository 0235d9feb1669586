package index

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// DefaultDegree is the B-tree degree used when none is configured.
const DefaultDegree = 32

var _ Reversible[int] = (*Tree[int])(nil)

type entry[T any] struct {
	key    T
	handle Handle
}

// Tree is an ordered Index backed by a B-tree. Keys are kept in ascending order
// as defined by the compare function it was created with.
type Tree[T any] struct {
	tree    *btree.BTreeG[entry[T]]
	compare func(a, b T) int
}

// NewTree creates an empty Tree ordered by compare, which must return a negative
// number, zero or a positive number like cmp.Compare.
// A degree below 2 selects DefaultDegree.
func NewTree[T any](degree int, compare func(a, b T) int) *Tree[T] {
	if degree < 2 {
		degree = DefaultDegree
	}
	less := func(a, b entry[T]) bool {
		return compare(a.key, b.key) < 0
	}
	return &Tree[T]{tree: btree.NewG(degree, less), compare: compare}
}

// NewOrderedTree creates an empty Tree using the natural order of T.
func NewOrderedTree[T cmp.Ordered](degree int) *Tree[T] {
	return NewTree[T](degree, cmp.Compare[T])
}

func (t *Tree[T]) Get(key T) (Handle, bool) {
	e, ok := t.tree.Get(entry[T]{key: key})
	return e.handle, ok
}

func (t *Tree[T]) Put(key T, handle Handle) {
	t.tree.ReplaceOrInsert(entry[T]{key: key, handle: handle})
}

func (t *Tree[T]) Delete(key T) (Handle, bool) {
	e, ok := t.tree.Delete(entry[T]{key: key})
	return e.handle, ok
}

// Admits reports whether key is equal to itself under the compare function.
// cmp.Compare orders NaN before every other float and equal to itself, so the
// natural order admits it.
func (t *Tree[T]) Admits(key T) bool {
	return t.compare(key, key) == 0
}

func (t *Tree[T]) Len() int {
	return t.tree.Len()
}

func (t *Tree[T]) Clear() {
	t.tree.Clear(true)
}

func (t *Tree[T]) All() iter.Seq2[T, Handle] {
	return func(yield func(T, Handle) bool) {
		t.tree.Ascend(func(e entry[T]) bool {
			return yield(e.key, e.handle)
		})
	}
}

func (t *Tree[T]) Backward() iter.Seq2[T, Handle] {
	return func(yield func(T, Handle) bool) {
		t.tree.Descend(func(e entry[T]) bool {
			return yield(e.key, e.handle)
		})
	}
}

func (t *Tree[T]) First() (Handle, bool) {
	e, ok := t.tree.Min()
	return e.handle, ok
}

func (t *Tree[T]) Last() (Handle, bool) {
	e, ok := t.tree.Max()
	return e.handle, ok
}

// After returns the handle of the smallest key greater than key. Unlike the
// Linked policy, key itself does not need to be present.
func (t *Tree[T]) After(key T) (h Handle, ok bool) {
	t.tree.AscendGreaterOrEqual(entry[T]{key: key}, func(e entry[T]) bool {
		if t.compare(e.key, key) == 0 {
			return true
		}
		h, ok = e.handle, true
		return false
	})
	return h, ok
}

// Before returns the handle of the greatest key less than key.
func (t *Tree[T]) Before(key T) (h Handle, ok bool) {
	t.tree.DescendLessOrEqual(entry[T]{key: key}, func(e entry[T]) bool {
		if t.compare(e.key, key) == 0 {
			return true
		}
		h, ok = e.handle, true
		return false
	})
	return h, ok
}

// Clone returns a copy of t. The B-tree is copied lazily, so cloning is cheap
// and later writes to either tree do not affect the other.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{tree: t.tree.Clone(), compare: t.compare}
}
