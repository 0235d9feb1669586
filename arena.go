package bimap

import (
	"fmt"
	"slices"

	"ocm.software/open-component-model/bindings/go/bimap/internal/index"
)

type slot[K, V any] struct {
	pair Pair[K, V]
	live bool
}

// arena owns every record of a bimap. Both indexes refer to records only by
// handle, which is the position of the record's slot. Released slots are reused.
type arena[K, V any] struct {
	slots []slot[K, V]
	free  []index.Handle
	live  int
}

func newArena[K, V any](capacity int) *arena[K, V] {
	return &arena[K, V]{slots: make([]slot[K, V], 0, capacity)}
}

func (a *arena[K, V]) alloc(key K, value V) index.Handle {
	s := slot[K, V]{pair: Pair[K, V]{key: key, value: value}, live: true}
	a.live++
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = s
		return h
	}
	a.slots = append(a.slots, s)
	return index.Handle(len(a.slots) - 1)
}

// release destroys the record behind h and returns its last content.
// Releasing a record twice is a broken invariant and panics.
func (a *arena[K, V]) release(h index.Handle) Pair[K, V] {
	if !a.valid(h) {
		panic(fmt.Sprintf("bimap: release of dead record %d", h))
	}
	p := a.slots[h].pair
	a.slots[h] = slot[K, V]{}
	a.free = append(a.free, h)
	a.live--
	return p
}

func (a *arena[K, V]) get(h index.Handle) Pair[K, V] {
	return a.slots[h].pair
}

func (a *arena[K, V]) valid(h index.Handle) bool {
	return h >= 0 && int(h) < len(a.slots) && a.slots[h].live
}

func (a *arena[K, V]) len() int {
	return a.live
}

func (a *arena[K, V]) reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.live = 0
}

func (a *arena[K, V]) clone() *arena[K, V] {
	return &arena[K, V]{
		slots: slices.Clone(a.slots),
		free:  slices.Clone(a.free),
		live:  a.live,
	}
}
