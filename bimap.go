package bimap

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"ocm.software/open-component-model/bindings/go/bimap/internal/index"
)

// ErrSameType is returned when a bimap is created with identical key and value types.
var ErrSameType = errors.New("key and value types must differ")

func checkTypes[K, V any]() error {
	kt, vt := reflect.TypeFor[K](), reflect.TypeFor[V]()
	if kt == vt {
		return fmt.Errorf("cannot create bimap[%s, %s]: %w", kt, vt, ErrSameType)
	}
	return nil
}

// core keeps one record per association in an arena and indexes it twice:
// by key in forward and by value in backward. Every method leaves both
// indexes and the arena of equal size, with each record reachable from exactly
// one key and exactly one value.
type core[K, V any, FI index.Index[K], BI index.Index[V]] struct {
	forward  FI
	backward BI
	records  *arena[K, V]
	logger   *slog.Logger
}

func newCore[K, V any, FI index.Index[K], BI index.Index[V]](forward FI, backward BI, o *options) core[K, V, FI, BI] {
	return core[K, V, FI, BI]{
		forward:  forward,
		backward: backward,
		records:  newArena[K, V](o.capacity),
		logger:   o.logger,
	}
}

// Set associates key with value, removing whatever pair held key and whatever
// pair held value before. Up to two pairs are removed, and exactly one is created.
//
// Hash based variants cannot store a key or value that is not equal to itself,
// such as a float NaN. Set leaves the bimap unchanged for those and returns the
// zero Pair.
func (m *core[K, V, FI, BI]) Set(key K, value V) Pair[K, V] {
	if !m.admits(key, value) {
		return Pair[K, V]{}
	}
	kh, keyTaken := m.forward.Get(key)
	vh, valueTaken := m.backward.Get(value)
	if keyTaken {
		m.logEvicted(m.evict(kh))
	}
	if valueTaken && (!keyTaken || vh != kh) {
		m.logEvicted(m.evict(vh))
	}
	return m.put(key, value)
}

// Insert associates key with value unless either of them is taken already.
// On conflict nothing changes and the existing pair is returned with false;
// the pair holding key is reported before the pair holding value.
// A key or value that Set would reject yields the zero Pair and false.
func (m *core[K, V, FI, BI]) Insert(key K, value V) (Pair[K, V], bool) {
	if !m.admits(key, value) {
		return Pair[K, V]{}, false
	}
	if h, ok := m.forward.Get(key); ok {
		return m.records.get(h), false
	}
	if h, ok := m.backward.Get(value); ok {
		return m.records.get(h), false
	}
	return m.put(key, value), true
}

// DeleteKey removes the pair holding key and reports whether there was one.
func (m *core[K, V, FI, BI]) DeleteKey(key K) bool {
	return m.erase(m.forward.Get(key))
}

// DeleteValue removes the pair holding value and reports whether there was one.
func (m *core[K, V, FI, BI]) DeleteValue(value V) bool {
	return m.erase(m.backward.Get(value))
}

// Lookup returns the pair holding key.
func (m *core[K, V, FI, BI]) Lookup(key K) (Pair[K, V], bool) {
	return m.lookup(m.forward.Get(key))
}

// LookupValue returns the pair holding value.
func (m *core[K, V, FI, BI]) LookupValue(value V) (Pair[K, V], bool) {
	return m.lookup(m.backward.Get(value))
}

// Get returns the value associated with key.
func (m *core[K, V, FI, BI]) Get(key K) (V, bool) {
	p, ok := m.Lookup(key)
	return p.value, ok
}

// GetByValue returns the key associated with value.
func (m *core[K, V, FI, BI]) GetByValue(value V) (K, bool) {
	p, ok := m.LookupValue(value)
	return p.key, ok
}

func (m *core[K, V, FI, BI]) ContainsKey(key K) bool {
	_, ok := m.forward.Get(key)
	return ok
}

func (m *core[K, V, FI, BI]) ContainsValue(value V) bool {
	_, ok := m.backward.Get(value)
	return ok
}

// Len returns the number of pairs.
func (m *core[K, V, FI, BI]) Len() int {
	return m.records.len()
}

// Clear removes all pairs.
func (m *core[K, V, FI, BI]) Clear() {
	n := m.records.len()
	m.forward.Clear()
	m.backward.Clear()
	m.records.reset()
	if m.debugEnabled() {
		m.logger.Debug("cleared bimap", slog.Int("pairs", n))
	}
}

// All iterates over all key-value pairs in key order.
func (m *core[K, V, FI, BI]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, h := range m.forward.All() {
			if !yield(key, m.records.get(h).value) {
				return
			}
		}
	}
}

// Keys iterates over all keys in key order.
func (m *core[K, V, FI, BI]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.forward.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values iterates over all values in value order.
func (m *core[K, V, FI, BI]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for value := range m.backward.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// ByKey iterates over all pairs in key order.
func (m *core[K, V, FI, BI]) ByKey() iter.Seq[Pair[K, V]] {
	return m.pairs(handles(m.forward.All()))
}

// ByValue iterates over all pairs in value order.
func (m *core[K, V, FI, BI]) ByValue() iter.Seq[Pair[K, V]] {
	return m.pairs(handles(m.backward.All()))
}

// KeyIterator returns a cursor over all pairs in key order.
// It must be closed unless it was advanced until Next returned false.
func (m *core[K, V, FI, BI]) KeyIterator() *Iterator[K, V] {
	return newIterator(m.records, forwardByKey, handles(m.forward.All()))
}

// ValueIterator returns a cursor over all pairs in value order.
// It must be closed unless it was advanced until Next returned false.
func (m *core[K, V, FI, BI]) ValueIterator() *Iterator[K, V] {
	return newIterator(m.records, forwardByValue, handles(m.backward.All()))
}

func (m *core[K, V, FI, BI]) put(key K, value V) Pair[K, V] {
	h := m.records.alloc(key, value)
	m.forward.Put(key, h)
	m.backward.Put(value, h)
	return m.records.get(h)
}

// erase is shared by DeleteKey and DeleteValue, which only differ in the index
// they search.
func (m *core[K, V, FI, BI]) erase(h index.Handle, found bool) bool {
	if !found {
		return false
	}
	m.evict(h)
	return true
}

func (m *core[K, V, FI, BI]) evict(h index.Handle) Pair[K, V] {
	p := m.records.get(h)
	m.forward.Delete(p.key)
	m.backward.Delete(p.value)
	return m.records.release(h)
}

func (m *core[K, V, FI, BI]) lookup(h index.Handle, found bool) (Pair[K, V], bool) {
	if !found {
		return Pair[K, V]{}, false
	}
	return m.records.get(h), true
}

func (m *core[K, V, FI, BI]) admits(key K, value V) bool {
	if m.forward.Admits(key) && m.backward.Admits(value) {
		return true
	}
	if m.debugEnabled() {
		m.logger.Debug("rejected pair that cannot be indexed",
			slog.Any("key", key),
			slog.Any("value", value),
		)
	}
	return false
}

func (m *core[K, V, FI, BI]) logEvicted(p Pair[K, V]) {
	if !m.debugEnabled() {
		return
	}
	m.logger.Debug("evicted conflicting pair",
		slog.Any("key", p.key),
		slog.Any("value", p.value),
	)
}

// debugEnabled guards debug records whose attributes box keys and values.
func (m *core[K, V, FI, BI]) debugEnabled() bool {
	return m.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (m *core[K, V, FI, BI]) pairs(hs iter.Seq[index.Handle]) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for h := range hs {
			if !yield(m.records.get(h)) {
				return
			}
		}
	}
}

func (m *core[K, V, FI, BI]) cloneWith(forward FI, backward BI) core[K, V, FI, BI] {
	return core[K, V, FI, BI]{
		forward:  forward,
		backward: backward,
		records:  m.records.clone(),
		logger:   m.logger,
	}
}

// verify checks that both indexes and the arena describe the same set of pairs.
func (m *core[K, V, FI, BI]) verify() error {
	var errs []error
	n, nk, nv := m.records.len(), m.forward.Len(), m.backward.Len()
	if n != nk || n != nv {
		errs = append(errs, fmt.Errorf("size mismatch: %d records, %d keys, %d values", n, nk, nv))
	}

	seen := make(map[index.Handle]struct{}, nk)
	for key, h := range m.forward.All() {
		if !m.records.valid(h) {
			errs = append(errs, fmt.Errorf("key %v refers to released record %d", key, h))
			continue
		}
		if _, dup := seen[h]; dup {
			errs = append(errs, fmt.Errorf("record %d is indexed by more than one key", h))
		}
		seen[h] = struct{}{}
		p := m.records.get(h)
		if fh, ok := m.forward.Get(p.key); !ok || fh != h {
			errs = append(errs, fmt.Errorf("key %v of record %d is indexed elsewhere", p.key, h))
		}
		if bh, ok := m.backward.Get(p.value); !ok || bh != h {
			errs = append(errs, fmt.Errorf("value %v of record %d is not indexed back to it", p.value, h))
		}
	}

	clear(seen)
	for value, h := range m.backward.All() {
		if !m.records.valid(h) {
			errs = append(errs, fmt.Errorf("value %v refers to released record %d", value, h))
			continue
		}
		if _, dup := seen[h]; dup {
			errs = append(errs, fmt.Errorf("record %d is indexed by more than one value", h))
		}
		seen[h] = struct{}{}
		if fh, ok := m.forward.Get(m.records.get(h).key); !ok || fh != h {
			errs = append(errs, fmt.Errorf("value %v refers to record %d which its key does not", value, h))
		}
	}

	return errors.Join(errs...)
}

// reversible is a core whose indexes can also be walked back to front.
type reversible[K, V any, FI index.Reversible[K], BI index.Reversible[V]] struct {
	core[K, V, FI, BI]
}

// Backward iterates over all key-value pairs in reverse key order.
func (m *reversible[K, V, FI, BI]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, h := range m.forward.Backward() {
			if !yield(key, m.records.get(h).value) {
				return
			}
		}
	}
}

// ByKeyBackward iterates over all pairs in reverse key order.
func (m *reversible[K, V, FI, BI]) ByKeyBackward() iter.Seq[Pair[K, V]] {
	return m.pairs(handles(m.forward.Backward()))
}

// ByValueBackward iterates over all pairs in reverse value order.
func (m *reversible[K, V, FI, BI]) ByValueBackward() iter.Seq[Pair[K, V]] {
	return m.pairs(handles(m.backward.Backward()))
}

// ReverseKeyIterator returns a cursor over all pairs in reverse key order.
func (m *reversible[K, V, FI, BI]) ReverseKeyIterator() *Iterator[K, V] {
	return newIterator(m.records, reverseByKey, handles(m.forward.Backward()))
}

// ReverseValueIterator returns a cursor over all pairs in reverse value order.
func (m *reversible[K, V, FI, BI]) ReverseValueIterator() *Iterator[K, V] {
	return newIterator(m.records, reverseByValue, handles(m.backward.Backward()))
}

// KeyCursor returns a cursor over all pairs in key order that can also step back.
func (m *reversible[K, V, FI, BI]) KeyCursor() *Cursor[K, V] {
	return m.cursor(forwardByKey)
}

// ValueCursor returns a cursor over all pairs in value order that can also step back.
func (m *reversible[K, V, FI, BI]) ValueCursor() *Cursor[K, V] {
	return m.cursor(forwardByValue)
}

// ReverseKeyCursor returns a cursor over all pairs in reverse key order.
// Its Prev moves towards greater keys.
func (m *reversible[K, V, FI, BI]) ReverseKeyCursor() *Cursor[K, V] {
	return m.cursor(reverseByKey)
}

// ReverseValueCursor returns a cursor over all pairs in reverse value order.
func (m *reversible[K, V, FI, BI]) ReverseValueCursor() *Cursor[K, V] {
	return m.cursor(reverseByValue)
}

func (m *reversible[K, V, FI, BI]) cursor(order traversal) *Cursor[K, V] {
	reverse := order == reverseByKey || order == reverseByValue
	var nav navigator
	if order == forwardByKey || order == reverseByKey {
		nav = neighbors[K, V, K]{records: m.records, idx: m.forward, keyOf: Pair[K, V].Key, reverse: reverse}
	} else {
		nav = neighbors[K, V, V]{records: m.records, idx: m.backward, keyOf: Pair[K, V].Value, reverse: reverse}
	}
	return &Cursor[K, V]{records: m.records, order: order, nav: nav}
}

func handles[T any](seq iter.Seq2[T, index.Handle]) iter.Seq[index.Handle] {
	return func(yield func(index.Handle) bool) {
		for _, h := range seq {
			if !yield(h) {
				return
			}
		}
	}
}
