// Package index provides the single-key containers a bimap keeps its forward and
// backward views in. Every container maps a key to a Handle into the bimap's
// record storage and never owns the records itself.
//
// Three policies are available:
//
//   - Hash: Go map, average constant time, unspecified order, forward only.
//   - Tree: B-tree from github.com/google/btree, logarithmic time, ascending order,
//     both directions.
//   - Linked: insertion ordered map from github.com/wk8/go-ordered-map/v2, average
//     constant time, creation order, both directions.
package index

import "iter"

// Handle identifies a record in the storage of the owning bimap.
type Handle int

// Index is the capability every container policy offers.
type Index[T any] interface {
	// Get returns the handle stored for key.
	Get(key T) (Handle, bool)
	// Put stores h for key, replacing any previous handle.
	Put(key T, h Handle)
	// Delete removes key and returns the handle that was stored for it.
	Delete(key T) (Handle, bool)
	// Admits reports whether key can be found again after Put. A Go map cannot
	// find a key that is not equal to itself, such as a float NaN.
	Admits(key T) bool
	Len() int
	Clear()
	// All walks the container in its native order.
	All() iter.Seq2[T, Handle]
}

// Reversible is implemented by policies that can be walked back to front.
type Reversible[T any] interface {
	Index[T]
	// Backward walks the container in reverse native order.
	Backward() iter.Seq2[T, Handle]
	First() (Handle, bool)
	Last() (Handle, bool)
	// After returns the handle of the entry following key in native order.
	// It reports false if key is absent or the last entry.
	After(key T) (Handle, bool)
	// Before returns the handle of the entry preceding key in native order.
	Before(key T) (Handle, bool)
}
