package bimap

import "fmt"

// Pair is the association between one key and one value held by a bimap.
// Pairs are handed out by value, so changing a returned Pair is impossible and
// the only way to change an association is to Set or Delete it.
type Pair[K, V any] struct {
	key   K
	value V
}

func (p Pair[K, V]) Key() K {
	return p.key
}

func (p Pair[K, V]) Value() V {
	return p.value
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v => %v", p.key, p.value)
}
