// Package bimap implements bidirectional maps: containers holding a one-to-one
// relation between keys and values that can be queried from either side.
//
// Each association is stored once as a Pair and indexed twice, by key and by
// value. The two indexes always describe the same set of pairs, so a key is
// never associated with more than one value and a value never with more than
// one key.
//
// # Variants
//
//   - Ordered keeps keys and values sorted (B-trees) and iterates in both directions.
//   - Unordered uses hash maps and iterates forward only, in no particular order.
//   - Linked uses insertion ordered hash maps and iterates in both directions in
//     the order pairs were created.
//
// Key and value types must differ; the constructors return ErrSameType otherwise.
//
// # Updating
//
// Set always establishes the new association and silently removes the pairs
// that held the key or the value before; these may be one pair, two different
// pairs or none. Insert never removes anything: if the key or the value is
// taken, it returns the pair that holds it (the key side is checked first) and
// false. DeleteKey and DeleteValue remove a pair from either side.
//
// Unordered and Linked cannot index a key or value that is not equal to itself,
// such as a float NaN. Set and Insert leave those bimaps unchanged for such a
// pair. Ordered compares with cmp.Compare, which treats NaN as equal to itself.
//
// # Iterating
//
// All, Keys, Values, ByKey and ByValue return range-over-func sequences that
// start over on every call. KeyIterator and ValueIterator return explicit
// cursors that can be compared with Iterator.Equal. Ordered and Linked add
// the reverse flavors and Cursor, which steps back with Prev as well as forward.
// Any update of a bimap invalidates running iterations.
//
// A bimap is not safe for concurrent use.
package bimap
