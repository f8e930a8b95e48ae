// Package orderedmap adapts a sorted-tree map to the ordered-map-by-key
// contract the DFA builder needs when a key's canonical ordering must be
// preserved for deterministic iteration (its pass-1 results, keyed by
// NFA-state-set signature).
package orderedmap

import (
	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/utils"
)

// Map is an ordered key-value map, backed by a red-black tree so iteration
// via Keys/Values always visits entries in comparator order.
type Map[K comparable, V any] struct {
	tree *treemap.Map[K, V]
}

// New creates an empty Map ordered by cmp.
func New[K comparable, V any](cmp utils.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{tree: treemap.New[K, V](cmp)}
}

// Put inserts or overwrites the value for key.
func (m *Map[K, V]) Put(key K, value V) {
	m.tree.Put(key, value)
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Size()
}

// Keys returns the keys in comparator order.
func (m *Map[K, V]) Keys() []K {
	return m.tree.Keys()
}

// Values returns the values ordered by their keys.
func (m *Map[K, V]) Values() []V {
	return m.tree.Values()
}
