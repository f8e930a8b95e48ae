// Package orderedset adapts a sorted-tree set to the ordered-set-by-key
// contract that the DFA builder needs: canonical, comparator-defined
// ordering over its keys (NFA-state-set signatures).
//
// The core treats ordered sets as an external collaborator (see spec's
// container-utilities non-goal); this package is the thin seam between
// that contract and a concrete third-party implementation.
package orderedset

import (
	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/emirpasic/gods/v2/utils"
)

// Set is an ordered set of comparable keys, backed by a red-black tree so
// iteration order is always comparator order rather than insertion order.
type Set[T comparable] struct {
	tree *treeset.Set[T]
}

// New creates an empty Set ordered by cmp.
func New[T comparable](cmp utils.Comparator[T]) *Set[T] {
	return &Set[T]{tree: treeset.New(cmp)}
}

// Add inserts key into the set. A no-op if key is already present.
func (s *Set[T]) Add(key T) {
	s.tree.Add(key)
}

// Contains reports whether key is already a member.
func (s *Set[T]) Contains(key T) bool {
	return s.tree.Contains(key)
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.tree.Size()
}

// Values returns the members in comparator order.
func (s *Set[T]) Values() []T {
	return s.tree.Values()
}
