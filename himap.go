package hitree

import "golang.org/x/exp/constraints"

// Map is the planned key→value companion of Set: the same count-augmented
// tree with a value slot beside each key, giving rank access to entries.
// Only the skeleton exists; the engine operations are not wired to it yet.
// TODO: generalize the subtree engine over a stored entry type so Map can
// reuse insert/take/rebalance instead of duplicating them.
type Map[K any, V any] struct {
	root mapSubtree[K, V]
	cmp  func(a, b K) int
}

type mapNode[K any, V any] struct {
	key   K
	value V
	left  mapSubtree[K, V]
	right mapSubtree[K, V]
}

type mapSubtree[K any, V any] struct {
	count int
	node  *mapNode[K, V]
}

// NewMap returns an empty Map ordered by the natural ordering of K.
func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	})
}

// NewMapFunc returns an empty Map ordered by cmp.
func NewMapFunc[K any, V any](cmp func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{cmp: cmp}
}

// Len returns the number of entries in the map. O(1).
func (m *Map[K, V]) Len() int {
	return m.root.count
}
