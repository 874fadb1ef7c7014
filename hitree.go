// Package hitree provides an indexable ordered container: a self-balancing
// binary search tree whose subtrees carry node counts, so elements can be
// looked up, removed, or iterated both by value and by rank (position in
// sorted order) in O(log n).
//
// The container is single-threaded by contract. It holds no locks and
// assumes exclusive access per call; wrap it externally if it must be
// shared between goroutines.
package hitree

import "golang.org/x/exp/constraints"

// Set is an ordered set of unique values with rank access. The zero Set is
// not usable; construct one with New or NewFunc.
type Set[T any] struct {
	root subtree[T]
	cmp  func(a, b T) int
}

// New returns an empty Set ordered by the natural ordering of T.
// It does not allocate.
func New[T constraints.Ordered]() *Set[T] {
	return NewFunc(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	})
}

// NewFunc returns an empty Set ordered by cmp, which must define a strict
// total order over T: negative when a sorts before b, zero when equal,
// positive when a sorts after b.
func NewFunc[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{cmp: cmp}
}

// FromSlice returns a Set holding the distinct values of vs in their
// natural order. Duplicates are discarded; the resulting order is the
// sorted order, not the slice order.
func FromSlice[T constraints.Ordered](vs []T) *Set[T] {
	s := New[T]()
	s.InsertAll(vs...)
	return s
}

// FromSliceFunc is FromSlice with an explicit comparator.
func FromSliceFunc[T any](vs []T, cmp func(a, b T) int) *Set[T] {
	s := NewFunc(cmp)
	s.InsertAll(vs...)
	return s
}

// Len returns the number of values in the set. O(1).
func (s *Set[T]) Len() int {
	return s.root.count
}

// Insert adds v to the set and reports whether it was absent. If an equal
// value is already present the set is untouched: the stored value is not
// replaced and Insert returns false.
func (s *Set[T]) Insert(v T) bool {
	return s.root.insert(&node[T]{value: v}, s.cmp)
}

// InsertAll inserts each value in turn and returns how many were newly
// added.
func (s *Set[T]) InsertAll(vs ...T) int {
	added := 0
	for _, v := range vs {
		if s.Insert(v) {
			added++
		}
	}
	return added
}

// GetByIndex returns the value at rank i (0 is the smallest), or the zero
// value and false if i is out of range.
func (s *Set[T]) GetByIndex(i int) (T, bool) {
	if p := s.root.lookupByIndex(i); p != nil {
		return p.value, true
	}
	var zero T
	return zero, false
}

// GetByIndexRef returns a pointer to the value at rank i, or nil if i is
// out of range. The pointer is only valid until the next mutation of the
// set. Mutating the value through it in a way that changes its relative
// order corrupts the tree; this is a caller obligation, not checked at
// runtime.
func (s *Set[T]) GetByIndexRef(i int) *T {
	if p := s.root.lookupByIndex(i); p != nil {
		return &p.value
	}
	return nil
}

// Get returns the stored value equal to v, or the zero value and false if
// none is. The stored value may be useful when T carries identity beyond
// the compared fields.
func (s *Set[T]) Get(v T) (T, bool) {
	return s.GetFunc(func(w T) int { return s.cmp(v, w) })
}

// GetRef returns a pointer to the stored value equal to v, or nil. The
// same ordering obligation as GetByIndexRef applies.
func (s *Set[T]) GetRef(v T) *T {
	return s.GetRefFunc(func(w T) int { return s.cmp(v, w) })
}

// GetFunc looks up a value through a probe function, allowing a distinct
// key type as long as it orders identically to T. probe compares the
// sought key against a candidate value: negative when the key sorts before
// it, zero on a match, positive when after.
func (s *Set[T]) GetFunc(probe func(T) int) (T, bool) {
	if p := s.root.lookupByKey(probe); p != nil {
		return p.value, true
	}
	var zero T
	return zero, false
}

// GetRefFunc is GetFunc returning a pointer into the set, or nil.
func (s *Set[T]) GetRefFunc(probe func(T) int) *T {
	if p := s.root.lookupByKey(probe); p != nil {
		return &p.value
	}
	return nil
}

// IndexOf returns the rank of the stored value equal to v, or false if
// none is.
func (s *Set[T]) IndexOf(v T) (int, bool) {
	return s.IndexOfFunc(func(w T) int { return s.cmp(v, w) })
}

// IndexOfFunc is IndexOf through a probe function (see GetFunc).
func (s *Set[T]) IndexOfFunc(probe func(T) int) (int, bool) {
	rank := 0
	n := s.root.node
	for n != nil {
		switch c := probe(n.value); {
		case c < 0:
			n = n.left.node
		case c > 0:
			rank += n.left.count + 1
			n = n.right.node
		default:
			return rank + n.left.count, true
		}
	}
	return 0, false
}

// TakeFirst removes and returns the smallest value, or the zero value and
// false if the set is empty.
func (s *Set[T]) TakeFirst() (T, bool) {
	return taken(s.root.takeLeftmost())
}

// TakeLast removes and returns the largest value, or the zero value and
// false if the set is empty.
func (s *Set[T]) TakeLast() (T, bool) {
	return taken(s.root.takeRightmost())
}

// Take removes and returns the stored value equal to v. If no value is
// equal the set is untouched and Take returns false.
func (s *Set[T]) Take(v T) (T, bool) {
	return s.TakeFunc(func(w T) int { return s.cmp(v, w) })
}

// TakeFunc is Take through a probe function (see GetFunc).
func (s *Set[T]) TakeFunc(probe func(T) int) (T, bool) {
	return taken(s.root.takeByKey(probe))
}

// TakeByIndex removes and returns the value at rank i. If i is out of
// range the set is untouched and TakeByIndex returns false.
func (s *Set[T]) TakeByIndex(i int) (T, bool) {
	return taken(s.root.takeByIndex(i))
}

func taken[T any](n *node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// lookupByIndex descends by cumulative left count to the node at rank i,
// or nil if i is out of range.
func (s *subtree[T]) lookupByIndex(i int) *node[T] {
	if i < 0 || i >= s.count {
		return nil
	}
	n := s.node
	for {
		switch left := n.left.count; {
		case i < left:
			n = n.left.node
		case i > left:
			i -= left + 1
			n = n.right.node
		default:
			return n
		}
	}
}

// lookupByKey descends by comparison to the node matching the probe, or
// nil if no value matches.
func (s *subtree[T]) lookupByKey(probe func(T) int) *node[T] {
	n := s.node
	for n != nil {
		switch c := probe(n.value); {
		case c < 0:
			n = n.left.node
		case c > 0:
			n = n.right.node
		default:
			return n
		}
	}
	return nil
}
