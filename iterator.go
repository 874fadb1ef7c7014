package hitree

// Iterator walks a half-open index window [start, end) of a Set in sorted
// order, resolving each element by rank at the moment it is yielded. Both
// ends can be consumed independently; the iterator is exhausted exactly
// when the two meet. It holds no references into the tree between steps,
// but the window is positional: mutating the set while iterating shifts
// which elements the remaining window covers.
type Iterator[T any] struct {
	set   *Set[T]
	start int
	end   int
}

// Iter returns an iterator over the whole set. Each call starts a fresh
// iteration.
func (s *Set[T]) Iter() *Iterator[T] {
	return s.Range(0, s.Len())
}

// Range returns an iterator over the index window [start, end). Bounds are
// clamped to the set: a window that lies outside it yields nothing.
func (s *Set[T]) Range(start, end int) *Iterator[T] {
	start, end = clampWindow(start, end, s.Len())
	return &Iterator[T]{set: s, start: start, end: end}
}

// Len returns the number of elements not yet yielded.
func (it *Iterator[T]) Len() int {
	return it.end - it.start
}

// Next yields the smallest remaining element, advancing the front of the
// window. It returns false once the window is empty.
func (it *Iterator[T]) Next() (T, bool) {
	if it.start >= it.end {
		var zero T
		return zero, false
	}
	v, ok := it.set.GetByIndex(it.start)
	it.start++
	return v, ok
}

// NextBack yields the largest remaining element, retreating the back of
// the window. Next and NextBack share one window, so mixing them never
// yields an element twice.
func (it *Iterator[T]) NextBack() (T, bool) {
	if it.start >= it.end {
		var zero T
		return zero, false
	}
	it.end--
	return it.set.GetByIndex(it.end)
}

// MutIterator is Iterator yielding pointers into the set. Each step
// re-descends from the root and returns one pointer; no pointer is
// retained across steps. The ordering obligation of GetByIndexRef applies
// to every pointer yielded.
type MutIterator[T any] struct {
	set   *Set[T]
	start int
	end   int
}

// IterMut returns a mutable iterator over the whole set.
func (s *Set[T]) IterMut() *MutIterator[T] {
	return s.RangeMut(0, s.Len())
}

// RangeMut returns a mutable iterator over the index window [start, end),
// clamped like Range.
func (s *Set[T]) RangeMut(start, end int) *MutIterator[T] {
	start, end = clampWindow(start, end, s.Len())
	return &MutIterator[T]{set: s, start: start, end: end}
}

// Len returns the number of elements not yet yielded.
func (it *MutIterator[T]) Len() int {
	return it.end - it.start
}

// Next yields a pointer to the smallest remaining element, or nil once the
// window is empty.
func (it *MutIterator[T]) Next() *T {
	if it.start >= it.end {
		return nil
	}
	p := it.set.GetByIndexRef(it.start)
	it.start++
	return p
}

// NextBack yields a pointer to the largest remaining element, or nil once
// the window is empty.
func (it *MutIterator[T]) NextBack() *T {
	if it.start >= it.end {
		return nil
	}
	it.end--
	return it.set.GetByIndexRef(it.end)
}

// DrainIterator yields a set's values in ascending order while destroying
// the tree node by node. It owns what was the set's root; the extraction
// is unbalanced and maintains no counts, which is safe only because
// nothing else will ever look at the structure again.
type DrainIterator[T any] struct {
	root subtree[T]
}

// Drain empties the set and returns a single-pass, forward-only iterator
// over the values it held. The set itself is left valid and empty.
func (s *Set[T]) Drain() *DrainIterator[T] {
	it := &DrainIterator[T]{root: s.root}
	s.root = subtree[T]{}
	return it
}

// Next yields the smallest remaining value, or false when the drain is
// complete.
func (it *DrainIterator[T]) Next() (T, bool) {
	n := it.root.consumeNext()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// clampWindow confines [start, end) to [0, n), keeping start <= end.
func clampWindow(start, end, n int) (int, int) {
	if end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	return start, end
}
