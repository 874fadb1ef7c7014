package hitree

// node owns one value and its two child subtrees. Every value in left
// compares strictly less than value, every value in right strictly greater.
type node[T any] struct {
	value T
	left  subtree[T]
	right subtree[T]
}

// subtree is the unit the balancing algorithm operates on: either empty
// (node == nil, count == 0) or the exclusive owner of one node plus a
// cached count of all nodes transitively owned, including the node itself.
// The count is maintained eagerly on every mutation; it is only ever
// re-derived from the direct children, never by traversal.
type subtree[T any] struct {
	count int
	node  *node[T]
}

// attach wraps n in a subtree, deriving the count from n's children.
func attach[T any](n *node[T]) subtree[T] {
	return subtree[T]{count: 1 + n.left.count + n.right.count, node: n}
}

// balance returns the balance factor of the owned node: the estimated
// height of the right subtree minus that of the left. Only meaningful on a
// non-empty subtree.
func (s *subtree[T]) balance() int {
	return heightEstimate(s.node.right.count) - heightEstimate(s.node.left.count)
}

// rotateLeft restructures the subtree so the right child becomes the root:
//
//	    [old]                  [new]
//	   /     \                /     \
//	  a      [new]    →    [old]     c
//	        /     \       /     \
//	       b       c     a       b
//
// Only the two affected counts are recomputed, from direct children; the
// subtree's own total is unchanged.
func (s *subtree[T]) rotateLeft() {
	oldRoot := s.node
	newRoot := oldRoot.right.node
	oldRoot.right = newRoot.left
	newRoot.left = attach(oldRoot)
	s.node = newRoot
}

// rotateRight is the mirror of rotateLeft: the left child becomes the root.
func (s *subtree[T]) rotateRight() {
	oldRoot := s.node
	newRoot := oldRoot.left.node
	oldRoot.left = newRoot.right
	newRoot.right = attach(oldRoot)
	s.node = newRoot
}

// fixBalance applies one corrective rotation step if the balance factor
// has left [-1, 1]. When the heavy child is itself heavy on its inner
// side, a single rotation would only move the excess to the other side, so
// the child is rotated first (the classic double rotation). Only meaningful
// on a non-empty subtree.
func (s *subtree[T]) fixBalance() {
	switch b := s.balance(); {
	case b > 1:
		r := &s.node.right
		if heightEstimate(r.node.left.count) > heightEstimate(r.node.right.count) {
			r.rotateRight()
		}
		s.rotateLeft()
	case b < -1:
		l := &s.node.left
		if heightEstimate(l.node.right.count) > heightEstimate(l.node.left.count) {
			l.rotateLeft()
		}
		s.rotateRight()
	}
}

// rebalance repairs this subtree after a child mutation: the count is
// re-derived from the direct children and any balance excursion is
// corrected. Safe on an empty subtree.
func (s *subtree[T]) rebalance() {
	n := s.node
	if n == nil {
		s.count = 0
		return
	}
	s.count = 1 + n.left.count + n.right.count
	s.fixBalance()
}

// insert descends by comparison and installs n at the empty subtree it
// reaches, reporting true. If an equal value is already present it reports
// false and the subtree is untouched; the existing value is not replaced.
// Counts are incremented and at most one corrective step fires per level
// on the way back up (a balanced tree can only go out of balance by one
// level per insertion).
func (s *subtree[T]) insert(n *node[T], cmp func(a, b T) int) bool {
	if s.node == nil {
		s.node = n
		s.count = 1
		return true
	}
	switch c := cmp(n.value, s.node.value); {
	case c == 0:
		return false
	case c < 0:
		if !s.node.left.insert(n, cmp) {
			return false
		}
	default:
		if !s.node.right.insert(n, cmp) {
			return false
		}
	}
	s.count++
	s.fixBalance()
	return true
}

// takeLeftmost detaches and returns the smallest node of the subtree, or
// nil if the subtree is empty. The detached node's remaining right child
// takes its place; every ancestor is repaired on the way back up.
func (s *subtree[T]) takeLeftmost() *node[T] {
	if s.node == nil {
		return nil
	}
	if s.node.left.node == nil {
		return s.detachShallow()
	}
	n := s.node.left.takeLeftmost()
	s.rebalance()
	return n
}

// takeRightmost is the mirror of takeLeftmost.
func (s *subtree[T]) takeRightmost() *node[T] {
	if s.node == nil {
		return nil
	}
	if s.node.right.node == nil {
		return s.detachShallow()
	}
	n := s.node.right.takeRightmost()
	s.rebalance()
	return n
}

// detachShallow removes the owned node when at most one child is present,
// promoting the remaining child (or leaving the subtree empty). The caller
// guarantees the node exists and is missing at least one child.
func (s *subtree[T]) detachShallow() *node[T] {
	n := s.node
	if n.left.node != nil {
		*s = n.left
	} else {
		*s = n.right
	}
	n.left = subtree[T]{}
	n.right = subtree[T]{}
	return n
}

// takeByKey detaches and returns the node whose value matches the probe,
// or nil if no value matches. probe compares the sought key against a
// candidate value: negative to descend left, zero on a match, positive to
// descend right. Ancestors of the removal point are repaired on the way
// back up.
func (s *subtree[T]) takeByKey(probe func(T) int) *node[T] {
	if s.node == nil {
		return nil
	}
	var n *node[T]
	switch c := probe(s.node.value); {
	case c < 0:
		n = s.node.left.takeByKey(probe)
	case c > 0:
		n = s.node.right.takeByKey(probe)
	default:
		n = s.detachRoot()
	}
	if n != nil {
		s.rebalance()
	}
	return n
}

// takeByIndex detaches and returns the node holding the i-th smallest
// value, or nil if i is out of range. Descent is by cumulative left count:
// equal means this node, less means left, greater means right with i
// reduced by left.count+1.
func (s *subtree[T]) takeByIndex(i int) *node[T] {
	if s.node == nil || i < 0 || i >= s.count {
		return nil
	}
	var n *node[T]
	switch left := s.node.left.count; {
	case i < left:
		n = s.node.left.takeByIndex(i)
	case i > left:
		n = s.node.right.takeByIndex(i - left - 1)
	default:
		n = s.detachRoot()
	}
	if n != nil {
		s.rebalance()
	}
	return n
}

// detachRoot removes the owned node regardless of its child pattern. With
// two children the replacement is taken from the larger child subtree (the
// predecessor if the left side is larger, else the successor), so the
// removal tends to shrink the heavier side, and both remaining subtrees
// are spliced under the replacement.
func (s *subtree[T]) detachRoot() *node[T] {
	n := s.node
	if n.left.node == nil || n.right.node == nil {
		return s.detachShallow()
	}
	var repl *node[T]
	if n.left.count >= n.right.count {
		repl = n.left.takeRightmost()
	} else {
		repl = n.right.takeLeftmost()
	}
	repl.left = n.left
	repl.right = n.right
	*s = attach(repl)
	n.left = subtree[T]{}
	n.right = subtree[T]{}
	return n
}

// consumeNext pops the leftmost node without maintaining counts or
// balance. It exists solely for draining: the structure it leaves behind
// is not a valid tree for any other operation and must only be consumed
// further or discarded.
func (s *subtree[T]) consumeNext() *node[T] {
	cur := s
	for cur.node != nil && cur.node.left.node != nil {
		cur = &cur.node.left
	}
	n := cur.node
	if n == nil {
		return nil
	}
	*cur = n.right
	return n
}
