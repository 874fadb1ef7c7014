package hitree

import "math/bits"

// heightEstimate returns an upper bound on the height of a balanced
// subtree holding count nodes: the bit length of count (0 for an empty
// subtree, floor(log2 count)+1 otherwise). Deriving balance from the
// counts already kept for indexing avoids a separate per-node height
// field; the resulting balance is approximately AVL rather than exact,
// but depth stays O(log n).
func heightEstimate(count int) int {
	return bits.Len(uint(count))
}
