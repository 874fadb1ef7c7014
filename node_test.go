package hitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightEstimate(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
		{1023, 10},
		{1024, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, heightEstimate(tt.count), "count %d", tt.count)
	}
}

// buildSubtree wires nodes together directly, bypassing insert, so
// rotations can be tested on known shapes.
func buildSubtree(values ...int) subtree[int] {
	var s subtree[int]
	cmp := func(a, b int) int { return a - b }
	for _, v := range values {
		s.insert(&node[int]{value: v}, cmp)
	}
	return s
}

func TestRotateLeft(t *testing.T) {
	//     2              4
	//    / \            / \
	//   1   4    →     2   5
	//      / \        / \
	//     3   5      1   3
	n2 := &node[int]{value: 2}
	n2.left = attach(&node[int]{value: 1})
	n4 := &node[int]{value: 4}
	n4.left = attach(&node[int]{value: 3})
	n4.right = attach(&node[int]{value: 5})
	n2.right = attach(n4)
	s := attach(n2)

	s.rotateLeft()

	require.Equal(t, 4, s.node.value)
	assert.Equal(t, 5, s.count)
	assert.Equal(t, 2, s.node.left.node.value)
	assert.Equal(t, 3, s.node.left.count)
	assert.Equal(t, 3, s.node.left.node.right.node.value)
	assert.Equal(t, 5, s.node.right.node.value)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, inorder(&s, nil))
}

func TestRotateRight(t *testing.T) {
	n4 := &node[int]{value: 4}
	n4.right = attach(&node[int]{value: 5})
	n2 := &node[int]{value: 2}
	n2.left = attach(&node[int]{value: 1})
	n2.right = attach(&node[int]{value: 3})
	n4.left = attach(n2)
	s := attach(n4)

	s.rotateRight()

	require.Equal(t, 2, s.node.value)
	assert.Equal(t, 5, s.count)
	assert.Equal(t, 4, s.node.right.node.value)
	assert.Equal(t, 3, s.node.right.count)
	assert.Equal(t, 3, s.node.right.node.left.node.value)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, inorder(&s, nil))
}

func TestRotationPreservesTotalCount(t *testing.T) {
	s := buildSubtree(4, 2, 6, 1, 3, 5, 7)
	before := s.count
	s.rotateLeft()
	assert.Equal(t, before, s.count)
	s.rotateRight()
	assert.Equal(t, before, s.count)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inorder(&s, nil))
}

// Inserting an ascending run whose third value lands between the first two
// creates the inner-heavy shape a single rotation cannot repair; the
// corrective step must resolve it with a child pre-rotation.
func TestInsertInnerHeavy(t *testing.T) {
	s := buildSubtree(30, 10, 20)
	require.Equal(t, 3, s.count)
	assert.Equal(t, 20, s.node.value)
	b := s.balance()
	assert.True(t, -1 <= b && b <= 1, "balance factor %d", b)
}

func TestTakeLeftmostPromotesRightChild(t *testing.T) {
	s := buildSubtree(2, 1, 3)
	n := s.takeLeftmost()
	require.NotNil(t, n)
	assert.Equal(t, 1, n.value)
	assert.Nil(t, n.left.node, "detached node must not keep children")
	assert.Nil(t, n.right.node)
	assert.Equal(t, []int{2, 3}, inorder(&s, nil))

	var empty subtree[int]
	assert.Nil(t, empty.takeLeftmost())
}

func TestTakeRightmost(t *testing.T) {
	s := buildSubtree(2, 1, 3)
	n := s.takeRightmost()
	require.NotNil(t, n)
	assert.Equal(t, 3, n.value)
	assert.Equal(t, []int{1, 2}, inorder(&s, nil))
}

func TestDetachRootReplacementSide(t *testing.T) {
	t.Run("left_larger_uses_predecessor", func(t *testing.T) {
		s := buildSubtree(50, 25, 75, 10, 30)
		probe := func(v int) int { return 50 - v }
		n := s.takeByKey(probe)
		require.NotNil(t, n)
		assert.Equal(t, 50, n.value)
		// Predecessor 30 must have been promoted from the larger left side.
		assert.Equal(t, 30, s.node.value)
		assert.Equal(t, []int{10, 25, 30, 75}, inorder(&s, nil))
	})
	t.Run("right_larger_uses_successor", func(t *testing.T) {
		s := buildSubtree(50, 25, 75, 60, 90)
		probe := func(v int) int { return 50 - v }
		n := s.takeByKey(probe)
		require.NotNil(t, n)
		assert.Equal(t, 50, n.value)
		assert.Equal(t, 60, s.node.value)
		assert.Equal(t, []int{25, 60, 75, 90}, inorder(&s, nil))
	})
}

func TestConsumeNext(t *testing.T) {
	s := buildSubtree(4, 2, 6, 1, 3, 5, 7)
	var got []int
	for n := s.consumeNext(); n != nil; n = s.consumeNext() {
		got = append(got, n.value)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
	assert.Nil(t, s.node)
}
