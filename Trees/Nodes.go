package Trees

import "golang.org/x/exp/constraints"

// Node is a node in the BST. It owns its two children exclusively; a nil
// *Node is the empty subtree.
// The zero value is a leaf holding the zero value of T.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if there's none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if there's none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Height of the subtree rooting at n: -1 if n is nil, otherwise the number of edges
// on the longest path from n down to a leaf. Recursive.
// Time: O(size of subtree)
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(Height(n.l), Height(n.r))
}

