package Trees

import "golang.org/x/exp/constraints"

// Tree represents a binary search tree of distinct values implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x should not be used.
// Receivers that return an error leave the tree unchanged when the error is non nil.
// Methods implemented recursively are noted, otherwise functions are implemented iteratively.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree. Fails if v is already in the Tree.
	Insert(v T) error
	//Delete v from the Tree. Fails if v isn't in the Tree.
	Delete(v T) error
	//Find the node holding v, nil if there's none.
	Find(v T) *Node[T]
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree, -1 if empty.
	Height() int
	//Depth of the node holding the value of n, the number of edges from the root to it.
	Depth(n *Node[T]) (int, error)
	//LevelOrder, InOrder, PreOrder and PostOrder traverse the tree in their respective
	//orders. If f is non nil, f is called on every node and nil is returned; otherwise
	//the values are returned in the visiting order. f must not modify the tree.
	LevelOrder(f func(*Node[T])) []T
	InOrder(f func(*Node[T])) []T
	PreOrder(f func(*Node[T])) []T
	PostOrder(f func(*Node[T])) []T
	//Corrupt returns whether the tree has corrupt structures, when the values
	//aren't strictly ascending in in-order or the size is wrong.
	Corrupt() bool
}

var _ Tree[int] = (*BST[int])(nil)
