package Trees

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/g-m-twostay/go-bst/Sorts"
	"golang.org/x/exp/constraints"
)

var (
	// ErrNotFound is returned when a value isn't in the tree.
	ErrNotFound = errors.New("value not found")
	// ErrDuplicate is returned when inserting a value that's already in the tree.
	ErrDuplicate = errors.New("value already present")
)

// BST is a binary search tree with no repeated values. It never rebalances:
// BuildBST gives a tree of minimal height, after which the height D depends
// on the order of insertions and deletions, and is O(n) in the worst case.
// The zero value is an empty tree ready to use.
// A BST isn't safe for concurrent use when any caller modifies it.
type BST[T constraints.Ordered] struct {
	root *Node[T]
	size uint
}

// NewBST returns an empty BST.
func NewBST[T constraints.Ordered]() *BST[T] {
	return new(BST[T])
}

// BuildBST builds a BST of minimal height from vals in any order. vals may contain
// duplicates, they're removed by sd before building. If sd is nil, Sorts.Merge is used.
// vals isn't modified.
// Time: O(n) plus the cost of sd.
func BuildBST[T constraints.Ordered](vals []T, sd Sorts.SortDedup[T]) *BST[T] {
	if len(vals) == 0 {
		return NewBST[T]()
	}
	if sd == nil {
		sd = Sorts.Merge[T]
	}
	return BuildBSTSorted(sd(vals))
}

// BuildBSTSorted builds a BST from sli recursively. The given slice must be sorted in
// ascending order and mustn't contain duplicate elements, which isn't checked; otherwise
// the tree will be corrupt.
// The root is sli[len(sli)/2]; every other node is the lower middle of its index range.
// Time: O(n)
func BuildBSTSorted[T constraints.Ordered](sli []T) *BST[T] {
	if len(sli) == 0 {
		return NewBST[T]()
	}
	var build func(lo, hi int) *Node[T]
	build = func(lo, hi int) *Node[T] {
		if lo > hi {
			return nil
		}
		mid := lo + (hi-lo)>>1
		return &Node[T]{sli[mid], build(lo, mid-1), build(mid+1, hi)}
	}
	mid := len(sli) >> 1
	root := &Node[T]{sli[mid], build(0, mid-1), build(mid+1, len(sli)-1)}
	return &BST[T]{root, uint(len(sli))}
}

// Root of the tree, nil if the tree is empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.size
}

// Clear removes everything from the tree.
func (u *BST[T]) Clear() {
	u.root, u.size = nil, 0
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BST[T]) Height() int {
	return Height(u.root)
}

// slot returns the child slot where v is or would be: either the slot holding
// the node with value v, or the nil slot where a node with v would be attached.
// Time: O(D); Space: O(1)
func (u *BST[T]) slot(v T) **Node[T] {
	p := &u.root
	for cur := *p; cur != nil; cur = *p {
		if c := cmp.Compare(v, cur.v); c < 0 {
			p = &cur.l
		} else if c > 0 {
			p = &cur.r
		} else {
			break
		}
	}
	return p
}

// Insert [Tree.Insert]
// On an empty tree v becomes the root. Inserting a value that's already present leaves
// the tree unchanged and returns an error wrapping ErrDuplicate.
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) error {
	p := u.slot(v)
	if *p != nil {
		return fmt.Errorf("insert %v: %w", v, ErrDuplicate)
	}
	*p = &Node[T]{v: v}
	u.size++
	return nil
}

// Delete [Tree.Delete]
// The node to delete is located together with the slot pointing at it, and that
// slot is what gets rewritten:
//   - a leaf is cut off, the slot becomes nil;
//   - a node with one child is replaced by that child;
//   - a node with two children takes the value of its in-order successor, the
//     leftmost node of its right subtree, and the successor is replaced by its own
//     right child. The deleted node object itself stays in the tree.
//
// Returns an error wrapping ErrNotFound if v isn't in the tree, in which case the tree is untouched.
// Time: O(D); Space: O(1)
func (u *BST[T]) Delete(v T) error {
	p := u.slot(v)
	cur := *p
	if cur == nil {
		return fmt.Errorf("delete %v: %w", v, ErrNotFound)
	}
	if cur.l == nil {
		*p = cur.r
	} else if cur.r == nil {
		*p = cur.l
	} else {
		sp := &cur.r //the successor's slot, either cur.r or the l of the successor's parent.
		for (*sp).l != nil {
			sp = &(*sp).l
		}
		cur.v = (*sp).v
		*sp = (*sp).r
	}
	u.size--
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[T]) Find(v T) *Node[T] {
	return *u.slot(v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Depth [Tree.Depth]
// n is located by its value, not its identity. Returns an error wrapping ErrNotFound if
// n is nil or the descent for n.Value() doesn't reach a node holding it.
// Time: O(D); Space: O(1)
func (u *BST[T]) Depth(n *Node[T]) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("depth of nil node: %w", ErrNotFound)
	}
	d := 0
	for cur := u.root; cur != nil; d++ {
		if c := cmp.Compare(n.v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return d, nil
		}
	}
	return 0, fmt.Errorf("depth of %v: %w", n.v, ErrNotFound)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BST[T]) Corrupt() bool {
	var prev *T
	var n uint
	corrupt := false
	u.InOrder(func(cur *Node[T]) {
		if prev != nil && cmp.Compare(*prev, cur.v) >= 0 {
			corrupt = true
		}
		prev = &cur.v
		n++
	})
	return corrupt || n != u.size
}
