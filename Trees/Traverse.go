package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// visitor returns f if it's non nil, otherwise a function collecting values into r.
func (u *BST[T]) visitor(f func(*Node[T]), r *[]T) func(*Node[T]) {
	if f != nil {
		return f
	}
	*r = make([]T, 0, u.size)
	return func(n *Node[T]) {
		*r = append(*r, n.v)
	}
}

// LevelOrder [Tree.LevelOrder]
// Nodes of the same depth are visited left to right.
// Time: O(n); Space: O(width of the tree)
func (u *BST[T]) LevelOrder(f func(*Node[T])) (r []T) {
	f = u.visitor(f, &r)
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.size>>1+1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return
}

// InOrder [Tree.InOrder]
// Values come out strictly ascending.
// Time: O(n); Space: O(D)
func (u *BST[T]) InOrder(f func(*Node[T])) (r []T) {
	f = u.visitor(f, &r)
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
	return
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrder(f func(*Node[T])) (r []T) {
	f = u.visitor(f, &r)
	if u.root == nil {
		return
	}
	for st := []*Node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
	return
}

// PostOrder [Tree.PostOrder]
// A node on top of the stack is visited once its right subtree is done, which is
// when its right child is nil or was the last node visited.
// Time: O(n); Space: O(D)
func (u *BST[T]) PostOrder(f func(*Node[T])) (r []T) {
	f = u.visitor(f, &r)
	var st []*Node[T]
	var last *Node[T]
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
		} else if top := st[len(st)-1]; top.r != nil && top.r != last {
			cur = top.r
		} else {
			f(top)
			last = top
			st = st[:len(st)-1]
		}
	}
	return
}
