package Sorts

import (
	"cmp"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

// degree of the BTree used by BTree.
const degree = 32

// BTree sorts and dedups s by inserting everything into a google/btree BTreeG and ascending it.
// Time: O(n log n)
func BTree[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	t := btree.NewG[T](degree, cmp.Less[T])
	for _, v := range s {
		t.ReplaceOrInsert(v)
	}
	r := make([]T, 0, t.Len())
	t.Ascend(func(v T) bool {
		r = append(r, v)
		return true
	})
	return r
}

// llrbItem adapts an ordered value to llrb.Item.
type llrbItem[T constraints.Ordered] struct {
	v T
}

func (a llrbItem[T]) Less(b llrb.Item) bool {
	return cmp.Less(a.v, b.(llrbItem[T]).v)
}

// LLRB sorts and dedups s with a left-leaning red-black tree, draining it from the minimum.
// Time: O(n log n)
func LLRB[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	t := llrb.New()
	for _, v := range s {
		t.ReplaceOrInsert(llrbItem[T]{v})
	}
	r := make([]T, 0, t.Len())
	for t.Len() > 0 {
		r = append(r, t.DeleteMin().(llrbItem[T]).v)
	}
	return r
}

// TreeSet sorts and dedups s with the red-black tree backed treeset of gods.
// Time: O(n log n)
func TreeSet[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	set := treeset.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(T), b.(T))
	})
	for _, v := range s {
		set.Add(v)
	}
	r := make([]T, 0, set.Size())
	for _, v := range set.Values() {
		r = append(r, v.(T))
	}
	return r
}
