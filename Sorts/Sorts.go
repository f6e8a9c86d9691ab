package Sorts

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// SortDedup returns the values of s in strictly ascending order with duplicates removed.
// The returned slice is newly allocated, s is never modified.
// Two values are duplicates when cmp.Compare reports them equal, so NaN is kept once and sorts first.
type SortDedup[T constraints.Ordered] func(s []T) []T

// ByName returns the SortDedup registered under name. The second return value is false if
// there's no such name.
func ByName[T constraints.Ordered](name string) (SortDedup[T], bool) {
	switch name {
	case "merge":
		return Merge[T], true
	case "btree":
		return BTree[T], true
	case "llrb":
		return LLRB[T], true
	case "treeset":
		return TreeSet[T], true
	case "hashmap":
		return HashMap[T], true
	case "haxmap":
		return HaxMap[T], true
	}
	return nil, false
}

// Names of all the SortDedup ByName knows about.
func Names() []string {
	return []string{"merge", "btree", "llrb", "treeset", "hashmap", "haxmap"}
}

// Dedup removes adjacent duplicates from the sorted slice s in place and returns the shortened slice.
// Time: O(n); Space: O(1)
func Dedup[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return s
	}
	w := 1
	for _, v := range s[1:] {
		if cmp.Compare(s[w-1], v) != 0 {
			s[w] = v
			w++
		}
	}
	clear(s[w:])
	return s[:w]
}
