package Sorts

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"golang.org/x/exp/constraints"
)

// HashMap drops duplicates first using cornelk/hashmap, keeping the first occurrence of every value,
// and then merge sorts what's left. This is cheaper than Merge when s has many duplicates.
// Time: O(n log u) where u is the number of unique values.
func HashMap[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	seen := hashmap.New[T, struct{}]()
	u := make([]T, 0, len(s))
	for _, v := range s {
		if seen.Insert(v, struct{}{}) {
			u = append(u, v)
		}
	}
	return Merge(u)
}

// HaxMap is like HashMap but uses alphadose/haxmap to detect duplicates.
// Time: O(n log u)
func HaxMap[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	seen := haxmap.New[T, struct{}](uintptr(len(s)))
	u := make([]T, 0, len(s))
	for _, v := range s {
		if _, loaded := seen.GetOrSet(v, struct{}{}); !loaded {
			u = append(u, v)
		}
	}
	return Merge(u)
}
