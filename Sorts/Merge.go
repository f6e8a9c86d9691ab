package Sorts

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Merge sorts a copy of s with a top-down merge sort, then removes duplicates.
// Time: O(n log n); Space: O(n)
func Merge[T constraints.Ordered](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	a, buf := make([]T, len(s)), make([]T, len(s))
	copy(a, s)
	mergeSort(a, buf)
	return Dedup(a)
}

// mergeSort sorts s using buf as scratch space. len(buf)>=len(s). Stable. Recursive.
func mergeSort[T constraints.Ordered](s, buf []T) {
	if len(s) < 2 {
		return
	}
	mid := len(s) >> 1
	mergeSort(s[:mid], buf[:mid])
	mergeSort(s[mid:], buf[mid:])
	copy(buf, s)
	merge(s, buf[:mid], buf[mid:len(s)])
}

// merge the sorted l and r into dst. len(dst)==len(l)+len(r).
func merge[T constraints.Ordered](dst, l, r []T) {
	i, j, k := 0, 0, 0
	for ; i < len(l) && j < len(r); k++ {
		if cmp.Less(r[j], l[i]) {
			dst[k] = r[j]
			j++
		} else {
			dst[k] = l[i]
			i++
		}
	}
	k += copy(dst[k:], l[i:])
	copy(dst[k:], r[j:])
}
