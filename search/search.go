package search

import "cmp"

// Linear returns the index of the first element equal to target, scanning
// front to back. O(n); works on unsorted input.
func Linear[T comparable](xs []T, target T) (int, bool) {
	for i, v := range xs {
		if v == target {
			return i, true
		}
	}

	return 0, false
}

// Binary returns an index of target in xs, which must be sorted in
// ascending order. O(log n). When duplicates exist, any matching index may
// be returned.
func Binary[T cmp.Ordered](xs []T, target T) (int, bool) {
	lo, hi := 0, len(xs)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case xs[mid] == target:
			return mid, true
		case xs[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return 0, false
}
