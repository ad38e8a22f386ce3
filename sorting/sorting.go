package sorting

import "cmp"

// Selection sorts xs in place by repeatedly swapping the minimum of the
// unsorted suffix into position. O(n²) comparisons, at most n-1 swaps.
func Selection[T cmp.Ordered](xs []T) {
	for i := 0; i < len(xs)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(xs); j++ {
			if xs[j] < xs[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			xs[i], xs[minIdx] = xs[minIdx], xs[i]
		}
	}
}

// Insertion sorts xs in place by growing a sorted prefix one element at a
// time. Stable; O(n) on nearly-sorted input.
func Insertion[T cmp.Ordered](xs []T) {
	for i := 1; i < len(xs); i++ {
		key := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > key {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = key
	}
}

// Shell sorts xs in place with gapped insertion passes over the sequence
// n/2, n/4, …, 1.
func Shell[T cmp.Ordered](xs []T) {
	for gap := len(xs) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(xs); i++ {
			key := xs[i]
			j := i - gap
			for j >= 0 && xs[j] > key {
				xs[j+gap] = xs[j]
				j -= gap
			}
			xs[j+gap] = key
		}
	}
}
