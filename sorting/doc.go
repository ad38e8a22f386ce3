// Package sorting provides the classic in-place comparison sorts —
// selection, insertion, shell — plus the distribution sorts bucket and
// radix for integer slices.
//
// What
//
//   - Selection, Insertion, Shell work on any ordered element type and
//     sort the slice in place.
//   - Bucket scatters integers into value-range buckets, insertion-sorts
//     each bucket, and gathers them back.
//   - Radix is a least-significant-digit base-10 counting sort; it
//     requires non-negative input and rejects anything else with a typed
//     error instead of corrupting the slice.
//
// Why
//
//   - The comparison sorts are the canonical teaching trio with O(n²)
//     (selection, insertion) and sub-quadratic (shell) behavior.
//   - Bucket and radix beat comparison sorting when keys are small
//     integers: O(n + k) per pass.
//
// Complexity (n = len(xs))
//
//   - Selection: O(n²) always; minimal swaps.
//   - Insertion: O(n²) worst, O(n) on nearly-sorted input; stable.
//   - Shell:     gap sequence n/2, n/4, …, 1; between O(n log n) and O(n²).
//   - Bucket:    O(n + b) expected for b buckets over uniform input.
//   - Radix:     O(d·(n + 10)) for d decimal digits in the maximum value.
//
// Usage
//
//	xs := []int{170, 45, 75, 90, 802, 24, 2, 66}
//	if err := sorting.Radix(xs); err != nil {
//	    // ErrNegativeValue
//	}
//	fmt.Println(xs) // [2 24 45 66 75 90 170 802]
//
// Options
//
//   - WithBucketCount(b): number of buckets for Bucket (default 10);
//     b <= 0 → ErrOptionViolation.
//
// Errors
//
//   - ErrNegativeValue    Radix input contains a negative integer.
//   - ErrOptionViolation  an invalid Option was supplied.
//
// All sorts mutate their argument; on error the slice is left untouched.
package sorting
