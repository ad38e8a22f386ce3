// Package search provides linear and binary search over slices.
//
// What
//
//   - Linear scans any comparable element type front to back and returns
//     the first matching index.
//   - Binary bisects a slice sorted in ascending order and returns an
//     index of the target.
//
// Why
//
//   - Linear is the only option for unsorted data: O(n), no preconditions.
//   - Binary finds a target in O(log n) once the data is sorted, e.g. by
//     the sibling sorting package.
//
// Usage
//
//	idx, ok := search.Binary([]int{2, 4, 8, 16}, 8)
//	// idx == 2, ok == true
//
// Both functions use comma-ok returns: a missing target is an expected
// outcome, not an error. Binary's sortedness precondition is the caller's
// contract; on unsorted input the result is unspecified.
package search
