// Package sparse provides a triplet (row, col, value) representation of
// integer matrices with reconstruction and two transpose algorithms.
//
// What
//
//   - Compact turns a dense [][]int into a Matrix holding only the
//     non-zero entries, in row-major order.
//   - Dense rebuilds the full [][]int.
//   - Transpose emits the transposed triplets by scanning once per column.
//   - FastTranspose does the same in a single placement pass using a
//     per-column offset table.
//
// Why
//
//   - A matrix with t non-zero entries stores in O(t) instead of O(rows·cols).
//   - FastTranspose is the canonical improvement over the naive column
//     scan: O(t + cols) instead of O(t·cols), at the cost of two small
//     counting arrays.
//
// Invariants
//
//   - Entries are always sorted row-major (row, then col); both transpose
//     algorithms preserve this for their output.
//   - Dense(Compact(d)) reproduces d exactly.
//   - FastTranspose and Transpose produce identical matrices.
//
// Usage
//
//	m, err := sparse.Compact([][]int{
//	    {0, 0, 5},
//	    {3, 0, 0},
//	})
//	if err != nil {
//	    // ErrEmptyMatrix or ErrRaggedMatrix
//	}
//	tr := m.FastTranspose()
//	fmt.Println(tr.Dense()) // [[0 3] [0 0] [5 0]]
//
// Errors
//
//   - ErrEmptyMatrix   zero rows or zero columns.
//   - ErrRaggedMatrix  rows of differing lengths.
package sparse
