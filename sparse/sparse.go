// Package sparse implements triplet compaction and transposes.
package sparse

import (
	"errors"
	"fmt"
)

// Sentinel errors for sparse-matrix construction.
var (
	// ErrEmptyMatrix indicates a dense input with zero rows or columns.
	ErrEmptyMatrix = errors.New("sparse: matrix has zero dimension")

	// ErrRaggedMatrix indicates dense input rows of differing lengths.
	ErrRaggedMatrix = errors.New("sparse: rows have differing lengths")
)

// Triple is one non-zero entry of the matrix.
type Triple struct {
	Row, Col, Val int
}

// Matrix is a sparse integer matrix in triplet form. Entries are kept in
// row-major order (row, then column).
type Matrix struct {
	Rows, Cols int
	Entries    []Triple
}

// Compact builds a Matrix from dense, keeping only non-zero values.
// Returns ErrEmptyMatrix for zero dimensions and ErrRaggedMatrix when row
// lengths differ.
func Compact(dense [][]int) (*Matrix, error) {
	if len(dense) == 0 || len(dense[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(dense[0])

	m := &Matrix{Rows: len(dense), Cols: cols}
	for r, row := range dense {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns (want %d)", ErrRaggedMatrix, r, len(row), cols)
		}
		for c, v := range row {
			if v != 0 {
				m.Entries = append(m.Entries, Triple{Row: r, Col: c, Val: v})
			}
		}
	}

	return m, nil
}

// Dense reconstructs the full matrix.
func (m *Matrix) Dense() [][]int {
	out := make([][]int, m.Rows)
	for r := range out {
		out[r] = make([]int, m.Cols)
	}
	for _, t := range m.Entries {
		out[t.Row][t.Col] = t.Val
	}

	return out
}

// NonZero returns the number of stored entries.
func (m *Matrix) NonZero() int { return len(m.Entries) }

// Transpose returns the transposed matrix by scanning the entries once per
// column, emitting them in the transposed row-major order. O(t·cols).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{
		Rows:    m.Cols,
		Cols:    m.Rows,
		Entries: make([]Triple, 0, len(m.Entries)),
	}

	for c := 0; c < m.Cols; c++ {
		for _, t := range m.Entries {
			if t.Col == c {
				out.Entries = append(out.Entries, Triple{Row: t.Col, Col: t.Row, Val: t.Val})
			}
		}
	}

	return out
}

// FastTranspose returns the transposed matrix in a single placement pass.
// It counts the entries of each column, turns the counts into starting
// offsets for each output row, then drops every entry straight into its
// slot. O(t + cols) time, O(cols) extra memory.
func (m *Matrix) FastTranspose() *Matrix {
	out := &Matrix{
		Rows:    m.Cols,
		Cols:    m.Rows,
		Entries: make([]Triple, len(m.Entries)),
	}
	if len(m.Entries) == 0 {
		return out
	}

	// rowStart[c] = where column c's entries begin in the output
	count := make([]int, m.Cols)
	for _, t := range m.Entries {
		count[t.Col]++
	}
	rowStart := make([]int, m.Cols)
	for c := 1; c < m.Cols; c++ {
		rowStart[c] = rowStart[c-1] + count[c-1]
	}

	for _, t := range m.Entries {
		out.Entries[rowStart[t.Col]] = Triple{Row: t.Col, Col: t.Row, Val: t.Val}
		rowStart[t.Col]++
	}

	return out
}
