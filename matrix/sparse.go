// SPDX-License-Identifier: MIT

// Package matrix: Sparse is a compressed sparse row (CSR) matrix of ints.
// It is immutable after construction; every accessor returning a slice
// returns a copy so callers cannot break the CSR invariants.
package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// Sparse stores a rows×cols int matrix in CSR form.
//
// Invariants:
//   - len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr is non-decreasing.
//   - colIdx[rowPtr[i]:rowPtr[i+1]] is strictly increasing for every row i.
//   - data never holds a zero.
type Sparse struct {
	rows, cols int
	rowPtr     []int // row i occupies [rowPtr[i], rowPtr[i+1])
	colIdx     []int // column index per stored value
	data       []int // stored values, parallel to colIdx
}

// New builds a rows×cols Sparse from COO elements.
// Stage 1 (Validate): shape and every coordinate.
// Stage 2 (Prepare): sort a copy of elems row-major.
// Stage 3 (Execute): merge duplicates by summing, drop zero sums.
// Complexity: O(k log k) time, O(rows + k) memory for k elements.
func New(rows, cols int, elems []Element) (*Sparse, error) {
	// Stage 1: validate shape
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNew, rows, cols, ErrBadShape)
	}
	for _, e := range elems {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("%s: element (%d,%d) outside %dx%d: %w",
				opNew, e.Row, e.Col, rows, cols, ErrOutOfRange)
		}
	}

	// Stage 2: sort a private copy; the caller's slice is left untouched
	sorted := make([]Element, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	// Stage 3: merge runs of equal coordinates
	m := &Sparse{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, 0, len(sorted)),
		data:   make([]int, 0, len(sorted)),
	}
	for k := 0; k < len(sorted); {
		row, col := sorted[k].Row, sorted[k].Col
		sum := 0
		for k < len(sorted) && sorted[k].Row == row && sorted[k].Col == col {
			sum += sorted[k].Value
			k++
		}
		if sum == 0 {
			continue
		}
		m.colIdx = append(m.colIdx, col)
		m.data = append(m.data, sum)
		m.rowPtr[row+1]++
	}
	for i := 0; i < rows; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n).
func Identity(n int) (*Sparse, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opIdentity, n, ErrBadShape)
	}
	m := &Sparse{
		rows:   n,
		cols:   n,
		rowPtr: make([]int, n+1),
		colIdx: make([]int, n),
		data:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] = i + 1
		m.colIdx[i] = i
		m.data[i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.cols }

// NNZ returns the number of stored (non-zero) values.
func (m *Sparse) NNZ() int { return len(m.data) }

// At returns the value at (i, j); absent cells are 0.
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(log d) where d is the number of values in row i.
func (m *Sparse) At(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// at is At without bounds checks.
func (m *Sparse) at(i, j int) int {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.data[k]
	}

	return 0
}

// Row returns copies of the column indices and values stored in row i.
func (m *Sparse) Row(i int) (cols, vals []int, err error) {
	if i < 0 || i >= m.rows {
		return nil, nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols = append([]int(nil), m.colIdx[lo:hi]...)
	vals = append([]int(nil), m.data[lo:hi]...)

	return cols, vals, nil
}

// Elements returns every stored value as a COO triple, row-major with
// ascending columns.
// Complexity: O(nnz).
func (m *Sparse) Elements() []Element {
	out := make([]Element, 0, len(m.data))
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			out = append(out, Element{Row: i, Col: m.colIdx[k], Value: m.data[k]})
		}
	}

	return out
}

// RowPtr returns a copy of the CSR row-pointer array (length Rows()+1).
func (m *Sparse) RowPtr() []int { return append([]int(nil), m.rowPtr...) }

// ColIndices returns a copy of the CSR column-index array.
func (m *Sparse) ColIndices() []int { return append([]int(nil), m.colIdx...) }

// Data returns a copy of the CSR value array.
func (m *Sparse) Data() []int { return append([]int(nil), m.data...) }

// IsSymmetric reports whether m is square and m(i,j) == m(j,i) everywhere.
// Complexity: O(nnz log d).
func (m *Sparse) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if m.at(m.colIdx[k], i) != m.data[k] {
				return false
			}
		}
	}

	return true
}

// IsPartition reports whether every row holds exactly one value and that
// value is 1, i.e. m maps each row to exactly one column.
// Complexity: O(rows).
func (m *Sparse) IsPartition() bool {
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		if hi-lo != 1 || m.data[lo] != 1 {
			return false
		}
	}

	return true
}

// Assignment returns, for a partition matrix, the column of each row.
// ok is false when m is not a partition (see IsPartition).
func (m *Sparse) Assignment() (cols []int, ok bool) {
	if !m.IsPartition() {
		return nil, false
	}

	return append([]int(nil), m.colIdx...), true
}

// Equal reports whether a and b have the same shape and values.
func Equal(a, b *Sparse) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.rowPtr {
		if a.rowPtr[i] != b.rowPtr[i] {
			return false
		}
	}
	for k := range a.data {
		if a.colIdx[k] != b.colIdx[k] || a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, printing one "row: col=val ..." line per
// non-empty row.
func (m *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %dx%d nnz=%d\n", m.rows, m.cols, len(m.data))
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		if lo == hi {
			continue
		}
		fmt.Fprintf(&sb, "%d:", i)
		for k := lo; k < hi; k++ {
			fmt.Fprintf(&sb, " %d=%d", m.colIdx[k], m.data[k])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
