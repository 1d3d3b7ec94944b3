// SPDX-License-Identifier: MIT

// Package matrix: products over Sparse operands. Both functions allocate a
// fresh result and never mutate their inputs.
package matrix

import (
	"fmt"
	"sort"
)

// Mul returns the product a·b.
// Stage 1 (Validate): nil operands, a.Cols() == b.Rows().
// Stage 2 (Execute): Gustavson row-by-row product with a dense accumulator
// over b's columns.
// Stage 3 (Finalize): sort each result row's columns, drop zero sums.
// Complexity: O(Σ_i Σ_{k∈row i of a} nnz(row k of b) + rows·d log d) time,
// O(b.Cols()) scratch memory.
//
// For 0/1 partition matrices the product of two partitions is again a
// partition: row i of a has a single 1 at k, so row i of a·b is exactly
// row k of b.
func Mul(a, b *Sparse) (*Sparse, error) {
	// Stage 1: validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%s: %dx%d · %dx%d: %w", opMul, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	res := &Sparse{
		rows:   a.rows,
		cols:   b.cols,
		rowPtr: make([]int, a.rows+1),
	}

	// Stage 2: accumulate one output row at a time
	acc := make([]int, b.cols)
	seen := make([]bool, b.cols)
	touched := make([]int, 0, 16)
	for i := 0; i < a.rows; i++ {
		touched = touched[:0]
		for ka := a.rowPtr[i]; ka < a.rowPtr[i+1]; ka++ {
			k, av := a.colIdx[ka], a.data[ka]
			for kb := b.rowPtr[k]; kb < b.rowPtr[k+1]; kb++ {
				j := b.colIdx[kb]
				if !seen[j] {
					seen[j] = true
					touched = append(touched, j)
				}
				acc[j] += av * b.data[kb]
			}
		}

		// Stage 3: emit the row in column order and reset scratch
		sort.Ints(touched)
		for _, j := range touched {
			if acc[j] != 0 {
				res.colIdx = append(res.colIdx, j)
				res.data = append(res.data, acc[j])
			}
			acc[j] = 0
			seen[j] = false
		}
		res.rowPtr[i+1] = len(res.data)
	}

	return res, nil
}

// Transpose returns aᵀ.
// Complexity: O(rows + cols + nnz) time and memory (counting sort by column).
func Transpose(a *Sparse) (*Sparse, error) {
	if a == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	res := &Sparse{
		rows:   a.cols,
		cols:   a.rows,
		rowPtr: make([]int, a.cols+1),
		colIdx: make([]int, len(a.data)),
		data:   make([]int, len(a.data)),
	}
	// count values per column of a
	for _, j := range a.colIdx {
		res.rowPtr[j+1]++
	}
	for j := 0; j < a.cols; j++ {
		res.rowPtr[j+1] += res.rowPtr[j]
	}
	// scatter; iterating rows in order keeps each output row sorted
	next := append([]int(nil), res.rowPtr[:a.cols]...)
	for i := 0; i < a.rows; i++ {
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			j := a.colIdx[k]
			res.colIdx[next[j]] = i
			res.data[next[j]] = a.data[k]
			next[j]++
		}
	}

	return res, nil
}
