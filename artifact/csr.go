// SPDX-License-Identifier: MIT

package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aujxn/recipe-analysis/matrix"
)

// WriteCSR exports m in the CSR text form read by graph-embed style tools:
//
//	rows cols
//	rowptr[0] … rowptr[rows]   (one per line)
//	colidx[0] … colidx[nnz-1]
//	data[0]   … data[nnz-1]
//
// Values are newline-separated with no trailing newline.
func WriteCSR(w io.Writer, m *matrix.Sparse) error {
	if m == nil {
		return fmt.Errorf("WriteCSR: %w", matrix.ErrNilMatrix)
	}
	vals := m.RowPtr()
	vals = append(vals, m.ColIndices()...)
	vals = append(vals, m.Data()...)

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d", m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("WriteCSR: %w: %w", ErrIO, err)
	}
	for _, v := range vals {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("WriteCSR: %w: %w", ErrIO, err)
		}
		if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
			return fmt.Errorf("WriteCSR: %w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteCSR: %w: %w", ErrIO, err)
	}

	return nil
}

// ReadCSR parses the output of WriteCSR back into a Sparse matrix. Any
// whitespace separates values, so a header split over two lines also reads.
// Block lengths are derived from the header (rows+1 pointers) and the last
// row pointer (nnz indices and values).
func ReadCSR(r io.Reader) (*matrix.Sparse, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadCSR: %w: %w", ErrIO, err)
	}
	vals, err := atoiAll(strings.Fields(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("ReadCSR: %w: %w", ErrMalformed, err)
	}
	if len(vals) < 2 {
		return nil, fmt.Errorf("ReadCSR: missing header: %w", ErrMalformed)
	}
	rows, cols := vals[0], vals[1]
	if rows < 0 || cols < 0 || len(vals) < 2+rows+1 {
		return nil, fmt.Errorf("ReadCSR: bad header %dx%d: %w", rows, cols, ErrMalformed)
	}
	rowPtr := vals[2 : 3+rows]
	nnz := rowPtr[rows]
	if nnz < 0 || len(vals) != 3+rows+2*nnz {
		return nil, fmt.Errorf("ReadCSR: want %d values, got %d: %w", 3+rows+2*nnz, len(vals), ErrMalformed)
	}
	colIdx := vals[3+rows : 3+rows+nnz]
	data := vals[3+rows+nnz:]

	elems := make([]matrix.Element, 0, nnz)
	for i := 0; i < rows; i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		if lo < 0 || hi < lo || hi > nnz {
			return nil, fmt.Errorf("ReadCSR: row %d pointers [%d,%d): %w", i, lo, hi, ErrMalformed)
		}
		for k := lo; k < hi; k++ {
			elems = append(elems, matrix.Element{Row: i, Col: colIdx[k], Value: data[k]})
		}
	}
	m, err := matrix.New(rows, cols, elems)
	if err != nil {
		return nil, fmt.Errorf("ReadCSR: %w: %w", ErrMalformed, err)
	}

	return m, nil
}
