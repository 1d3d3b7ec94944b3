// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse constructors and
// operations.
package matrix

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opIdentity  = "Identity"
	opAt        = "At"
	opRow       = "Row"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// Element is a single COO triple (Row, Col, Value).
// New sums the Values of Elements sharing the same coordinates.
type Element struct {
	Row   int // row index, 0 ≤ Row < rows
	Col   int // column index, 0 ≤ Col < cols
	Value int // stored value; zero sums are dropped
}
