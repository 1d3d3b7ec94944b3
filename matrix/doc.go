// SPDX-License-Identifier: MIT

// Package matrix provides the immutable sparse integer matrices used across
// recipe-analysis: co-occurrence counts, expanded-graph adjacency, and the
// 0/1 interpolation (partition) matrices produced by community detection.
//
// What:
//
//   - Sparse: compressed sparse row (CSR) storage of int values.
//   - New builds a Sparse from COO triples (Element), summing duplicates.
//   - Mul / Transpose: the two products the hierarchy composer needs.
//   - IsSymmetric / IsPartition: structural checks used as test invariants.
//
// Determinism:
//
//	Elements are always reported row-major with ascending columns, so
//	serialisation and equality checks never depend on insertion order.
//
// Errors:
//
//	ErrBadShape          - negative row or column count.
//	ErrOutOfRange        - element or index outside the declared shape.
//	ErrDimensionMismatch - a.Cols() != b.Rows() in Mul.
//	ErrNilMatrix         - nil *Sparse passed to an operation.
package matrix
