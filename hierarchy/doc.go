// SPDX-License-Identifier: MIT

// Package hierarchy turns the output of a multilevel community-detection pass
// over an expanded ingredient graph into a queryable chain of partitions.
//
// What:
//
//   - Parse / FromAssignments read the flat `node group` stream emitted by the
//     external tool and infer level boundaries: level 0 has n records, and
//     each next level has as many records as the previous level had
//     aggregates (max group id + 1). Each level becomes one interpolation
//     matrix P_l, a 0/1 partition matrix with exactly one 1 per row.
//   - Hierarchy binds the chain P_0 … P_{L-1} to the expanded relation and the
//     ingredient name table. Partition(level) is the product P_0·…·P_{level-1};
//     level 0 is the identity partition.
//   - Aggregates(level, targets) walks the composed partition back to
//     (ingredient, recipe) pairs and groups them per aggregate.
//   - CoarseAdjacency(level) is Pᵀ·A·P for the composed partition P and the
//     expanded adjacency matrix A.
//
// Why:
//
//   - Level sizes are implicit in the stream, so a single parser gives every
//     caller the same boundary inference.
//   - The product of partition matrices is again a partition, so any level
//     can be reconstructed without re-running the detection pass.
//
// Determinism:
//
//   - Aggregates are returned in increasing aggregate id; ingredients inside
//     an aggregate by descending recipe count, ties by name; recipe ids
//     ascending. Identical inputs give identical output.
//
// Errors:
//
//   - ErrMalformedStream  short stream, out-of-range or repeated node, negative group.
//   - ErrLevelOutOfRange  level < 0 or level > number of interpolation matrices.
//   - ErrChainMismatch    matrices that are not partitions or do not compose.
//   - ErrIO               read failures while parsing.
//
// A Hierarchy is read-only after New and safe for concurrent queries.
package hierarchy
