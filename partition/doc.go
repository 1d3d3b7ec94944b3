// SPDX-License-Identifier: MIT

// Package partition is the boundary to the community-detection pass. The core
// never partitions a graph itself: a Partitioner receives the weighted edge
// list of an expanded relation and returns the interpolation chain
// P_0 … P_{L-1} that the hierarchy package composes.
//
// Implementations:
//
//   - Louvain shells out to the `convert` and `community` binaries of the
//     reference Louvain implementation. It writes the edge list to its work
//     directory, converts it to the tool's binary graph, runs the multilevel
//     pass with `-l -1` (print every level), keeps the assignment stream next
//     to the edge list, and parses it. One attempt, no retries; the caller's
//     context bounds the whole batch.
//   - Static replays a previously captured assignment stream.
//
// The external tool numbers vertices 0 … max endpoint, so isolated vertices
// at the end of the vertex range never reach it. Pad extends a chain with one
// singleton aggregate per missing vertex so that P_0 always has n rows.
package partition
