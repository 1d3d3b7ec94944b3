// SPDX-License-Identifier: MIT
// Package: hierarchy
//
// hierarchy.go — the Hierarchy type, chain validation and composition.
//
// Contract:
//   - P_0 has NumVertices() rows; P_l has as many rows as P_{l-1} has columns.
//   - Every P_l is a partition matrix.
//   - Partition(0) is the identity; Partition(L) = P_0·…·P_{L-1}.

package hierarchy

import (
	"fmt"

	"github.com/aujxn/recipe-analysis/expanded"
	"github.com/aujxn/recipe-analysis/matrix"
)

// Hierarchy is a validated interpolation chain bound to the expanded relation
// it partitions and to the ingredient name table. Read-only after New.
type Hierarchy struct {
	interps   []*matrix.Sparse
	names     []string
	relation  *expanded.Relation
	adjacency *matrix.Sparse
}

// New validates interps against relation and names and returns a Hierarchy.
// Stage 1 (Validate): non-nil relation, len(names) == NumIngredients().
// Stage 2 (Chain): every P_l is a partition, has no more columns than rows,
// and the chain composes.
// Stage 3 (Prepare): materialise the expanded adjacency matrix once.
//
// An empty chain is valid; the hierarchy then has a single level (identity).
func New(interps []*matrix.Sparse, names []string, relation *expanded.Relation) (*Hierarchy, error) {
	// Stage 1: validate inputs
	if relation == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilRelation)
	}
	if len(names) != relation.NumIngredients() {
		return nil, fmt.Errorf("%s: %d names for %d ingredients: %w",
			methodNew, len(names), relation.NumIngredients(), ErrLabelMismatch)
	}

	// Stage 2: validate the chain shape
	rows := relation.NumVertices()
	for l, p := range interps {
		if p == nil {
			return nil, fmt.Errorf("%s: P_%d is nil: %w", methodNew, l, ErrChainMismatch)
		}
		if p.Rows() != rows {
			return nil, fmt.Errorf("%s: P_%d has %d rows, want %d: %w", methodNew, l, p.Rows(), rows, ErrChainMismatch)
		}
		if !p.IsPartition() {
			return nil, fmt.Errorf("%s: P_%d is not a partition: %w", methodNew, l, ErrChainMismatch)
		}
		if p.Cols() > p.Rows() {
			return nil, fmt.Errorf("%s: P_%d grows %d vertices into %d aggregates: %w",
				methodNew, l, p.Rows(), p.Cols(), ErrChainMismatch)
		}
		rows = p.Cols()
	}

	// Stage 3: cache the fine-level adjacency
	return &Hierarchy{
		interps:   append([]*matrix.Sparse(nil), interps...),
		names:     append([]string(nil), names...),
		relation:  relation,
		adjacency: relation.AdjacencyMatrix(),
	}, nil
}

// NumLevels returns the number of interpolation matrices plus one.
func (h *Hierarchy) NumLevels() int { return len(h.interps) + 1 }

// Interpolations returns the chain P_0 … P_{L-1}. Matrices are immutable, so
// only the slice is copied.
func (h *Hierarchy) Interpolations() []*matrix.Sparse {
	return append([]*matrix.Sparse(nil), h.interps...)
}

// LevelSizes returns the vertex count of every level, starting with the
// expanded relation's vertex count at level 0.
func (h *Hierarchy) LevelSizes() []int {
	out := make([]int, 0, len(h.interps)+1)
	out = append(out, h.relation.NumVertices())
	for _, p := range h.interps {
		out = append(out, p.Cols())
	}
	return out
}

// Names returns the ingredient name table.
func (h *Hierarchy) Names() []string { return append([]string(nil), h.names...) }

// Relation returns the expanded relation the hierarchy partitions.
func (h *Hierarchy) Relation() *expanded.Relation { return h.relation }

// AdjacencyMatrix returns the expanded relation's adjacency matrix.
func (h *Hierarchy) AdjacencyMatrix() *matrix.Sparse { return h.adjacency }

// Partition returns the composed partition at level.
// Complexity: O(level · V) since every factor has one value per row.
func (h *Hierarchy) Partition(level int) (*matrix.Sparse, error) {
	if level < 0 || level > len(h.interps) {
		return nil, fmt.Errorf("%s(%d): have %d levels: %w", methodPartition, level, h.NumLevels(), ErrLevelOutOfRange)
	}
	if level == 0 {
		return matrix.Identity(h.relation.NumVertices())
	}

	p := h.interps[0]
	for l := 1; l < level; l++ {
		next, err := matrix.Mul(p, h.interps[l])
		if err != nil {
			// New guarantees the chain composes
			return nil, fmt.Errorf("%s(%d): %w: %w", methodPartition, level, ErrChainMismatch, err)
		}
		p = next
	}

	return p, nil
}

// CoarseAdjacency returns Pᵀ·A·P for the composed partition P at level and
// the expanded adjacency A: entry (a, b) sums the weights of edges between
// aggregates a and b, and the diagonal holds twice the internal weight.
func (h *Hierarchy) CoarseAdjacency(level int) (*matrix.Sparse, error) {
	p, err := h.Partition(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoarseAdjacency, err)
	}
	pt, err := matrix.Transpose(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoarseAdjacency, err)
	}
	ap, err := matrix.Mul(h.adjacency, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoarseAdjacency, err)
	}
	coarse, err := matrix.Mul(pt, ap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoarseAdjacency, err)
	}

	return coarse, nil
}
