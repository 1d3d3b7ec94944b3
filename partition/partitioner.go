// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"fmt"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/matrix"
)

// Partitioner computes a multilevel partition of an undirected weighted graph
// on n vertices. The returned chain starts with an n-row partition matrix and
// composes level by level; an empty chain means no coarsening was produced.
type Partitioner interface {
	Partition(ctx context.Context, edges []artifact.Edge, n int) ([]*matrix.Sparse, error)
}

// validateEdges checks n and every endpoint and returns max endpoint + 1.
func validateEdges(method string, edges []artifact.Edge, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", method, n, ErrInvalidEdge)
	}
	span := 0
	for _, e := range edges {
		if e.I < 0 || e.J < 0 || e.I >= n || e.J >= n {
			return 0, fmt.Errorf("%s: edge (%d,%d) outside [0,%d): %w", method, e.I, e.J, n, ErrInvalidEdge)
		}
		span = max(span, e.I+1, e.J+1)
	}

	return span, nil
}

// Pad extends chain so that P_0 has n rows. Each of the k = n - P_0.Rows()
// missing vertices becomes its own aggregate, appended after the existing
// columns of every level, so the result is still a composable partition
// chain. An empty chain is returned unchanged.
//
// Errors: ErrVertexCount when P_0 already has more than n rows.
func Pad(chain []*matrix.Sparse, n int) ([]*matrix.Sparse, error) {
	if len(chain) == 0 {
		return chain, nil
	}
	extra := n - chain[0].Rows()
	if extra < 0 {
		return nil, fmt.Errorf("%s: P_0 has %d rows, n=%d: %w", methodPad, chain[0].Rows(), n, ErrVertexCount)
	}
	if extra == 0 {
		return chain, nil
	}

	out := make([]*matrix.Sparse, len(chain))
	for l, p := range chain {
		elems := p.Elements()
		for k := 0; k < extra; k++ {
			elems = append(elems, matrix.Element{Row: p.Rows() + k, Col: p.Cols() + k, Value: 1})
		}
		padded, err := matrix.New(p.Rows()+extra, p.Cols()+extra, elems)
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", methodPad, l, err)
		}
		out[l] = padded
	}

	return out, nil
}

const (
	methodPad        = "Pad"
	methodLouvain    = "Louvain.Partition"
	methodStatic     = "Static.Partition"
	coolistFile      = "expanded_coolist"
	graphFile        = "graph.bin"
	hierarchyFile    = "louvain_hierarchy"
	defaultConvert   = "convert"
	defaultCommunity = "community"
)
