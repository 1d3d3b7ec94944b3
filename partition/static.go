// SPDX-License-Identifier: MIT

package partition

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/hierarchy"
	"github.com/aujxn/recipe-analysis/matrix"
)

// Static replays a captured assignment stream instead of running a tool.
// The edges are only validated against n.
type Static struct {
	Stream []byte
	// FromSpan sizes level 0 by the edges' vertex span (max endpoint + 1) and
	// pads the rest, matching streams produced by the Louvain tool. When
	// false level 0 has n records.
	FromSpan bool
}

// StaticFile reads a stream kept by a Louvain run (louvain_hierarchy).
func StaticFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("StaticFile(%q): %w: %w", path, ErrIO, err)
	}
	return &Static{Stream: data, FromSpan: true}, nil
}

// Partition implements Partitioner.
func (s *Static) Partition(ctx context.Context, edges []artifact.Edge, n int) ([]*matrix.Sparse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodStatic, err)
	}
	span, err := validateEdges(methodStatic, edges, n)
	if err != nil {
		return nil, err
	}
	records, err := artifact.ReadAssignments(bytes.NewReader(s.Stream))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodStatic, hierarchy.ErrMalformedStream, err)
	}
	base := n
	if s.FromSpan {
		base = span
	}
	chain, err := hierarchy.FromAssignments(records, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStatic, err)
	}
	chain, err = Pad(chain, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStatic, err)
	}

	return chain, nil
}
