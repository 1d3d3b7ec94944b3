// SPDX-License-Identifier: MIT
// Package: hierarchy
//
// parse.go — level inference over the flat assignment stream.
//
// Contract:
//   - Level 0 consumes exactly n records; level l+1 consumes as many records
//     as level l has aggregates (max group + 1).
//   - Inside a level every node in [0, size) appears exactly once and the
//     groups are exactly 0..k-1 for some k ≤ size, so no level grows.
//   - Parsing stops when the stream is exhausted; an empty stream yields an
//     empty chain.

package hierarchy

import (
	"errors"
	"fmt"
	"io"

	"github.com/aujxn/recipe-analysis/artifact"
	"github.com/aujxn/recipe-analysis/matrix"
)

// Parse reads an assignment stream from r and splits it into interpolation
// matrices, starting from n base vertices.
//
// Errors: ErrIO on read failures; ErrMalformedStream for unparsable lines and
// for every FromAssignments failure.
func Parse(r io.Reader, n int) ([]*matrix.Sparse, error) {
	records, err := artifact.ReadAssignments(r)
	if err != nil {
		if errors.Is(err, artifact.ErrIO) {
			return nil, fmt.Errorf("%s: %w: %w", methodParse, ErrIO, err)
		}
		return nil, fmt.Errorf("%s: %w: %w", methodParse, ErrMalformedStream, err)
	}

	return FromAssignments(records, n)
}

// FromAssignments splits already-parsed records into interpolation matrices.
// Stage 1 (Validate): n ≥ 0.
// Stage 2 (Split): consume one level of `size` records at a time.
// Stage 3 (Build): one size×(maxGroup+1) partition matrix per level.
// Complexity: O(R log R) for R records.
//
// Group ids must be 0-based and contiguous; a level that skips an id is
// rejected with ErrMalformedStream.
func FromAssignments(records []artifact.Assignment, n int) ([]*matrix.Sparse, error) {
	// Stage 1: validate base size
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFromAssignments, n, ErrMalformedStream)
	}

	var (
		chain []*matrix.Sparse
		start int
		size  = n
	)
	// Stage 2: walk the stream level by level
	for level := 0; start < len(records); level++ {
		remaining := len(records) - start
		if size == 0 || remaining < size {
			return nil, fmt.Errorf("%s: level %d needs %d records, %d remain: %w",
				methodFromAssignments, level, size, remaining, ErrMalformedStream)
		}
		p, err := levelMatrix(records[start:start+size], size)
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", methodFromAssignments, level, err)
		}
		chain = append(chain, p)
		start += size
		size = p.Cols()
	}

	return chain, nil
}

// levelMatrix performs Stage 3 for one level of exactly size records.
func levelMatrix(records []artifact.Assignment, size int) (*matrix.Sparse, error) {
	seen := make([]bool, size)
	maxGroup := -1
	elems := make([]matrix.Element, 0, size)
	for _, rec := range records {
		if rec.Node < 0 || rec.Node >= size {
			return nil, fmt.Errorf("node %d not in [0,%d): %w", rec.Node, size, ErrMalformedStream)
		}
		if seen[rec.Node] {
			return nil, fmt.Errorf("node %d assigned twice: %w", rec.Node, ErrMalformedStream)
		}
		if rec.Group < 0 {
			return nil, fmt.Errorf("node %d: negative group %d: %w", rec.Node, rec.Group, ErrMalformedStream)
		}
		seen[rec.Node] = true
		maxGroup = max(maxGroup, rec.Group)
		elems = append(elems, matrix.Element{Row: rec.Node, Col: rec.Group, Value: 1})
	}
	if maxGroup >= size {
		return nil, fmt.Errorf("group %d for %d nodes: %w", maxGroup, size, ErrMalformedStream)
	}
	used := make([]bool, maxGroup+1)
	for _, rec := range records {
		used[rec.Group] = true
	}
	for g, ok := range used {
		if !ok {
			return nil, fmt.Errorf("group %d unused, ids must be contiguous: %w", g, ErrMalformedStream)
		}
	}

	// every coordinate was range-checked above
	return matrix.New(size, maxGroup+1, elems)
}
