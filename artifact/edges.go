// SPDX-License-Identifier: MIT

package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Edge is one undirected weighted edge of an edge list. Writers expect the
// canonical form I < J; ReadEdges always returns it.
type Edge struct {
	I, J   int
	Weight int
}

// WriteEdges writes one "i j weight" line per edge, in the given order.
// Self-loop rows (I == J) are never emitted.
// Complexity: O(len(edges)).
func WriteEdges(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if e.I == e.J {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.I, e.J, e.Weight); err != nil {
			return fmt.Errorf("WriteEdges: %w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdges: %w: %w", ErrIO, err)
	}

	return nil
}

// ReadEdges parses an edge list written by WriteEdges (or any tool using the
// same whitespace-separated format). Blank lines and self-loop rows are
// skipped; reversed pairs are canonicalised to I < J.
//
// Errors: ErrMalformed for lines without exactly three integers, negative
// vertex ids or non-positive weights; ErrIO for read failures.
func ReadEdges(r io.Reader) ([]Edge, error) {
	var edges []Edge
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("ReadEdges: line %d: want 3 fields, got %d: %w", line, len(fields), ErrMalformed)
		}
		vals, err := atoiAll(fields)
		if err != nil {
			return nil, fmt.Errorf("ReadEdges: line %d: %w: %w", line, ErrMalformed, err)
		}
		i, j, wgt := vals[0], vals[1], vals[2]
		if i < 0 || j < 0 || wgt < 1 {
			return nil, fmt.Errorf("ReadEdges: line %d: %q: %w", line, sc.Text(), ErrMalformed)
		}
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		edges = append(edges, Edge{I: i, J: j, Weight: wgt})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdges: %w: %w", ErrIO, err)
	}

	return edges, nil
}

// atoiAll converts every field to an int.
func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}
