// SPDX-License-Identifier: MIT

package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Assignment is one `node group` record of a hierarchy assignment stream.
type Assignment struct {
	Node  int // vertex index at the record's level
	Group int // aggregate id at the next level
}

// ReadAssignments parses a flat `node group` stream. Level boundaries are
// not marked in the stream; callers infer them from level sizes.
// Blank lines are skipped.
//
// Errors: ErrMalformed for lines without exactly two integers; ErrIO for
// read failures. Value ranges are not checked here.
func ReadAssignments(r io.Reader) ([]Assignment, error) {
	var out []Assignment
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("ReadAssignments: line %d: want 2 fields, got %d: %w", line, len(fields), ErrMalformed)
		}
		vals, err := atoiAll(fields)
		if err != nil {
			return nil, fmt.Errorf("ReadAssignments: line %d: %w: %w", line, ErrMalformed, err)
		}
		out = append(out, Assignment{Node: vals[0], Group: vals[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadAssignments: %w: %w", ErrIO, err)
	}

	return out, nil
}

// WriteAssignments writes records as `node group` lines, the inverse of
// ReadAssignments.
func WriteAssignments(w io.Writer, records []Assignment) error {
	bw := bufio.NewWriter(w)
	for _, a := range records {
		if _, err := fmt.Fprintf(bw, "%d %d\n", a.Node, a.Group); err != nil {
			return fmt.Errorf("WriteAssignments: %w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteAssignments: %w: %w", ErrIO, err)
	}

	return nil
}
