// SPDX-License-Identifier: MIT

package partition

import "errors"

var (
	// ErrIO wraps failures reading or writing the exchanged artifacts.
	ErrIO = errors.New("partition: i/o failure")

	// ErrTool indicates the external tool could not be started or exited
	// with a failure status.
	ErrTool = errors.New("partition: external tool failed")

	// ErrInvalidEdge indicates an edge endpoint outside [0, n) or a
	// non-positive vertex count for a non-empty edge list.
	ErrInvalidEdge = errors.New("partition: invalid edge")

	// ErrVertexCount indicates a chain whose first level has more rows than
	// the requested vertex count.
	ErrVertexCount = errors.New("partition: chain larger than vertex count")
)
