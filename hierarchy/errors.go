// SPDX-License-Identifier: MIT

package hierarchy

import "errors"

var (
	// ErrMalformedStream indicates an assignment stream whose records cannot
	// be split into well-formed levels.
	ErrMalformedStream = errors.New("hierarchy: malformed assignment stream")

	// ErrLevelOutOfRange indicates a level outside [0, NumLevels()-1].
	ErrLevelOutOfRange = errors.New("hierarchy: level out of range")

	// ErrChainMismatch indicates interpolation matrices that are not
	// partitions, do not chain, or do not match the relation's vertex count.
	ErrChainMismatch = errors.New("hierarchy: interpolation chain mismatch")

	// ErrLabelMismatch indicates a name table whose length differs from the
	// relation's ingredient count.
	ErrLabelMismatch = errors.New("hierarchy: ingredient names do not match relation")

	// ErrNilRelation indicates New was called without an expanded relation.
	ErrNilRelation = errors.New("hierarchy: nil relation")

	// ErrIO wraps read failures of the assignment stream.
	ErrIO = errors.New("hierarchy: i/o failure")
)
