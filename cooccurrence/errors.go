// SPDX-License-Identifier: MIT

package cooccurrence

import "errors"

var (
	// ErrUnknownIngredient indicates a name lookup for an ingredient that is
	// not part of the relation.
	ErrUnknownIngredient = errors.New("cooccurrence: unknown ingredient")

	// ErrBadWorkers indicates a non-positive worker count for BuildParallel.
	ErrBadWorkers = errors.New("cooccurrence: workers must be > 0")
)
