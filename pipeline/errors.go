// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrUnknownIngredient indicates a target name absent from the corpus.
	ErrUnknownIngredient = errors.New("pipeline: unknown target ingredient")

	// ErrIO wraps failures creating the work directory or its artifacts.
	ErrIO = errors.New("pipeline: i/o failure")
)
