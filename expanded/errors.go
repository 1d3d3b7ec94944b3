// SPDX-License-Identifier: MIT
// Package: expanded
//
// errors.go — sentinel errors for the expanded package.
// Callers branch with errors.Is; implementations attach method context via %w.

package expanded

import "errors"

// ErrInvalidIngredientID indicates an ingredient id ≥ numIngredients (or < 0)
// in a recipe list or target set.
var ErrInvalidIngredientID = errors.New("expanded: invalid ingredient id")

// ErrVertexOutOfRange indicates a vertex index outside the vertex arena.
var ErrVertexOutOfRange = errors.New("expanded: vertex out of range")

// ErrBadIngredientCount indicates a negative ingredient count.
var ErrBadIngredientCount = errors.New("expanded: negative ingredient count")
