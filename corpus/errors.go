// SPDX-License-Identifier: MIT

package corpus

import "errors"

var (
	// ErrUnknownDriver indicates a driver name other than "sqlite" or "pgx".
	ErrUnknownDriver = errors.New("corpus: unknown driver")

	// ErrQuery wraps failures reported by the database.
	ErrQuery = errors.New("corpus: query failed")

	// ErrInvalidRecipe indicates a recipe with an empty ingredient or tag name.
	ErrInvalidRecipe = errors.New("corpus: invalid recipe")

	// ErrIO wraps failures reading fixture files.
	ErrIO = errors.New("corpus: i/o failure")

	// ErrMalformedFile indicates a fixture file that is not a valid corpus.
	ErrMalformedFile = errors.New("corpus: malformed corpus file")
)
