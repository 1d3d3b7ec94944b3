// SPDX-License-Identifier: MIT

package artifact

import "errors"

var (
	// ErrIO wraps read/write failures of the underlying stream.
	ErrIO = errors.New("artifact: i/o failure")

	// ErrMalformed indicates a line that does not match the expected format.
	ErrMalformed = errors.New("artifact: malformed record")
)
