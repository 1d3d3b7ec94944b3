// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"
	"io"
	"strings"
)

// WriteLabels writes names newline-joined, without a trailing delimiter.
func WriteLabels(w io.Writer, names []string) error {
	if _, err := io.WriteString(w, strings.Join(names, "\n")); err != nil {
		return fmt.Errorf("WriteLabels: %w: %w", ErrIO, err)
	}

	return nil
}

// ReadLabels reads a label file. A single trailing newline is tolerated;
// an empty input yields no labels.
func ReadLabels(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadLabels: %w: %w", ErrIO, err)
	}
	text := strings.TrimSuffix(string(raw), "\n")
	if text == "" {
		return nil, nil
	}

	return strings.Split(text, "\n"), nil
}
