// Package source loads the text buffer to be searched.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrNotText is returned when a file's content is not valid UTF-8.
var ErrNotText = errors.New("stream did not contain valid UTF-8")

// ReadFile reads the whole file at path into memory. The file handle is
// released before returning.
func ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading %s: %w", path, ErrNotText)
	}

	return string(data), nil
}
