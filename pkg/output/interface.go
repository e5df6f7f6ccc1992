package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders search results in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json, yaml).
	Name() string
}

// New returns the formatter registered under name.
func New(name string) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json, or yaml)", name)
	}
}
