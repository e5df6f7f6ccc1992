package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter writes each matching line on its own line, in file order.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the matching lines as plain text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	for _, m := range report.Matches {
		if _, err := fmt.Fprintln(w, m.Text); err != nil {
			return err
		}
	}
	return nil
}
