// Package config resolves command-line tokens and environment variables into
// a validated search configuration.
package config

// OutputFormat selects how matches are rendered.
type OutputFormat string

// Output format values.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config is the resolved input for one search invocation.
type Config struct {
	// Query is the literal text to search for.
	Query string

	// FilePath is the file to search.
	FilePath string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool

	// Output is the result format.
	Output OutputFormat

	// LogLevel is the diagnostic log level; empty disables logging.
	LogLevel string
}
