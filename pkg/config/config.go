package config

import (
	"errors"
	"fmt"

	"github.com/ccollicutt/littlegrep/pkg/args"
)

// maxPositional is the number of positional arguments: query and file path.
const maxPositional = 2

var (
	// ErrQueryNotProvided is returned when no positional arguments are given.
	ErrQueryNotProvided = errors.New("query not provided")

	// ErrFilePathNotProvided is returned when only the query is given.
	ErrFilePathNotProvided = errors.New("file path not provided")

	// ErrInvalidOutputFormat is returned for an unknown --output value.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)

// Build parses tokens (excluding the program name) and resolves them against
// the environment into a Config.
//
// Case sensitivity is resolved as: an --ignore-case option, when present,
// always wins ("true" enables, anything else disables); otherwise
// IGNORE_CASE=true enables; otherwise matching is case-sensitive.
func Build(tokens []string, lookupEnv LookupEnvFunc) (*Config, error) {
	parsed, err := args.Parse(tokens, maxPositional)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	query, ok := parsed.Arg(0)
	if !ok {
		return nil, ErrQueryNotProvided
	}
	cfg.Query = query

	filePath, ok := parsed.Arg(1)
	if !ok {
		return nil, ErrFilePathNotProvided
	}
	cfg.FilePath = filePath

	if lookupEnv == nil {
		lookupEnv = OSEnv
	}
	cfg.applyEnvironment(lookupEnv)
	cfg.applyOptions(parsed)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyOptions applies parsed command-line options, which take precedence
// over the environment.
func (c *Config) applyOptions(parsed *args.Arguments) {
	if value, ok := parsed.Option("ignore-case"); ok {
		c.IgnoreCase = value == "true"
	}
	if value, ok := parsed.Option("output"); ok {
		c.Output = OutputFormat(value)
	}
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	switch cfg.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w %q (must be text, json, or yaml)", ErrInvalidOutputFormat, cfg.Output)
	}
	return nil
}
