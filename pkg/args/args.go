// Package args splits raw command-line tokens into positional arguments
// and validated --key=value options.
package args

import (
	"errors"
	"fmt"
	"strings"
)

const optionPrefix = "--"

// Recognized option names, including the -- prefix.
const (
	OptionIgnoreCase = "--ignore-case"
	OptionOutput     = "--output"
)

var validOptions = map[string]bool{
	OptionIgnoreCase: true,
	OptionOutput:     true,
}

var (
	// ErrInvalidOption is returned for an option name outside the recognized set.
	ErrInvalidOption = errors.New("invalid option")

	// ErrMalformedOption is returned for a recognized option without a =value part.
	ErrMalformedOption = errors.New("malformed option")

	// ErrTooManyArguments is returned when positional arguments exceed the limit.
	ErrTooManyArguments = errors.New("too many arguments")
)

// Arguments is the result of parsing a token list.
type Arguments struct {
	// Options maps option name (without the -- prefix) to its value.
	Options map[string]string

	// Positional holds non-option tokens in their original order.
	Positional []string
}

// Parse classifies tokens into options and positional arguments.
// Tokens must not include the program name. A repeated option keeps its
// last value.
func Parse(tokens []string, limit int) (*Arguments, error) {
	parsed := &Arguments{
		Options:    make(map[string]string),
		Positional: make([]string, 0, len(tokens)),
	}

	for _, token := range tokens {
		if !strings.HasPrefix(token, optionPrefix) {
			parsed.Positional = append(parsed.Positional, token)
			continue
		}

		key, value, found := strings.Cut(token, "=")
		if !validOptions[key] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOption, key)
		}
		if !found {
			return nil, fmt.Errorf("%w: %s (expected %s=<value>)", ErrMalformedOption, token, key)
		}

		parsed.Options[strings.TrimPrefix(key, optionPrefix)] = value
	}

	if len(parsed.Positional) > limit {
		return nil, fmt.Errorf("%w: got %d, at most %d allowed",
			ErrTooManyArguments, len(parsed.Positional), limit)
	}

	return parsed, nil
}

// Option returns the value of a parsed option by name (without the -- prefix).
func (a *Arguments) Option(name string) (string, bool) {
	value, ok := a.Options[name]
	return value, ok
}

// Arg returns the positional argument at index i, if present.
func (a *Arguments) Arg(i int) (string, bool) {
	if i < 0 || i >= len(a.Positional) {
		return "", false
	}
	return a.Positional[i], true
}
