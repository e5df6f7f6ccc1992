package config

import "os"

// Default values for configuration.
const (
	DefaultOutput = OutputText
)

// Environment variable names.
const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvLogLevel   = "LITTLEGREP_LOG_LEVEL"
)

// LookupEnvFunc reports the value of an environment variable and whether it is set.
type LookupEnvFunc func(key string) (string, bool)

// OSEnv reads the process environment.
var OSEnv LookupEnvFunc = os.LookupEnv

// defaultConfig returns a configuration with defaults before any option or
// environment variable is applied.
func defaultConfig() Config {
	return Config{
		Output: DefaultOutput,
	}
}

// applyEnvironment applies environment variables to the config. Only an
// IGNORE_CASE value of exactly "true" enables case-insensitive matching.
func (c *Config) applyEnvironment(lookupEnv LookupEnvFunc) {
	if value, ok := lookupEnv(EnvIgnoreCase); ok {
		c.IgnoreCase = value == "true"
	}
	if level, ok := lookupEnv(EnvLogLevel); ok {
		c.LogLevel = level
	}
}
