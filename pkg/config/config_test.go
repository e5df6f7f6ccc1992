package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccollicutt/littlegrep/pkg/args"
)

func envFrom(vars map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func TestBuild_Valid(t *testing.T) {
	cfg, err := Build([]string{"duct", "poem.txt"}, envFrom(nil))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := &Config{
		Query:    "duct",
		FilePath: "poem.txt",
		Output:   OutputText,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_IgnoreCasePrecedence(t *testing.T) {
	tests := []struct {
		name string
		flag string // empty means the option is absent
		env  map[string]string
		want bool
	}{
		{"flag true, env unset", "--ignore-case=true", nil, true},
		{"flag absent, env true", "", map[string]string{EnvIgnoreCase: "true"}, true},
		{"flag true, env true", "--ignore-case=true", map[string]string{EnvIgnoreCase: "true"}, true},
		{"flag false, env true", "--ignore-case=false", map[string]string{EnvIgnoreCase: "true"}, false},
		{"flag true, env false", "--ignore-case=true", map[string]string{EnvIgnoreCase: "false"}, true},
		{"flag absent, env false", "", map[string]string{EnvIgnoreCase: "false"}, false},
		{"flag absent, env unset", "", nil, false},
		{"flag absent, env non-literal", "", map[string]string{EnvIgnoreCase: "1"}, false},
		{"flag other value, env true", "--ignore-case=yes", map[string]string{EnvIgnoreCase: "true"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := []string{"query", "file.txt"}
			if tt.flag != "" {
				tokens = append(tokens, tt.flag)
			}

			cfg, err := Build(tokens, envFrom(tt.env))
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if cfg.IgnoreCase != tt.want {
				t.Errorf("IgnoreCase = %v, want %v", cfg.IgnoreCase, tt.want)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   error
	}{
		{"no arguments", nil, ErrQueryNotProvided},
		{"only query", []string{"query"}, ErrFilePathNotProvided},
		{"only options", []string{"--ignore-case=true"}, ErrQueryNotProvided},
		{"three positional", []string{"a", "b", "c"}, args.ErrTooManyArguments},
		{"unknown option", []string{"a", "b", "--bogus=1"}, args.ErrInvalidOption},
		{"malformed option", []string{"a", "b", "--ignore-case"}, args.ErrMalformedOption},
		{"unknown output", []string{"a", "b", "--output=xml"}, ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.tokens, envFrom(nil))
			if !errors.Is(err, tt.want) {
				t.Errorf("Build(%v) error = %v, want %v", tt.tokens, err, tt.want)
			}
		})
	}
}

func TestBuild_ErrorMessagesNameMissingField(t *testing.T) {
	_, err := Build(nil, envFrom(nil))
	if err == nil || err.Error() != "query not provided" {
		t.Errorf("Build(nil) error = %v, want %q", err, "query not provided")
	}

	_, err = Build([]string{"q"}, envFrom(nil))
	if err == nil || err.Error() != "file path not provided" {
		t.Errorf("Build([q]) error = %v, want %q", err, "file path not provided")
	}
}

func TestBuild_OutputAndLogLevel(t *testing.T) {
	env := envFrom(map[string]string{EnvLogLevel: "debug"})
	cfg, err := Build([]string{"q", "f", "--output=yaml"}, env)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.Output != OutputYAML {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputYAML)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestValidate_OutputFormats(t *testing.T) {
	for _, format := range []OutputFormat{OutputText, OutputJSON, OutputYAML} {
		cfg := &Config{Output: format}
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate(%q) error = %v", format, err)
		}
	}

	if err := Validate(&Config{}); err == nil {
		t.Error("Validate() expected error for empty output format")
	}
}
