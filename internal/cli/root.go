// Package cli provides the command-line interface for littlegrep.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/littlegrep/internal/cli/commands"
	"github.com/ccollicutt/littlegrep/pkg/config"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// Execute runs the root command against the process arguments and returns
// the exit code.
func Execute() int {
	return run(context.Background(), os.Args[1:], config.OSEnv, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, lookupEnv config.LookupEnvFunc, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(lookupEnv)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// SilenceErrors prevents Cobra from printing this itself
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", errorPrefix(err), err)
		return ExitError
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand(lookupEnv config.LookupEnvFunc) *cobra.Command {
	return commands.NewSearchCommand(lookupEnv)
}

func errorPrefix(err error) string {
	var stageErr *commands.StageError
	if errors.As(err, &stageErr) {
		return stageErr.Prefix()
	}
	return "Application error"
}
