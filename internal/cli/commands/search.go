// Package commands implements the littlegrep search command.
package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/littlegrep/internal/logging"
	"github.com/ccollicutt/littlegrep/pkg/config"
	"github.com/ccollicutt/littlegrep/pkg/output"
	"github.com/ccollicutt/littlegrep/pkg/search"
	"github.com/ccollicutt/littlegrep/pkg/source"
)

// NewSearchCommand creates the search command. Flag parsing is left to
// config.Build so the --key=value grammar is enforced in one place.
func NewSearchCommand(lookupEnv config.LookupEnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "littlegrep <query> <file-path> [--ignore-case=true|false] [--output=text|json|yaml]",
		Short: "Print the lines of a file that contain a query",
		Long: `littlegrep prints every line of a file containing the query string.

Options:
  --ignore-case=true|false  Match case-insensitively. Overrides IGNORE_CASE.
  --output=text|json|yaml   Result format (default text).

Environment:
  IGNORE_CASE=true          Match case-insensitively when --ignore-case is not given.
  LITTLEGREP_LOG_LEVEL      Enable diagnostics on stderr (debug, info, warn, error).

Exit codes:
  0 - Search completed (including no matches)
  1 - Argument or runtime error`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Build(args, lookupEnv)
			if err != nil {
				return argumentError(err)
			}

			logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return argumentError(err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			return Run(ctx, cfg, cmd.OutOrStdout(), logger)
		},
	}
}

// Run reads the configured file, searches it and writes the results to w.
// Output is buffered so nothing reaches w when an error is returned.
func Run(ctx context.Context, cfg *config.Config, w io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	formatter, err := output.New(string(cfg.Output))
	if err != nil {
		return argumentError(err)
	}

	logger.Debug("resolved configuration",
		zap.String("query", cfg.Query),
		zap.String("file", cfg.FilePath),
		zap.Bool("ignore_case", cfg.IgnoreCase),
		zap.String("output", formatter.Name()),
	)

	contents, err := source.ReadFile(ctx, cfg.FilePath)
	if err != nil {
		return runtimeError(err)
	}
	logger.Debug("read file", zap.String("file", cfg.FilePath), zap.Int("bytes", len(contents)))

	matches := search.Find(cfg.Query, contents, cfg.IgnoreCase)
	logger.Info("search complete", zap.Int("matches", len(matches)))

	report := output.NewReport(cfg.Query, cfg.FilePath, cfg.IgnoreCase, matches)
	var buf bytes.Buffer
	if err := formatter.Format(ctx, report, &buf); err != nil {
		return runtimeError(fmt.Errorf("formatting output: %w", err))
	}
	if _, err := buf.WriteTo(w); err != nil {
		return runtimeError(fmt.Errorf("writing output: %w", err))
	}

	return nil
}
