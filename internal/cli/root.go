package cli

import (
	"context"
	stderrors "errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tobiasmeyr/staybook/pkg/buildinfo"
	"github.com/tobiasmeyr/staybook/pkg/errors"
	"github.com/tobiasmeyr/staybook/pkg/observability"
)

// Execute runs the staybook CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (search, prebook,
// lookup, mock), configures logging based on the --verbose flag, and executes
// the command tree with ctx as the base context so signal cancellation
// propagates into in-flight requests.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including per-attempt request logs
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext; it also backs the request hooks registered for the
// hotelapi executor.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &clientOpts{configPath: defaultConfigPath()}

	root := &cobra.Command{
		Use:           "staybook",
		Short:         "Staybook searches and pre-books hotel rates",
		Long:          `Staybook is a CLI for a hotel-booking API: search availability for a city and stay, validate a rate before booking, and browse the static content catalog (countries, cities, hotel details).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			observability.SetRequestHooks(newLogHooks(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "config file path")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides env and config file)")
	root.PersistentFlags().StringVar(&opts.username, "username", "", "API username")
	root.PersistentFlags().StringVar(&opts.password, "password", "", "API password")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-attempt request timeout (e.g. 5s)")
	root.PersistentFlags().IntVar(&opts.maxRetries, "max-retries", 0, "retries after the first attempt (0 disables)")
	root.PersistentFlags().Float64Var(&opts.rateLimit, "rate-limit", 0, "max requests per second (0 = unlimited)")
	opts.retriesFlagSet = func() bool { return root.PersistentFlags().Changed("max-retries") }

	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newPreBookCmd(opts))
	root.AddCommand(newLookupCmd(opts))
	root.AddCommand(newMockCmd())

	err := root.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		printError("%s", errors.UserMessage(err))
	}
	return err
}

// runWithSpinner shows a spinner while fn runs, unless verbose logging is
// active (the spinner would interleave with log lines). The spinner stops
// before fn's result is reported so output lands on a clean line.
func runWithSpinner(ctx context.Context, message string, fn func() error) error {
	logger := loggerFromContext(ctx)
	if logger.GetLevel() <= charmlog.DebugLevel {
		return fn()
	}
	sp := startSpinner(ctx, message)
	err := fn()
	sp.Stop()
	return err
}
