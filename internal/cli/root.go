// Package cli defines the command-line interface for rpncalc.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/rpncalc/internal/config"
	"github.com/codex-k8s/rpncalc/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	Vars       string
	LogLevel   string
	Color      string
	Prompt     string
	Display    DisplayFlags
}

// DisplayFlags holds per-invocation display overrides.
type DisplayFlags struct {
	Order     string
	Separator string
	Precision int
	Align     bool
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootCmd := newRootCommand(&Options{}, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
// Without a subcommand it starts the interactive REPL.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rpncalc",
		Short:         "rpncalc is a postfix (RPN) calculator",
		Long:          "rpncalc evaluates reverse Polish notation: numbers are pushed onto a stack and operators replace their operands with the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCmd(opts, cmd)
			if err != nil {
				return err
			}
			level := logging.ParseLevel(cfg.LogLevel)
			logger = logging.NewLogger(cmd.ErrOrStderr(), level)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			ctx = context.WithValue(ctx, configKey{}, cfg)
			cmd.SetContext(ctx)

			logger.Debug("logger initialized", "level", level.String(), "config", opts.ConfigPath)
			return nil
		},
		RunE: runREPL,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to rpncalc.yaml (default ./"+config.DefaultPath+" when present)")
	flags.StringVar(&opts.Vars, "vars", "", "Template variables for the config file in k=v,k2=v2 format")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.Color, "color", "", "Color mode for status lines (auto, always, never)")
	flags.StringVar(&opts.Prompt, "prompt", "", "REPL prompt")
	addDisplayFlags(flags, &opts.Display)

	cmd.AddCommand(
		newREPLCommand(),
		newEvalCommand(),
		newOpsCommand(),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// configKey is a private context key used to store the resolved config.
type configKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}

// ConfigFromContext extracts the resolved config or returns the defaults.
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok && c != nil {
			return c
		}
	}
	cfg := config.Default()
	return &cfg
}
