package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/rpncalc/internal/display"
	"github.com/codex-k8s/rpncalc/internal/shell"
)

// newREPLCommand creates the "repl" subcommand, also run by the bare root command.
func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive calculator",
		Long:  "Start the interactive calculator. Type numbers and operators, press Enter to evaluate; :help lists directives.",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	logger := LoggerFromContext(cmd.Context())
	cfg := ConfigFromContext(cmd.Context())

	session := shell.NewSession(logger)
	repl := shell.NewREPL(session, display.NewRenderer(cfg.DisplayOptions()), cfg.Prompt, logger)

	logger.Debug("repl started", "prompt", cfg.Prompt)
	err := repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
