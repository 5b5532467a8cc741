package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/rpncalc/internal/calc"
)

// newOpsCommand creates the "ops" subcommand that lists the operator vocabulary.
func newOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, op := range calc.Operators() {
				if _, err := fmt.Fprintf(out, "%-5s %d  %s\n", op.Token, op.Arity, op.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
