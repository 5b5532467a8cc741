package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/codex-k8s/rpncalc/internal/display"
)

// addDisplayFlags registers stack rendering overrides on fs.
func addDisplayFlags(fs *pflag.FlagSet, df *DisplayFlags) {
	fs.StringVar(&df.Order, "order", "", "Stack listing order ("+string(display.OrderBottomUp)+", "+string(display.OrderTopDown)+")")
	fs.StringVar(&df.Separator, "separator", "", "Separator between stack values ("+string(display.SeparatorNewline)+", "+string(display.SeparatorSpace)+")")
	fs.IntVar(&df.Precision, "precision", -1, "Significant digits, -1 for the shortest exact form")
	fs.BoolVar(&df.Align, "align", false, "Right-align stack values")
}

// flagChanged reports whether the named flag was set on the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
