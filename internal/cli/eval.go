package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/rpncalc/internal/display"
	"github.com/codex-k8s/rpncalc/internal/ghoutput"
	"github.com/codex-k8s/rpncalc/internal/logging"
	"github.com/codex-k8s/rpncalc/internal/shell"
)

// newEvalCommand creates the "eval" subcommand that evaluates input non-interactively.
func newEvalCommand() *cobra.Command {
	var (
		strict       bool
		logOutput    bool
		githubOutput bool
	)

	cmd := &cobra.Command{
		Use:   "eval [token...]",
		Short: "Evaluate tokens from arguments or stdin and print the final stack",
		Long: "Evaluate the arguments as one input line, or every stdin line when no arguments are given, " +
			"then print the final stack. Put -- before the first negative number.",
		Example: "  rpncalc eval 3 4 + 2 '*'\n  echo '2 sqrt' | rpncalc eval --precision 6\n  rpncalc eval -- -4 abs",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())
			cfg := ConfigFromContext(cmd.Context())

			var ev evalEnv
			if err := parseEnv(&ev); err != nil {
				return fmt.Errorf("parse RPNCALC_* env: %w", err)
			}
			if !cmd.Flags().Changed("strict") {
				strict = ev.Strict
			}
			if !cmd.Flags().Changed("github-output") {
				githubOutput = ev.GitHubOutput
			}

			session := shell.NewSession(logger)
			rejected := 0
			commit := func(line string) error {
				res, ok := session.Commit(line)
				if !ok || res.Err == nil {
					return nil
				}
				rejected++
				logger.Warn("input rejected", "line", res.Line, "error", res.Err)
				if strict {
					return fmt.Errorf("evaluate %q: %w", res.Line, res.Err)
				}
				return nil
			}

			if len(args) > 0 {
				if err := commit(strings.Join(args, " ")); err != nil {
					return err
				}
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if err := commit(scanner.Text()); err != nil {
						return err
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			renderer := display.NewRenderer(cfg.DisplayOptions())
			stack := session.Stack()
			rendered := renderer.Stack(stack)

			if githubOutput {
				if err := ghoutput.Write(ghoutput.PathFromEnv(), stepOutputs(renderer, stack, rendered, rejected)); err != nil {
					return err
				}
			}

			var out io.Writer = cmd.OutOrStdout()
			if logOutput {
				out = logging.NewWriter(logger, "stack")
			}
			if rendered == "" {
				return nil
			}
			_, err := fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first rejected token instead of logging it")
	cmd.Flags().BoolVar(&logOutput, "log-output", false, "Write the final stack to the log instead of stdout")
	cmd.Flags().BoolVar(&githubOutput, "github-output", false, "Also publish stack, top, depth and rejected as GitHub Actions step outputs")

	return cmd
}

// stepOutputs builds the GitHub Actions outputs for a finished evaluation.
func stepOutputs(renderer *display.Renderer, stack []float64, rendered string, rejected int) map[string]string {
	values := map[string]string{
		"stack":    rendered,
		"depth":    strconv.Itoa(len(stack)),
		"rejected": strconv.Itoa(rejected),
		"top":      "",
	}
	if len(stack) > 0 {
		values["top"] = renderer.Number(stack[len(stack)-1])
	}
	return values
}
