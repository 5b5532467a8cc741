package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/rpncalc/internal/calc"
)

// run executes the root command in an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&Options{}, nil)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, _, err := run(t, "", "eval", "10", "3", "-", "2", "*")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestEvalNegativeLiteral(t *testing.T) {
	out, _, err := run(t, "", "eval", "--separator", "space", "--", "-4", "abs", "-1")
	require.NoError(t, err)
	assert.Equal(t, "4 -1\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, _, err := run(t, "1 2\n\n3\n+\n", "eval", "--order", "top-down")
	require.NoError(t, err)
	assert.Equal(t, "5\n1\n", out)
}

func TestEvalRejectedTokenIsLogged(t *testing.T) {
	out, stderr, err := run(t, "", "eval", "6", "0", "/")
	require.NoError(t, err)
	assert.Equal(t, "6\n0\n", out)
	assert.Contains(t, stderr, "input rejected")
}

func TestEvalStrict(t *testing.T) {
	_, _, err := run(t, "", "eval", "--strict", "6", "0", "/")
	require.Error(t, err)
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
}

func TestEvalStrictFromEnv(t *testing.T) {
	t.Setenv("RPNCALC_STRICT", "true")
	_, _, err := run(t, "", "eval", "x")
	require.Error(t, err)
	assert.Equal(t, calc.KindInvalidInput, calc.KindOf(err))
}

func TestEvalLogOutput(t *testing.T) {
	out, stderr, err := run(t, "", "eval", "--log-output", "2", "pow")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "line=4")
}

func TestEvalPrecision(t *testing.T) {
	out, _, err := run(t, "", "eval", "--precision", "4", "2", "sqrt")
	require.NoError(t, err)
	assert.Equal(t, "1.414\n", out)
}

func TestOps(t *testing.T) {
	out, _, err := run(t, "", "ops")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(calc.Operators()))
	assert.Equal(t, "+     2  addition", lines[0])
}

func TestREPLDefaultCommand(t *testing.T) {
	out, _, err := run(t, "3 4 +\n", "--prompt", "", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "7\ninput processed successfully\n\n", out)
}

func TestREPLSubcommandPromptFromEnv(t *testing.T) {
	t.Setenv("RPNCALC_PROMPT", "rpn> ")
	t.Setenv("RPNCALC_COLOR", "never")
	out, _, err := run(t, "1\n", "repl")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "rpn> 1\n"), out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`display:
  order: top-down
  separator: '{{ default .UserVars.SEP "newline" }}'
`), 0o644))

	out, _, err := run(t, "", "--config", path, "--vars", "SEP=space", "eval", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "3 2 1\n", out)

	// flags win over the file
	out, _, err = run(t, "", "--config", path, "--vars", "SEP=space", "--order", "bottom-up", "eval", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", out)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "", "--config", "missing.yaml", "ops")
	assert.Error(t, err)

	_, _, err = run(t, "", "--order", "sideways", "ops")
	assert.ErrorContains(t, err, "sideways")

	_, _, err = run(t, "", "--vars", "nokey", "ops")
	assert.Error(t, err)
}

func TestEvalGitHubOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", path)

	_, _, err := run(t, "", "eval", "--github-output", "--separator", "space", "1", "2", "x", "3", "+")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "depth=2\nrejected=1\nstack=1 5\ntop=5\n", string(data))
}
