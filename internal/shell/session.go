// Package shell wires the evaluator and history into an interactive session.
package shell

import (
	"io"
	"log/slog"
	"strings"

	"github.com/codex-k8s/rpncalc/internal/calc"
	"github.com/codex-k8s/rpncalc/internal/history"
)

// StatusOK is reported after a commit that produced no error.
const StatusOK = "input processed successfully"

// Result describes the state after one commit.
type Result struct {
	// Line is the committed input, verbatim.
	Line string
	// Outcomes holds one entry per evaluated token.
	Outcomes []calc.Outcome
	// Stack is the stack snapshot, bottom to top.
	Stack []float64
	// Status is the message to show; the pending error message when Err is set.
	Status string
	// Err is the evaluator's pending error surfaced by this commit.
	Err error
}

// Session is one user's calculator: an evaluator plus command history.
type Session struct {
	eval    *calc.Evaluator
	history *history.History
	logger  *slog.Logger
}

// NewSession constructs a Session with an empty stack and history.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		eval:    calc.NewEvaluator(),
		history: history.New(),
		logger:  logger,
	}
}

// Commit evaluates line, records it in history and surfaces the pending error,
// clearing it. Blank input is ignored and reported as false.
func (s *Session) Commit(line string) (Result, bool) {
	if strings.TrimSpace(line) == "" {
		return Result{}, false
	}

	outcomes := s.eval.Process(line)
	res := Result{
		Line:     line,
		Outcomes: outcomes,
		Stack:    s.eval.Stack(),
		Status:   StatusOK,
	}
	if err := s.eval.LastError(); err != nil {
		res.Err = err
		res.Status = err.Error()
		s.eval.ClearError()
		s.logger.Debug("token rejected", "line", line, "kind", calc.KindOf(err).String(), "error", err)
	}

	s.history.Commit(line)
	s.logger.Debug("line committed", "line", line, "tokens", len(outcomes), "depth", len(res.Stack))
	return res, true
}

// Previous recalls the previous history entry.
func (s *Session) Previous() (string, bool) {
	return s.history.Previous()
}

// Next recalls the next history entry, or the empty input past the newest one.
func (s *Session) Next() (string, bool) {
	return s.history.Next()
}

// History returns all committed lines, oldest first.
func (s *Session) History() []string {
	return s.history.Entries()
}

// Stack returns the current stack, bottom to top.
func (s *Session) Stack() []float64 {
	return s.eval.Stack()
}
