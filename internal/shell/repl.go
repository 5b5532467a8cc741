package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/codex-k8s/rpncalc/internal/calc"
	"github.com/codex-k8s/rpncalc/internal/display"
)

const (
	dirQuit    = ":quit"
	dirPrev    = ":prev"
	dirNext    = ":next"
	dirHistory = ":history"
	dirHelp    = ":help"
)

// REPL reads lines from an input stream and commits them to a Session.
type REPL struct {
	session  *Session
	renderer *display.Renderer
	prompt   string
	logger   *slog.Logger

	// recalled is the line selected by :prev/:next; an empty input commits it.
	recalled string
}

// NewREPL constructs a REPL over session.
func NewREPL(session *Session, renderer *display.Renderer, prompt string, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &REPL{
		session:  session,
		renderer: renderer,
		prompt:   prompt,
		logger:   logger,
	}
}

// Run processes in line by line until EOF, :quit or ctx cancellation.
func (r *REPL) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := &printer{w: out}
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.printf("%s", r.prompt)
		if p.err != nil {
			return fmt.Errorf("write prompt: %w", p.err)
		}
		if !scanner.Scan() {
			break
		}
		if done := r.handle(p, scanner.Text()); done {
			return p.err
		}
		if p.err != nil {
			return fmt.Errorf("write output: %w", p.err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	p.printf("\n")
	return p.err
}

// handle processes one input line and reports whether the loop should stop.
func (r *REPL) handle(p *printer, line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == dirQuit:
		return true
	case trimmed == dirPrev:
		entry, ok := r.session.Previous()
		if !ok {
			p.println(r.renderer.Status("history is empty", true))
			return false
		}
		r.recalled = entry
		p.println("recall: " + entry)
	case trimmed == dirNext:
		entry, ok := r.session.Next()
		if !ok {
			p.println(r.renderer.Status("not browsing history", true))
			return false
		}
		r.recalled = entry
		if entry == "" {
			p.println("recall: (empty)")
		} else {
			p.println("recall: " + entry)
		}
	case trimmed == dirHistory:
		for i, entry := range r.session.History() {
			p.printf("%4d  %s\n", i+1, entry)
		}
	case trimmed == dirHelp:
		r.help(p)
	case strings.HasPrefix(trimmed, ":"):
		p.println(r.renderer.Status(fmt.Sprintf("unknown directive %q, try %s", trimmed, dirHelp), true))
	case trimmed == "":
		if r.recalled == "" {
			return false
		}
		r.commit(p, r.recalled)
	default:
		r.commit(p, line)
	}
	return false
}

func (r *REPL) commit(p *printer, line string) {
	r.recalled = ""
	res, ok := r.session.Commit(line)
	if !ok {
		return
	}
	if stack := r.renderer.Stack(res.Stack); stack != "" {
		p.println(stack)
	} else {
		p.println("(empty)")
	}
	p.println(r.renderer.Status(res.Status, res.Err != nil))
}

func (r *REPL) help(p *printer) {
	p.println("Enter numbers and operators separated by spaces, then press Enter.")
	p.println("Operators:")
	for _, op := range calc.Operators() {
		p.printf("  %-5s %d  %s\n", op.Token, op.Arity, op.Summary)
	}
	p.println("Directives:")
	p.printf("  %-9s recall the previous line (Enter commits it)\n", dirPrev)
	p.printf("  %-9s recall the next line\n", dirNext)
	p.printf("  %-9s list committed lines\n", dirHistory)
	p.printf("  %-9s exit\n", dirQuit)
}

// printer remembers the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}
