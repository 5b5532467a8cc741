// Package logging builds the colorized structured logger used by rpncalc.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Level is a slog level with rpncalc's parsing rules.
type Level slog.Level

const (
	// LevelDebug logs every committed line and rejected token.
	LevelDebug Level = Level(slog.LevelDebug)
	// LevelInfo is the default.
	LevelInfo Level = Level(slog.LevelInfo)
	// LevelWarn only logs warnings and errors.
	LevelWarn Level = Level(slog.LevelWarn)
	// LevelError only logs errors.
	LevelError Level = Level(slog.LevelError)
)

// String returns the lower-case level name.
func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// ParseLevel converts a textual level into a Level, defaulting to info.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// NewLogger returns a slog.Logger writing tint-formatted records to w.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:   slog.Level(level),
		NoColor: !isTerminal(w),
	})

	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
