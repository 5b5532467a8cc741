package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer that turns every written line into an info record.
type Writer struct {
	logger *slog.Logger
	msg    string
}

// NewWriter returns a Writer logging lines under msg.
func NewWriter(logger *slog.Logger, msg string) *Writer {
	return &Writer{logger: logger, msg: msg}
}

// Write logs each non-empty line of p.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger == nil {
		return len(p), nil
	}
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			w.logger.Info(w.msg, "line", line)
		}
	}
	return len(p), nil
}
