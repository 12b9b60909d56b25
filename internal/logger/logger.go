package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates the root logger. An unknown level falls back to warn so
// diagnostics never drown the pterm output on stdout.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

func NewWithWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Component returns a child logger prefixed with the component name.
func Component(l *log.Logger, name string) *log.Logger {
	return l.WithPrefix(name)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// WithContext adds the logger to the context.
func WithContext(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// FromContext retrieves the logger from the context or returns the default logger.
func FromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}
