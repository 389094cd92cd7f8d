// Package logger provides logging functionality for the workspace explorer.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes user-facing messages.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterLogger creates a default logger writing to out.
func NewWriterLogger(out io.Writer) Logger {
	return &defaultLogger{out: out}
}

// Logf writes a formatted message followed by a newline.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.out, format+"\n", args...)
}

// verboseLogger routes messages to a zerolog console writer at debug level.
type verboseLogger struct {
	zl zerolog.Logger
}

// NewVerboseLogger creates a logger for --verbose output on stderr.
func NewVerboseLogger() Logger {
	return NewVerboseWriterLogger(os.Stderr)
}

// NewVerboseWriterLogger creates a verbose logger writing to out.
func NewVerboseWriterLogger(out io.Writer) Logger {
	writer := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
	return &verboseLogger{
		zl: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

// Logf emits the formatted message as a debug event.
func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.zl.Debug().Msgf(format, args...)
}
