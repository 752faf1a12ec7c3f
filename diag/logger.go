// Package diag provides the default mat.Diagnostics / schedule.Diagnostics
// implementation: a thin adapter over github.com/rs/zerolog, the
// structured-logging library the retrieval pack's sibling robotics module
// depends on directly. Package mat and package schedule never import this
// package themselves — they only depend on the minimal Warnf/Errorf/Infof
// interfaces they each declare; cmd/numat wires a *Logger into both at
// startup.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger adapts zerolog.Logger to the Warnf/Errorf/Infof shape package mat
// and package schedule each declare as their own Diagnostics interface.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing human-readable console output to w.
func New(w io.Writer) *Logger {
	return &Logger{zl: zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()}
}

// NewDefault returns a Logger writing to stderr.
func NewDefault() *Logger {
	return New(os.Stderr)
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}
