// Package logger gives the CLI commands and the builder a small structured
// logging surface over zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger records command activity. A nil Logger drops every event, so
// callers never guard their log calls.
type Logger struct {
	z zerolog.Logger
}

// New returns a logger writing human readable lines to stderr, which keeps
// stdout free for rendered documents.
func New(level string) (*Logger, error) {
	console := zerolog.NewConsoleWriter()
	console.Out = os.Stderr
	console.TimeFormat = time.RFC3339
	return build(level, console)
}

// NewJSON returns a logger writing one JSON object per event to w.
func NewJSON(level string, w io.Writer) (*Logger, error) {
	return build(level, w)
}

func build(level string, w io.Writer) (*Logger, error) {
	parsed := zerolog.InfoLevel
	if level != "" {
		var err error
		parsed, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, err
		}
	}
	return &Logger{z: zerolog.New(w).Level(parsed).With().Timestamp().Logger()}, nil
}

// WithFields returns a derived logger that stamps every event with fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	builder := l.z.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{z: builder.Logger()}
}

// Info records routine command activity.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.z.Info().Msg(msg)
}

// Debug records detail that only matters under --verbose.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.z.Debug().Msg(msg)
}

// Warn records a recoverable problem the user should know about.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.z.Warn().Msg(msg)
}
