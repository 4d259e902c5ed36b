// Package logger configures the process-wide zerolog logger and hands out
// request-scoped loggers stored in a context.
package logger

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. level is any zerolog level name; pretty
// switches to a human readable console writer for local development.
func Setup(level string, pretty bool) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	// loggers pulled from a context without one attached fall back to the global logger
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}

// WithTraceID returns a child of the global logger tagged with traceID and a
// context carrying it.
func WithTraceID(ctx context.Context, traceID string) (context.Context, *zerolog.Logger) {
	l := log.With().Str("trace_id", traceID).Logger()
	return l.WithContext(ctx), &l
}

// FromContext returns the logger attached to ctx, or the default one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
