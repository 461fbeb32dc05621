// Package logging builds the zerolog logger shared by the CLI and the
// record store.
package logging

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to w. dev selects the
// human-readable console writer; otherwise events are JSON lines.
func New(dev bool, level string, w io.Writer) zerolog.Logger {
	var logger zerolog.Logger
	if dev {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(w).With().Timestamp().Logger()
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	return logger.Level(lvl)
}

// WithRunID tags every event of one CLI invocation with a fresh run_id.
func WithRunID(logger zerolog.Logger) zerolog.Logger {
	return logger.With().Str("run_id", uuid.NewString()).Logger()
}
