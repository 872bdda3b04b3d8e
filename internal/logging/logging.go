// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger writing to w. Format "json" emits one JSON object per
// line; anything else uses the human-readable console writer. Unknown levels
// fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Setup installs the logger as the global zerolog logger.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	logger := New(level, format, w)
	log.Logger = logger
	return logger
}
