package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a logger writing to w, in "json" or "console" format.
// Only warnings are logged unless verbose is set.
func NewLogger(w io.Writer, format string, verbose bool) zerolog.Logger {
	output := w
	if format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
