// Package logs sets up the structured event log. The terminal belongs to
// the editor, so logging only ever goes to a file.
package logs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewFromEnv returns a logger if PANEEDIT_LOG is set to a truthy value
// or if PANEEDIT_LOG_FILE is provided. Otherwise it returns a disabled
// logger. When enabled and no file is specified, it writes to
// ./paneedit.log. PANEEDIT_LOG=debug also records every key event.
// The returned closer flushes and closes the file.
func NewFromEnv() (zerolog.Logger, io.Closer) {
	lf := os.Getenv("PANEEDIT_LOG_FILE")
	v := os.Getenv("PANEEDIT_LOG")
	enabled := lf != "" || (v != "" && v != "0" && v != "false")
	if !enabled {
		return zerolog.Nop(), nopCloser{}
	}
	if lf == "" {
		lf = filepath.Join(".", "paneedit.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return zerolog.Nop(), nopCloser{}
	}
	level := zerolog.InfoLevel
	if v == "debug" {
		level = zerolog.DebugLevel
	}
	return New(f, level), f
}

// New returns a JSON-lines logger writing to w with timestamps.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
