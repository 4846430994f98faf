package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Output is human-oriented console format on
// the given writer (stderr for the CLI, so machine-readable report output on
// stdout stays clean).
func New(w io.Writer, levelStr string) zerolog.Logger {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	level := zerolog.InfoLevel
	switch levelStr {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "info":
		fallthrough
	default:
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().
		Timestamp().
		Logger().
		Level(level)
}
