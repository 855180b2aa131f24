package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the session logger: human-readable console output plus the
// append-only analyzer log file. The file is never rotated here.
func New(logPath string) (zerolog.Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: open %s: %w", logPath, err)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	multi := zerolog.MultiLevelWriter(console, file)
	return zerolog.New(multi).With().Timestamp().Logger(), nil
}

// NewWithWriter creates a logger over a custom writer, used by tests and by
// callers that manage their own sink.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
