// Package logging builds the structured loggers used by the flappybee commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New returns a logger writing to w, tagged with a fresh run id so lines from
// one process can be told apart in a shared log file.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappybee",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run", uuid.NewString()[:8])
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a logger appending to path. An empty path discards everything.
// The caller must Close the returned closer once logging is done.
func Open(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return New(io.Discard, debug), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, debug), f, nil
}
