// Package logging builds the process loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/emacsteroids/internal/config"
)

// New returns a logger writing to w, prefixed with component. The level is
// read from LOG_LEVEL and defaults to info.
func New(w io.Writer, component string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          component,
	})
	if lvl, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// Open returns a logger for processes that own the terminal. Output goes to
// LOG_FILE when set and is discarded otherwise. The returned close function
// is always non-nil.
func Open(component string) (*log.Logger, func() error, error) {
	path := config.GetEnv("LOG_FILE", "")
	if path == "" {
		return New(io.Discard, component), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, component), f.Close, nil
}
