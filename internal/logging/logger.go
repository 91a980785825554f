// Package logging builds the structured logger used across the tool.
// Configuration comes from flags with environment variable fallbacks.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerCloser wraps a logger and closes its file output, if any.
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// ParseLevel maps a level name to a log level. Unknown names mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewLoggerWithWriter creates a logger writing to w at the given level.
// An empty level falls back to NESDUMP_LOG_LEVEL.
func NewLoggerWithWriter(w io.Writer, level string) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if level == "" {
		level = os.Getenv("NESDUMP_LOG_LEVEL")
	}
	lg.SetLevel(ParseLevel(level))

	prefix := os.Getenv("NESDUMP_LOG_PREFIX")
	if prefix == "" {
		prefix = "gonesdump"
	}

	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != os.Stderr && w != os.Stdout {
		closer = c
	}
	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates the process logger.
// NESDUMP_LOG_LEVEL: debug, info, warn, error (default: info)
// NESDUMP_LOG_PREFIX: prefix for log messages (default: "gonesdump")
// NESDUMP_LOG_TO_FILE: when "1", logs go to a timestamped file instead of stderr
func NewLogger(level string) *LoggerCloser {
	output := io.Writer(os.Stderr)
	if os.Getenv("NESDUMP_LOG_TO_FILE") == "1" {
		timestamp := time.Now().Format("20060102-150405")
		logFile := fmt.Sprintf("gonesdump-%s.log", timestamp)
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			output = f
		}
	}
	return NewLoggerWithWriter(output, level)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
