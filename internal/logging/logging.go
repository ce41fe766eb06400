// Package logging wraps charmbracelet/log behind a small application logger.
//
// Log output always goes to stderr or a file, never stdout: stdout carries
// the MCP stdio transport and must stay clean.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type AppLogger struct {
	logger *log.Logger
	debug  bool
}

// NewAppLogger builds the application logger. With debug enabled (flag or
// DEBUG env var), logs go to a file in the working directory at debug level;
// otherwise warnings and errors go to stderr.
func NewAppLogger(debug bool) *AppLogger {
	debug = debug || os.Getenv("DEBUG") != ""

	var logger *log.Logger

	if debug {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = os.TempDir()
		}

		logPath := filepath.Join(cwd, "inspector-mcp.log")

		// Truncate on each run so a debug session starts clean
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			logFile = os.Stderr
		}

		logger = log.NewWithOptions(logFile, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "inspector-mcp",
		})
		logger.SetLevel(log.DebugLevel)

		logger.Info("Debug logging enabled", "log_file", logPath)
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "inspector-mcp",
		})
		logger.SetLevel(log.WarnLevel)
	}

	return &AppLogger{
		logger: logger,
		debug:  debug,
	}
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	al.logger.Debug(msg, keyvals...)
}

// SetLevel adjusts the log level at runtime. Accepts DEBUG, INFO, WARNING
// or ERROR in any case; WARN is accepted as an alias for WARNING.
func (al *AppLogger) SetLevel(level string) error {
	switch strings.ToUpper(level) {
	case "DEBUG":
		al.logger.SetLevel(log.DebugLevel)
	case "INFO":
		al.logger.SetLevel(log.InfoLevel)
	case "WARNING", "WARN":
		al.logger.SetLevel(log.WarnLevel)
	case "ERROR":
		al.logger.SetLevel(log.ErrorLevel)
	default:
		return fmt.Errorf("invalid logging level: %s. Use DEBUG, INFO, WARNING, or ERROR", level)
	}
	return nil
}

// Level returns the current log level name.
func (al *AppLogger) Level() string {
	switch al.logger.GetLevel() {
	case log.DebugLevel:
		return "DEBUG"
	case log.InfoLevel:
		return "INFO"
	case log.WarnLevel:
		return "WARNING"
	default:
		return "ERROR"
	}
}

// LogPerformance records how long an operation took (debug only).
func (al *AppLogger) LogPerformance(operation string, start time.Time) {
	if al.debug {
		al.logger.Debug("Performance",
			"operation", operation,
			"duration", time.Since(start),
		)
	}
}

// NewTestLogger creates a logger that writes to a buffer for testing
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{
		logger: logger,
		debug:  true,
	}, &buf
}
