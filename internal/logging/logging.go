// Package logging builds the leveled console loggers used across the CLI.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DebugEnv is the environment variable that switches on debug output.
const DebugEnv = "TASKS_DEBUG"

var debugLogger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.DebugLevel,
	Prefix: "debug",
})

// DebugEnabled returns true if debug mode is enabled via TASKS_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// New creates a text logger writing to w. Debug level is used when verbose
// is set or TASKS_DEBUG is present.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose || DebugEnabled() {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "tasks",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// SetDebugOutput redirects Debugf and Debugln; nil restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugLogger.SetOutput(w)
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		debugLogger.Debugf(format, args...)
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() && len(args) > 0 {
		debugLogger.Debug(args[0], args[1:]...)
	}
}
