// Package logging provides the leveled stderr logger used by svckit.
//
// Components take a Logger instead of reaching for a package-level
// singleton, so the CLI decides where output goes and tests can capture
// it with a buffer-backed ConsoleLogger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger is the logging surface svckit components depend on.
type Logger interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// ConsoleLogger writes colored, prefixed lines to a single writer.
type ConsoleLogger struct {
	Out io.Writer
}

// NewConsole returns a ConsoleLogger writing to stderr.
func NewConsole() *ConsoleLogger {
	return &ConsoleLogger{Out: os.Stderr}
}

var (
	infoTag    = color.New(color.FgBlue).Sprint("[INFO]")
	successTag = color.New(color.FgGreen).Sprint("[OK]")
	warningTag = color.New(color.FgYellow, color.Bold).Sprint("[WARN]")
	errorTag   = color.New(color.FgRed).Sprint("[ERROR]")
)

func (l *ConsoleLogger) line(tag, format string, args ...any) {
	fmt.Fprintf(l.Out, tag+" "+format+"\n", args...)
}

// Info logs progress information.
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.line(infoTag, format, args...)
}

// Success logs a completed operation.
func (l *ConsoleLogger) Success(format string, args ...any) {
	l.line(successTag, format, args...)
}

// Warning logs a recoverable problem. The build continues.
func (l *ConsoleLogger) Warning(format string, args ...any) {
	l.line(warningTag, format, args...)
}

// Error logs a failure.
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.line(errorTag, format, args...)
}

// Discard is a Logger that drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) Info(string, ...any)    {}
func (discard) Success(string, ...any) {}
func (discard) Warning(string, ...any) {}
func (discard) Error(string, ...any)   {}
