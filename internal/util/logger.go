package util

import (
	"fmt"
	"io"
	"os"
)

// Logger is the output surface for CLI operations.
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	VerbosePrintf(format string, v ...interface{})
	VerbosePrintln(v ...interface{})
}

// SimpleLogger writes to the given writer, optionally echoing verbose lines.
type SimpleLogger struct {
	writer  io.Writer
	verbose bool
}

// NewLogger creates a logger writing to w; verbose enables VerbosePrintf and
// VerbosePrintln output.
func NewLogger(w io.Writer, verbose bool) Logger {
	return &SimpleLogger{writer: w, verbose: verbose}
}

func (l *SimpleLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.writer, format, v...)
}

func (l *SimpleLogger) Println(v ...interface{}) {
	fmt.Fprintln(l.writer, v...)
}

func (l *SimpleLogger) VerbosePrintf(format string, v ...interface{}) {
	if l.verbose {
		fmt.Fprintf(l.writer, format, v...)
	}
}

func (l *SimpleLogger) VerbosePrintln(v ...interface{}) {
	if l.verbose {
		fmt.Fprintln(l.writer, v...)
	}
}

// IsATTY checks if stdout is a terminal
func IsATTY() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
