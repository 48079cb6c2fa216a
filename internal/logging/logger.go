// Package logging provides colored, leveled log output for pidext.
//
// All output functions write a prefixed, color-coded line to stderr so that
// command results on stdout stay machine-readable. Debug output is
// suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// verbose controls whether Debug() produces output.
var verbose bool

// out receives every log line; nil means os.Stderr.
var out io.Writer

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	debugPrefix   = color.New(color.FgMagenta).SprintFunc()
)

// SetVerbose enables or disables Debug output. Call it once at startup,
// before any concurrent use.
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	return verbose
}

// SetOutput redirects log output. Passing nil restores os.Stderr.
func SetOutput(w io.Writer) {
	out = w
}

// SetColor forces colored output on or off.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func writer() io.Writer {
	if out == nil {
		return os.Stderr
	}
	return out
}

// Info prints an informational message in blue.
func Info(msg string) {
	fmt.Fprintln(writer(), infoPrefix("[INFO]")+" "+msg)
}

// Success prints a success message in green.
func Success(msg string) {
	fmt.Fprintln(writer(), successPrefix("[SUCCESS]")+" "+msg)
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	fmt.Fprintln(writer(), warnPrefix("[WARN]")+" "+msg)
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(writer(), errorPrefix("[ERROR]")+" "+msg)
}

// Debug prints a debug message in magenta, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(writer(), debugPrefix("[DEBUG]")+" "+msg)
}
