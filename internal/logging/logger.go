// Package logging provides colored, leveled log output for the supastack CLI.
//
// All output functions accept a printf-style format string and write a
// prefixed, color-coded line. Debug output is suppressed unless verbose mode
// is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// verbose controls whether Debug() produces output.
var verbose bool

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Info prints an informational message to stdout in blue.
func Info(format string, args ...any) {
	fmt.Println(infoPrefix("[INFO]") + " " + fmt.Sprintf(format, args...))
}

// Success prints a success message to stdout in green.
func Success(format string, args ...any) {
	fmt.Println(successPrefix("[SUCCESS]") + " " + fmt.Sprintf(format, args...))
}

// Warn prints a warning message to stdout in yellow. Warnings report
// degraded-but-successful conditions and never change the exit status.
func Warn(format string, args ...any) {
	fmt.Println(warnPrefix("[WARN]") + " " + fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr in red.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

// Debug prints a debug message to stdout in blue, only when verbose mode is enabled.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Println(debugPrefix("[DEBUG]") + " " + fmt.Sprintf(format, args...))
}
