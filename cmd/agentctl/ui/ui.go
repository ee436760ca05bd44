// Package ui provides terminal output helpers for agentctl.
package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var verboseFlag bool

// Init initializes the UI with color and verbose settings.
func Init(noColor, verbose bool) {
	verboseFlag = verbose
	if noColor {
		color.NoColor = true
	}
}

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// Success displays a success message.
func Success(format string, args ...interface{}) {
	successColor.Fprintf(os.Stdout, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Error displays an error message to stderr.
func Error(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Warning displays a warning message.
func Warning(format string, args ...interface{}) {
	warnColor.Fprintf(os.Stdout, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Info displays an informational message.
func Info(format string, args ...interface{}) {
	infoColor.Fprintf(os.Stdout, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// Verbose displays a message only when verbose output is enabled.
func Verbose(format string, args ...interface{}) {
	if verboseFlag {
		fmt.Fprintf(os.Stdout, "%s\n", fmt.Sprintf(format, args...))
	}
}

// Section displays a section header.
func Section(title string) {
	fmt.Fprintf(os.Stdout, "\n%s\n%s\n\n", title, strings.Repeat("=", len(title)))
}

// Table displays data in a formatted table.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}
