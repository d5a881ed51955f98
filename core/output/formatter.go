// Package output renders batch results for humans and machines.
package output

import (
	"io"

	"power-cost/core/engine"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *engine.BatchResult) error
}

// ForFormat returns the formatter for a format name, defaulting to CLI
func ForFormat(format string) Formatter {
	switch Format(format) {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{}
	}
}
