package output

import (
	"encoding/json"
	"io"

	"power-cost/core/engine"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the batch result as indented JSON
func (f *JSONFormatter) Render(w io.Writer, result *engine.BatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
