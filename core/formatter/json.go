package formatter

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats the report as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the formatter name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Description returns the formatter description.
func (f *JSONFormatter) Description() string {
	return "JSON output format"
}

// Format encodes the report.
func (f *JSONFormatter) Format(w io.Writer, rep *Report, opts Options) error {
	encoder := json.NewEncoder(w)
	if !opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(rep)
}
