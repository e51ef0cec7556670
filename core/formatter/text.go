package formatter

import (
	"fmt"
	"io"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// TextFormatter renders a human-readable checklist.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the formatter name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Description returns the formatter description.
func (f *TextFormatter) Description() string {
	return "Human-readable checklist output"
}

// Format writes one line per key plus a summary.
func (f *TextFormatter) Format(w io.Writer, rep *Report, opts Options) error {
	for _, e := range rep.Entries {
		mark := f.mark(e.Status == StatusOK, opts.Color)

		switch {
		case e.Status != StatusOK:
			fmt.Fprintf(w, "  %s %-24s %s\n", mark, e.Key, e.Message)
		case e.Value != "":
			fmt.Fprintf(w, "  %s %-24s %s\n", mark, e.Key, e.Value)
		default:
			fmt.Fprintf(w, "  %s %s\n", mark, e.Key)
		}
	}

	ok, missing, invalid := rep.Counts()
	fmt.Fprintln(w)
	if rep.OK {
		fmt.Fprintf(w, "%d variable(s) valid.\n", ok)
		return nil
	}
	fmt.Fprintf(w, "ENV validation failed: %d missing, %d invalid.\n", missing, invalid)
	return nil
}

func (f *TextFormatter) mark(ok, color bool) string {
	switch {
	case ok && color:
		return ansiGreen + "✓" + ansiReset
	case ok:
		return "✓"
	case color:
		return ansiRed + "✗" + ansiReset
	default:
		return "✗"
	}
}
