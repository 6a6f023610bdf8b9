// Package output renders computed results for humans and machines.
// Model packages produce float64 records in full precision; this package
// owns the presentation boundary, including money rounding.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"stratocost/core/coverage"
	"stratocost/core/params"
	"stratocost/core/tasking"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is a delimited batch-export row
	FormatCSV Format = "csv"

	// FormatPDF is a one-page quote sheet
	FormatPDF Format = "pdf"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report bundles one computation's inputs and outputs for rendering.
// Exactly one of Coverage or Tasking is set, matching the mode.
type Report struct {
	// Scenario is the scenario name
	Scenario string `json:"scenario"`

	// Mode is the service mode that was computed
	Mode params.Mode `json:"mode"`

	// Parameters is the resolved input record
	Parameters *params.ServiceParameters `json:"parameters,omitempty"`

	// Coverage is the subscription-mode result
	Coverage *coverage.Result `json:"coverage,omitempty"`

	// Tasking is the tasking-mode result
	Tasking *tasking.Result `json:"tasking,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the computation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the computation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// Warnings returns the result's warning list regardless of mode.
func (r *Report) Warnings() []string {
	switch {
	case r.Coverage != nil:
		return r.Coverage.Warnings
	case r.Tasking != nil:
		return r.Tasking.Warnings
	}
	return nil
}

// New returns the formatter for a format name, or false for unknown names.
func New(format, currencySymbol string) (Formatter, bool) {
	switch Format(format) {
	case FormatCLI:
		return &CLIFormatter{Currency: currencySymbol}, true
	case FormatJSON:
		return &JSONFormatter{}, true
	case FormatCSV:
		return &CSVFormatter{}, true
	case FormatPDF:
		return &PDFFormatter{Currency: currencySymbol}, true
	}
	return nil, false
}

// money renders an amount rounded to cents, e.g. "$12,345.68" without the
// thousands separator: "$12345.68". Rounding goes through decimal so that
// presentation never re-orders the models' float arithmetic.
func money(symbol string, v float64) string {
	return symbol + decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// number renders a dimensionless quantity with up to four decimals,
// trailing zeros trimmed.
func number(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String()
}
