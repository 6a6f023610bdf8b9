// Package cmd - shared report rendering
package cmd

import (
	"fmt"
	"io"
	"os"

	"stratocost/core/output"
	"stratocost/internal/config"
	"stratocost/internal/errors"
)

// renderReports writes reports in the requested format, falling back to
// the configured default format and stdout.
func renderReports(reports []*output.Report, format, outPath string) error {
	cfg := config.Get()
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	formatter, ok := output.New(format, cfg.Output.CurrencySymbol)
	if !ok {
		return errors.Newf(errors.TypeOutput, "unknown output format %q", format)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return errors.Output("failed to create output file", err)
		}
		defer file.Close()
		w = file
	}

	// CSV batches all reports under one header; other formats render
	// each report in sequence.
	if csvFormatter, ok := formatter.(*output.CSVFormatter); ok && len(reports) > 1 {
		return csvFormatter.RenderBatch(w, reports)
	}

	for i, report := range reports {
		if i > 0 && formatter.Format() == output.FormatCLI {
			fmt.Fprintln(w)
		}
		if err := formatter.Render(w, report); err != nil {
			return errors.Output("failed to render report", err)
		}
	}
	return nil
}
