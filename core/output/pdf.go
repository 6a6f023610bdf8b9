// Package output - PDF quote sheet
package output

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (A4 portrait in mm).
const (
	quotePageWidth = 210.0
	quoteMargin    = 18.0
	quoteLabelW    = 100.0
	quoteValueW    = quotePageWidth - 2*quoteMargin - quoteLabelW
	quoteRowH      = 8.0
)

// PDFFormatter renders a one-page quote sheet with the headline cost and
// price figures.
type PDFFormatter struct {
	// Currency prefixes money amounts
	Currency string
}

// Format returns the format type
func (f *PDFFormatter) Format() Format {
	return FormatPDF
}

// Render writes the quote sheet as a PDF document
func (f *PDFFormatter) Render(w io.Writer, report *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(quoteMargin, quoteMargin, quoteMargin)
	pdf.SetAutoPageBreak(true, quoteMargin)
	pdf.AddPage()

	title := "Coverage Subscription Quote"
	if report.Tasking != nil {
		title = "Tasked Mission Quote"
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if report.Scenario != "" {
		pdf.CellFormat(0, 7, "Scenario: "+report.Scenario, "", 1, "L", false, 0, "")
	}
	if report.Metadata.Timestamp != "" {
		pdf.CellFormat(0, 7, "Prepared: "+report.Metadata.Timestamp, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	switch {
	case report.Coverage != nil:
		f.renderCoverage(pdf, report)
	case report.Tasking != nil:
		f.renderTasking(pdf, report)
	}

	if warnings := report.Warnings(); len(warnings) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Caveats", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, warning := range warnings {
			pdf.MultiCell(0, 5, "- "+warning, "", "L", false)
		}
	}

	return pdf.Output(w)
}

func (f *PDFFormatter) renderCoverage(pdf *fpdf.Fpdf, report *Report) {
	c := report.Coverage

	f.section(pdf, "Service geometry")
	f.row(pdf, "Coverage rate", number(c.CoverageRateKm2h)+" km2/h")
	f.row(pdf, "Cycle time", number(c.CycleMinutes)+" min")
	f.row(pdf, "Revisits per year", itoa(c.RevisitsPerYear))
	f.row(pdf, "Missions per year", itoa(c.MissionsPerYear))
	f.row(pdf, "Fleet size", itoa(c.FleetSize))

	f.section(pdf, "Cost")
	f.row(pdf, "Per-mission cost", money(f.Currency, c.PerMissionCost))
	f.row(pdf, "Annual cost", money(f.Currency, c.AnnualCost))
	f.row(pdf, "Cost per km2 per year", money(f.Currency, c.CostPerKm2Year))

	f.section(pdf, "Price")
	f.row(pdf, "Annual price", money(f.Currency, c.ChosenAnnualPrice))
	f.row(pdf, "Gross margin", percent(c.RealizedMargin))
	f.row(pdf, "Price per km2 per year", money(f.Currency, c.ChosenPricePerKm2Year))
}

func (f *PDFFormatter) renderTasking(pdf *fpdf.Fpdf, report *Report) {
	t := report.Tasking

	f.section(pdf, "Missions")
	f.row(pdf, "Profile", t.ProfileKey)
	f.row(pdf, "Mission count", itoa(t.MissionCount))
	f.row(pdf, "Mission duration", number(t.DurationDays)+" days")
	f.row(pdf, "Coverage per mission", number(t.CoveragePerMissionKm2)+" km2")

	f.section(pdf, "Cost")
	f.row(pdf, "Per-mission cost", money(f.Currency, t.PerMissionCost))
	f.row(pdf, "Batch cost", money(f.Currency, t.BatchCost))

	f.section(pdf, "Price")
	f.row(pdf, "Per-mission price", money(f.Currency, t.ChosenMissionPrice))
	f.row(pdf, "Batch price", money(f.Currency, t.BatchChosenPrice))
	f.row(pdf, "Gross margin", percent(t.RealizedMargin))
}

func (f *PDFFormatter) section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(235, 238, 245)
	pdf.CellFormat(0, quoteRowH, title, "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func (f *PDFFormatter) row(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(quoteLabelW, quoteRowH, label, "B", 0, "L", false, 0, "")
	pdf.CellFormat(quoteValueW, quoteRowH, value, "B", 1, "R", false, 0, "")
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
