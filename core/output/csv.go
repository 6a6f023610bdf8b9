// Package output - CSV batch export
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// CSVFormatter renders one header row plus one data row per report. Column
// order is fixed so exported batches diff cleanly. Money columns are
// rounded to cents; geometric columns keep four decimals.
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format {
	return FormatCSV
}

// csvColumns is the stable export column order.
var csvColumns = []string{
	"scenario",
	"mode",
	"profile",
	"mission_count",
	"fleet_size",
	"duration_days",
	"mission_hours",
	"coverage_rate_km2h",
	"strip_count",
	"cycle_minutes",
	"slack_minutes",
	"revisits_per_year",
	"missions_per_year",
	"per_mission_cost",
	"annual_cost",
	"batch_cost",
	"cost_per_km2",
	"target_price",
	"chosen_price",
	"realized_margin",
	"warnings",
}

// Render writes the header and the report's row
func (f *CSVFormatter) Render(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	if err := cw.Write(f.rowFor(report)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// RenderBatch writes the header and one row per report
func (f *CSVFormatter) RenderBatch(w io.Writer, reports []*Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, report := range reports {
		if err := cw.Write(f.rowFor(report)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (f *CSVFormatter) rowFor(report *Report) []string {
	warnings := ""
	for i, warning := range report.Warnings() {
		if i > 0 {
			warnings += "; "
		}
		warnings += warning
	}

	if c := report.Coverage; c != nil {
		return []string{
			report.Scenario,
			string(report.Mode),
			"",
			"",
			fmt.Sprintf("%d", c.FleetSize),
			cell(c.DurationDays),
			cell(c.MissionHours),
			cell(c.CoverageRateKm2h),
			fmt.Sprintf("%d", c.StripCount),
			cell(c.CycleMinutes),
			cell(c.SlackMinutes),
			fmt.Sprintf("%d", c.RevisitsPerYear),
			fmt.Sprintf("%d", c.MissionsPerYear),
			cents(c.PerMissionCost),
			cents(c.AnnualCost),
			"",
			cents(c.CostPerKm2Year),
			cents(c.TargetAnnualPrice),
			cents(c.ChosenAnnualPrice),
			cell(c.RealizedMargin),
			warnings,
		}
	}

	t := report.Tasking
	return []string{
		report.Scenario,
		string(report.Mode),
		t.ProfileKey,
		fmt.Sprintf("%d", t.MissionCount),
		"",
		cell(t.DurationDays),
		cell(t.MissionHours),
		"",
		"",
		"",
		"",
		"",
		"",
		cents(t.PerMissionCost),
		"",
		cents(t.BatchCost),
		cents(t.CostPerKm2),
		cents(t.TargetMissionPrice),
		cents(t.ChosenMissionPrice),
		cell(t.RealizedMargin),
		warnings,
	}
}

func cell(v float64) string {
	return decimal.NewFromFloat(v).Round(4).String()
}

func cents(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
