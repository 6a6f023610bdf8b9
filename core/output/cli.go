// Package output - CLI table renderer
package output

import (
	"fmt"
	"io"
)

// CLIFormatter renders a human-readable summary table.
type CLIFormatter struct {
	// Currency prefixes money amounts
	Currency string
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the summary table
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	title := "COVERAGE SUBSCRIPTION ESTIMATE"
	if report.Tasking != nil {
		title = "TASKED MISSION ESTIMATE"
	}

	line(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ %-71s │\n", title)
	if report.Scenario != "" {
		fmt.Fprintf(w, "│ %-71s │\n", truncate("Scenario: "+report.Scenario, 71))
	}
	line(w, "├─────────────────────────────────────────────────────────────────────────┤")

	switch {
	case report.Coverage != nil:
		f.renderCoverage(w, report)
	case report.Tasking != nil:
		f.renderTasking(w, report)
	}

	line(w, "└─────────────────────────────────────────────────────────────────────────┘")

	for _, warning := range report.Warnings() {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	if report.Metadata.Duration != "" {
		fmt.Fprintf(w, "\nComputed in %s\n", report.Metadata.Duration)
	}
	return nil
}

func (f *CLIFormatter) renderCoverage(w io.Writer, report *Report) {
	c := report.Coverage

	row(w, "Coverage rate", number(c.CoverageRateKm2h)+" km²/h")
	row(w, "Strips per pass", fmt.Sprintf("%d", c.StripCount))
	row(w, "Sweep / reposition / cycle", fmt.Sprintf("%s / %s / %s min",
		number(c.SweepMinutes), number(c.RepositionMinutes), number(c.CycleMinutes)))
	row(w, "Revisit slack", number(c.SlackMinutes)+" min")
	row(w, "Revisits per year", fmt.Sprintf("%d", c.RevisitsPerYear))
	row(w, "Annual coverage demand", number(c.AnnualCoverageDemandKm2)+" km²")
	row(w, "Coverage per mission", number(c.CoveragePerMissionKm2)+" km²")
	row(w, "Missions per year", fmt.Sprintf("%d", c.MissionsPerYear))
	line(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Availability", number(c.Availability))
	if c.Relay {
		row(w, "Fleet size", "1 (relay)")
	} else {
		row(w, "Missions per platform-year", fmt.Sprintf("%d", c.MissionsPerPlatformYear))
		row(w, "Revisit fleet floor", fmt.Sprintf("%d", c.MinPlatformsForRevisit))
		row(w, "Fleet size (base / with spares)", fmt.Sprintf("%d / %d", c.BaseFleetSize, c.FleetSize))
	}
	line(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Per-mission cost", money(f.Currency, c.PerMissionCost))
	row(w, "ANNUAL COST", money(f.Currency, c.AnnualCost))
	row(w, "Cost per km² per revisit", money(f.Currency, c.CostPerKm2Revisit))
	row(w, "Cost per km² per year", money(f.Currency, c.CostPerKm2Year))
	line(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Target annual price", money(f.Currency, c.TargetAnnualPrice))
	row(w, "CHOSEN ANNUAL PRICE", money(f.Currency, c.ChosenAnnualPrice))
	row(w, "Realized margin", percent(c.RealizedMargin))
	row(w, "Chosen price per km² per revisit", money(f.Currency, c.ChosenPricePerKm2Revisit))
	row(w, "Chosen price per km² per year", money(f.Currency, c.ChosenPricePerKm2Year))
	row(w, "Target per-mission price", money(f.Currency, c.TargetMissionPrice))
}

func (f *CLIFormatter) renderTasking(w io.Writer, report *Report) {
	t := report.Tasking

	row(w, "Profile", t.ProfileKey)
	row(w, "Missions", fmt.Sprintf("%d", t.MissionCount))
	row(w, "Mission duration", fmt.Sprintf("%s days (%s h)", number(t.DurationDays), number(t.MissionHours)))
	row(w, "Coverage per mission", number(t.CoveragePerMissionKm2)+" km²")
	line(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Per-mission cost", money(f.Currency, t.PerMissionCost))
	row(w, "BATCH COST", money(f.Currency, t.BatchCost))
	row(w, "Cost per km²", money(f.Currency, t.CostPerKm2))
	line(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Target per-mission price", money(f.Currency, t.TargetMissionPrice))
	row(w, "CHOSEN PER-MISSION PRICE", money(f.Currency, t.ChosenMissionPrice))
	row(w, "BATCH PRICE", money(f.Currency, t.BatchChosenPrice))
	row(w, "Realized margin (mission / batch)", fmt.Sprintf("%s / %s",
		percent(t.RealizedMargin), percent(t.BatchRealizedMargin)))
	row(w, "Chosen price per km²", money(f.Currency, t.ChosenPricePerKm2))
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-40s %30s │\n", truncate(label, 40), truncate(value, 30))
}

func line(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
