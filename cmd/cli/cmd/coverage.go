// Package cmd - coverage command
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stratocost/adapters/scenario"
	"stratocost/core/coverage"
	"stratocost/core/output"
	"stratocost/core/params"
	"stratocost/internal/logging"
)

var (
	coverageFormat string
	coverageOut    string
)

// coverageCmd represents the coverage command
var coverageCmd = &cobra.Command{
	Use:   "coverage [scenario files]",
	Short: "Estimate a continuous-coverage subscription",
	Long: `Compute pass geometry, fleet sizing, annual cost, and subscription
pricing for one or more scenario files.

Examples:
  stratocost coverage lakefront.scost
  stratocost coverage --format json lakefront.scost
  stratocost coverage --format csv --out fleet.csv north.scost south.scost`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCoverage,
}

func init() {
	coverageCmd.Flags().StringVarP(&coverageFormat, "format", "f", "", "output format (cli, json, csv, pdf)")
	coverageCmd.Flags().StringVarP(&coverageOut, "out", "o", "", "write output to a file instead of stdout")
}

func runCoverage(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	var reports []*output.Report
	for _, path := range args {
		scenarios, err := scenario.Load(path)
		if err != nil {
			return err
		}

		for _, sc := range scenarios {
			// The command selects the mode regardless of what the
			// scenario declares, so subscription validation applies.
			sc.Raw[params.FieldMode] = string(params.ModeSubscription)

			p, err := params.Build(sc.Raw)
			if err != nil {
				return err
			}

			result, err := coverage.Compute(p)
			if err != nil {
				return err
			}

			logging.Debug("computed coverage estimate",
				zap.String("scenario", sc.Name),
				zap.Int("fleet_size", result.FleetSize),
				zap.Float64("annual_cost", result.AnnualCost))

			reports = append(reports, &output.Report{
				Scenario:   sc.Name,
				Mode:       params.ModeSubscription,
				Parameters: p,
				Coverage:   result,
				Metadata:   metadata(startTime),
			})
		}
	}

	return renderReports(reports, coverageFormat, coverageOut)
}

func metadata(startTime time.Time) output.Metadata {
	return output.Metadata{
		Timestamp: startTime.UTC().Format(time.RFC3339),
		Duration:  time.Since(startTime).Round(time.Microsecond).String(),
		Version:   "0.1.0",
	}
}
