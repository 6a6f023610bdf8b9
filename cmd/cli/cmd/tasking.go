// Package cmd - tasking command
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stratocost/adapters/scenario"
	"stratocost/core/output"
	"stratocost/core/params"
	"stratocost/core/tasking"
	"stratocost/internal/logging"
)

var (
	taskingFormat   string
	taskingOut      string
	taskingMissions string
	taskingProfile  string
)

// taskingCmd represents the tasking command
var taskingCmd = &cobra.Command{
	Use:   "tasking [scenario files]",
	Short: "Estimate a batch of discrete tasked missions",
	Long: `Compute per-mission and batch cost and pricing for tasked missions
flown under an operating profile.

The --missions and --profile flags override the scenario's tasking block.

Examples:
  stratocost tasking pipeline.scost
  stratocost tasking --missions 12 --profile express pipeline.scost
  stratocost tasking --format pdf --out quote.pdf pipeline.scost`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTasking,
}

func init() {
	taskingCmd.Flags().StringVarP(&taskingFormat, "format", "f", "", "output format (cli, json, csv, pdf)")
	taskingCmd.Flags().StringVarP(&taskingOut, "out", "o", "", "write output to a file instead of stdout")
	taskingCmd.Flags().StringVarP(&taskingMissions, "missions", "m", "", "mission count (overrides scenario)")
	taskingCmd.Flags().StringVarP(&taskingProfile, "profile", "p", "", "operating profile (overrides scenario)")
}

func runTasking(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	var reports []*output.Report
	for _, path := range args {
		scenarios, err := scenario.Load(path)
		if err != nil {
			return err
		}

		for _, sc := range scenarios {
			sc.Raw[params.FieldMode] = string(params.ModeTasking)
			if taskingMissions != "" {
				sc.Raw[params.FieldMissionCount] = taskingMissions
			}
			if taskingProfile != "" {
				sc.Raw[params.FieldProfileKey] = taskingProfile
			}

			p, err := params.Build(sc.Raw)
			if err != nil {
				return err
			}

			result, err := tasking.Compute(p, p.MissionCount, p.ProfileKey)
			if err != nil {
				return err
			}

			logging.Debug("computed tasking estimate",
				zap.String("scenario", sc.Name),
				zap.String("profile", result.ProfileKey),
				zap.Float64("batch_cost", result.BatchCost))

			reports = append(reports, &output.Report{
				Scenario:   sc.Name,
				Mode:       params.ModeTasking,
				Parameters: p,
				Tasking:    result,
				Metadata:   metadata(startTime),
			})
		}
	}

	return renderReports(reports, taskingFormat, taskingOut)
}
