// Package cmd provides the CLI commands for stratocost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stratocost/internal/config"
	"stratocost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stratocost",
	Short: "Cost and capacity planning for stratospheric imaging coverage",
	Long: `stratocost is a deterministic costing and capacity-planning engine for
aerial and stratospheric imaging coverage services.

Given an area of interest, a sensor and platform configuration, and a
service mode, it derives pass geometry, fleet sizing, operating cost, and
a sale price at the target gross margin.

Examples:
  stratocost coverage lakefront.scost
  stratocost tasking --missions 12 --profile express pipeline.scost
  stratocost coverage --format csv fleet/*.scost`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stratocost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(taskingCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stratocost version 0.1.0")
	},
}
