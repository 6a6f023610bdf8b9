// Package cmd - profiles command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratocost/core/catalog"
)

// profilesCmd lists the operating profile and platform catalogs
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List operating profiles and platform classes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Operating profiles:")
		fmt.Printf("  %-10s %-16s %9s %9s %9s %9s\n",
			"KEY", "LABEL", "DURATION", "FIXED", "HOURLY", "CONSUM.")
		for _, p := range catalog.Profiles() {
			fmt.Printf("  %-10s %-16s %9.2f %9.2f %9.2f %9.2f\n",
				p.Key, p.Label,
				p.DurationMultiplier, p.FixedCostMultiplier,
				p.HourlyCostMultiplier, p.ConsumablesMultiplier)
		}

		fmt.Println()
		fmt.Println("Platform classes:")
		fmt.Printf("  %-14s %-22s %-6s %12s %10s\n",
			"KEY", "LABEL", "RELAY", "CAPEX", "LIFE DAYS")
		for _, p := range catalog.Platforms() {
			relay := "no"
			if p.Relay {
				relay = "yes"
			}
			fmt.Printf("  %-14s %-22s %-6s %12.0f %10.0f\n",
				p.Key, p.Label, relay, p.PlatformCapex, p.PlatformLifeDays)
		}
	},
}
