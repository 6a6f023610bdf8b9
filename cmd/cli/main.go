// Package main is the entry point for the stratocost CLI.
package main

import (
	"os"

	"stratocost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
