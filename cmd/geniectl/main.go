// Package main is the entry point for the geniectl CLI.
// The CLI is the developer terminal tool for inspecting jobs running on a
// Genie-style job orchestration service.
package main

import (
	"os"

	"genieclient/cmd/geniectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
