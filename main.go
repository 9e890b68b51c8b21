// Package main is the entrypoint for the chartkit CLI.
package main

import (
	"github.com/landsense/chartkit/cmd"
	"github.com/landsense/chartkit/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	cmd.SyncLogger()
	if err != nil {
		contract.LogFatal("Cannot run chartkit", err)
	}
}
