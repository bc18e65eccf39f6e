// Package main is the entry point for recipectl CLI
package main

import (
	"os"

	"github.com/wwells/Recipes/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ReportError(err))
	}
}
