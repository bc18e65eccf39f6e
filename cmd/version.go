package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/recipe"
	"github.com/wwells/Recipes/internal/snapshot"
)

var (
	commit    = "unknown"
	buildTime = "unknown"
)

// SetBuildInfo sets the commit hash and build time
func SetBuildInfo(c, bt string) {
	commit = c
	buildTime = bt
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, build information, the snapshot index format this
build reads and writes, and the config file in use.

With --quiet only the version string is printed.`,
	RunE: runVersion,
}

// versionInfo is the JSON form of the version output
type versionInfo struct {
	Version      string `json:"version"`
	Commit       string `json:"commit"`
	Built        string `json:"built"`
	GoVersion    string `json:"goVersion"`
	Platform     string `json:"platform"`
	IndexVersion string `json:"indexVersion"`
	Categories   int    `json:"categories"`
	ConfigFile   string `json:"configFile"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	short, _ := cmd.Flags().GetBool("short")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	w := printer.Out()
	if short || printer.IsQuiet() {
		fmt.Fprintln(w, version)
		return nil
	}

	configFile := "(defaults)"
	if cfg != nil && cfg.File != "" {
		configFile = cfg.File
	}

	info := versionInfo{
		Version:      version,
		Commit:       commit,
		Built:        buildTime,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		IndexVersion: snapshot.IndexVersion,
		Categories:   len(recipe.NewCategorizer().Names()),
		ConfigFile:   configFile,
	}

	if jsonOutput {
		return printer.JSON(info)
	}

	fmt.Fprintf(w, "recipectl version %s\n", info.Version)
	fmt.Fprintf(w, "  commit:         %s\n", info.Commit)
	fmt.Fprintf(w, "  built:          %s\n", info.Built)
	fmt.Fprintf(w, "  go version:     %s\n", info.GoVersion)
	fmt.Fprintf(w, "  platform:       %s\n", info.Platform)
	fmt.Fprintf(w, "  snapshot index: v%s\n", info.IndexVersion)
	fmt.Fprintf(w, "  categories:     %d\n", info.Categories)
	fmt.Fprintf(w, "  config:         %s\n", info.ConfigFile)
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("short", false, "print version string only")
	versionCmd.Flags().Bool("json", false, "output as JSON")
}
