package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Display the effective recipectl configuration after applying the config
file, RECIPECTL_* environment variables and flags.

Examples:
  recipectl config                # Show all config
  recipectl config --path         # Show config file path
  recipectl config --json         # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("path", false, "show config file path")
	configCmd.Flags().Bool("json", false, "output as JSON")
}

func runConfig(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	showPath, _ := cmd.Flags().GetBool("path")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if showPath {
		if cfg.File == "" {
			printer.Info("No config file found (using defaults)")
		} else {
			printer.Info("Config file: %s", cfg.File)
		}
		return nil
	}

	if jsonOutput {
		return printer.JSON(cfg)
	}

	printer.Header("Current Configuration")

	snapshotsDir := cfg.Snapshots.Dir
	if snapshotsDir == "" {
		snapshotsDir = "(next to catalog)"
	}

	table := printer.Table([]string{"KEY", "VALUE"})
	table.AddRow([]string{"catalog.path", cfg.Catalog.Path})
	table.AddRow([]string{"convert.input", cfg.Convert.Input})
	table.AddRow([]string{"snapshots.dir", snapshotsDir})
	table.AddRow([]string{"confirm.assume_yes", strconv.FormatBool(cfg.Confirm.AssumeYes)})
	table.AddRow([]string{"report.sample_size", strconv.Itoa(cfg.Report.SampleSize)})
	table.AddRow([]string{"logging.level", cfg.Logging.Level})
	table.AddRow([]string{"logging.format", cfg.Logging.Format})
	table.AddRow([]string{"output.colors", strconv.FormatBool(cfg.Output.Colors)})
	table.Render()

	printer.Blank()
	printer.Info("Snapshot index: %s", newStore(cfg.Catalog.Path).IndexPath())

	printer.PrintHints("config")
	return nil
}
