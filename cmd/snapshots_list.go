package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/snapshot"
)

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved catalog versions",
	Long: `List all snapshots of the catalog, oldest first.

Shows the snapshot id, file name, creation time and size.

Examples:
  recipectl snapshots list
  recipectl snapshots list --json`,
	Args: cobra.NoArgs,
	RunE: runSnapshotsList,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd)

	snapshotsListCmd.Flags().Bool("json", false, "output as JSON")
}

func runSnapshotsList(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store := newStore(cfg.Catalog.Path)
	entries, err := store.List()
	if err != nil {
		return &output.CLIError{
			Summary:    "failed listing snapshots",
			Detail:     err.Error(),
			Suggestion: "Check " + store.IndexPath(),
			ExitCode:   output.ExitGeneral,
		}
	}

	if jsonOutput {
		return printer.JSON(entries)
	}

	printer.Header("Catalog Snapshots")
	printer.Info("Catalog: %s", store.CatalogPath())
	printer.Info("Directory: %s", store.Dir())
	printer.Blank()

	if len(entries) == 0 {
		printer.Warning("No snapshots found")
		return nil
	}

	var total int64
	table := printer.Table([]string{"ID", "FILE", "CREATED", "SIZE"})
	for _, e := range entries {
		total += e.Size
		table.AddRow([]string{
			e.ID,
			e.File,
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			snapshot.FormatSize(e.Size),
		})
	}
	table.Render()

	printer.Blank()
	printer.Info("Total: %d snapshot(s), %s", len(entries), snapshot.FormatSize(total))
	printer.PrintHints("snapshots list")
	return nil
}
