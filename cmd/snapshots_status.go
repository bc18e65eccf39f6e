package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/snapshot"
)

var snapshotsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show snapshot history status",
	Long: `Show the snapshot history of the catalog:

  - Number of snapshots and their total size
  - Latest snapshot and its age
  - Whether the catalog was changed outside recipectl since its last write

Examples:
  recipectl snapshots status`,
	Args: cobra.NoArgs,
	RunE: runSnapshotsStatus,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsStatusCmd)
}

func runSnapshotsStatus(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	store := newStore(cfg.Catalog.Path)

	printer.Header("Snapshot Status")
	printer.Info("Catalog: %s", store.CatalogPath())
	printer.Blank()

	st, err := store.Status()
	if err != nil {
		return output.NewError("failed checking snapshot status", err, "Check "+store.IndexPath())
	}

	switch {
	case !st.CatalogExists:
		printer.Warning("Catalog does not exist")
	case st.Drifted:
		printer.Warning("Catalog changed outside recipectl since its last write")
	default:
		printer.Success("Catalog matches its last recorded write")
	}

	if !st.HasLatest {
		printer.Warning("No snapshots found")
		printer.PrintHints("snapshots status")
		return nil
	}

	printer.Info("Snapshots:      %d", st.Count)
	printer.Info("Total size:     %s", snapshot.FormatSize(st.TotalSize))
	printer.Info("Latest:         %s", st.Latest.File)
	printer.Info("Created:        %s", st.Latest.CreatedAt.Local().Format("2006-01-02 15:04:05 MST"))
	printer.Info("Age:            %s", formatDuration(st.Age))

	printer.PrintHints("snapshots status")
	return nil
}
