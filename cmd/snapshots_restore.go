package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/snapshot"
)

var snapshotsRestoreCmd = &cobra.Command{
	Use:   "restore <id|file>",
	Short: "Make a snapshot the current catalog",
	Long: `Restore the catalog from a snapshot.

The restore process:
  1. Verifies the snapshot checksum
  2. Saves the current catalog as a new snapshot
  3. Writes the snapshot content as the catalog

Nothing is lost: the replaced catalog can itself be restored later.
Requires --yes.

Examples:
  recipectl snapshots restore 01JD8Q3V7C2M6N0K4XG5T1Y9ZB --yes
  recipectl snapshots restore recipes.json.backup.20260104_093000 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotsRestore,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsRestoreCmd)
}

func runSnapshotsRestore(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	store := newStore(cfg.Catalog.Path)

	printer.Header("Restoring Catalog")
	printer.Info("Catalog: %s", store.CatalogPath())
	printer.Info("Snapshot: %s", args[0])

	if !confirmed() {
		cancelWrite(printer, store.CatalogPath())
		return nil
	}

	res, err := store.Restore(args[0])
	if errors.Is(err, snapshot.ErrUnknownSnapshot) {
		return &output.CLIError{
			Summary:    fmt.Sprintf("unknown snapshot: %s", args[0]),
			Suggestion: "Run 'recipectl snapshots list' to see available snapshots",
			ExitCode:   output.ExitGeneral,
		}
	}
	if err != nil {
		return output.NewError("restore failed", err, "Run 'recipectl snapshots verify' to check the snapshots")
	}

	printer.Blank()
	if dryRun {
		printer.Warning("Dry run: %s was not written", store.CatalogPath())
		return nil
	}
	printer.Success("Restored %s (%s)", res.Restored.File, res.Restored.ID)
	if res.Saved != nil {
		printer.Info("Previous catalog saved as %s", res.Saved.File)
	}
	printer.PrintHints("snapshots restore")
	return nil
}
