package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/output"
)

var snapshotsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify snapshot integrity",
	Long: `Verify every snapshot recorded in the index by checking:

  - The snapshot file exists
  - Its size matches the index
  - Its SHA256 checksum matches the index

Examples:
  recipectl snapshots verify`,
	Args: cobra.NoArgs,
	RunE: runSnapshotsVerify,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsVerifyCmd)
}

func runSnapshotsVerify(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	store := newStore(cfg.Catalog.Path)

	printer.Header("Verifying Snapshots")
	printer.Info("Index: %s", store.IndexPath())
	printer.Blank()

	checks, err := store.Verify()
	if err != nil {
		return output.NewError("could not read snapshot index", err, "")
	}
	if len(checks) == 0 {
		printer.Warning("No snapshots found")
		return nil
	}

	failed := 0
	for _, c := range checks {
		if c.OK() {
			printer.Print("  %s %s", printer.Mark(true), c.Entry.File)
			continue
		}
		failed++
		printer.Print("  %s %s: %v", printer.Mark(false), c.Entry.File, c.Err)
	}
	printer.Blank()

	if failed > 0 {
		return &output.CLIError{
			Summary:    fmt.Sprintf("%d of %d snapshot(s) failed verification", failed, len(checks)),
			Suggestion: "Do not restore from the failed snapshots",
			ExitCode:   output.ExitGeneral,
		}
	}

	printer.Success("All %d snapshot(s) verified", len(checks))
	printer.PrintHints("snapshots verify")
	return nil
}
