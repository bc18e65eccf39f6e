package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:     "snapshots",
	Aliases: []string{"snap"},
	Short:   "Inspect and restore saved catalog versions",
	Long: `Every command that rewrites an existing catalog first saves the current
file as a read-only snapshot named <catalog>.backup.<YYYYMMDD_HHMMSS>. The
snapshots and their checksums are recorded in <catalog>.snapshots.json,
next to the catalog unless snapshots.dir is set. Use --catalog to pick
another catalog.

Example usage:
  recipectl snapshots list                 # List saved versions
  recipectl snapshots status               # Latest snapshot and drift check
  recipectl snapshots verify               # Check every snapshot's checksum
  recipectl snapshots restore <id> --yes   # Make a snapshot current again`,
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}

	hours := int(d.Hours())
	if hours < 24 {
		return fmt.Sprintf("%dh %dm", hours, int(d.Minutes())%60)
	}

	days := hours / 24
	remainingHours := hours % 24
	parts := []string{fmt.Sprintf("%dd", days)}
	if remainingHours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", remainingHours))
	}
	return strings.Join(parts, " ")
}
