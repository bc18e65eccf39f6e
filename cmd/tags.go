package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/catalog"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [catalog]",
	Short: "Rebuild the tag list from recipe tags",
	Long: `Recompute the catalog's tag list as the sorted set of tags used by its
recipes, and show how many recipes use each tag.

Requires --yes; the previous catalog is kept as a snapshot.

Examples:
  recipectl tags --yes                 # Update data/recipes.json
  recipectl tags --dry-run             # Show the changes only`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	path := catalogArg(args)

	c, err := loadCatalog(path)
	if err != nil {
		return err
	}
	if !confirmed() {
		cancelWrite(printer, path)
		return nil
	}

	printer.Info("Updating tags list in: %s", path)

	diff := c.SyncTags()
	c.Metadata.Stamp(catalog.MetaTagsUpdatedAt, time.Now())
	c.Metadata[catalog.MetaTotalTags] = len(c.Tags)

	if err := saveCatalog(printer, path, c); err != nil {
		return err
	}

	printer.Blank()
	printer.Success("Tags updated successfully!")
	printer.Info("Total tags: %d", len(c.Tags))
	printer.Info("Total recipes: %d", len(c.Recipes))

	counts := make(map[string]int, len(c.Tags))
	for _, tc := range c.TagCounts() {
		counts[tc.Tag] = tc.Count
	}

	printer.Header("Current Tags")
	table := printer.Table([]string{"TAG", "RECIPES"})
	for _, tag := range c.Tags {
		table.AddRow([]string{tag, strconv.Itoa(counts[tag])})
	}
	table.Render()

	if diff.Changed {
		printer.Header("Changes")
		if len(diff.Added) > 0 {
			printer.Print("  Added: %s", strings.Join(diff.Added, ", "))
		}
		if len(diff.Removed) > 0 {
			printer.Print("  Removed: %s", strings.Join(diff.Removed, ", "))
		}
		if len(diff.Added) == 0 && len(diff.Removed) == 0 {
			printer.Print("  Reordered")
		}
	} else {
		printer.Blank()
		printer.Info("No changes needed - tags list was already up to date.")
	}

	printer.PrintHints("tags")
	return nil
}
