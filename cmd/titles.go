package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/recipe"
)

var titlesCmd = &cobra.Command{
	Use:   "titles [catalog]",
	Short: "Title-case every recipe title",
	Long: `Rewrite every recipe title in title case.

Words are capitalized except short articles, conjunctions and prepositions
(a, of, and, with, ...), which stay lowercase unless they are the first or
last word. Runs of whitespace collapse to single spaces.

Requires --yes; the previous catalog is kept as a snapshot.

Examples:
  recipectl titles --yes                   # Update data/recipes.json
  recipectl titles other.json --dry-run    # Preview without writing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTitles,
}

func init() {
	rootCmd.AddCommand(titlesCmd)
}

type titleChange struct {
	Old, New string
}

// normalizeTitles title-cases every recipe and returns what changed
func normalizeTitles(c *catalog.Catalog) (changed []titleChange, unchanged []string) {
	for i := range c.Recipes {
		old := c.Recipes[i].Title
		updated := recipe.TitleCase(old)
		if updated == old {
			unchanged = append(unchanged, old)
			continue
		}
		c.Recipes[i].Title = updated
		changed = append(changed, titleChange{Old: old, New: updated})
	}
	return changed, unchanged
}

func runTitles(cmd *cobra.Command, args []string) error {
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

	printer.Info("Capitalizing recipe titles in: %s", path)

	changed, unchanged := normalizeTitles(c)
	c.Metadata.Stamp(catalog.MetaTitlesUpdatedAt, time.Now())
	c.Metadata[catalog.MetaTitlesChanged] = len(changed)

	if err := saveCatalog(printer, path, c); err != nil {
		return err
	}

	printer.Blank()
	printer.Success("Titles updated successfully!")
	printer.Info("Total recipes: %d", len(c.Recipes))
	printer.Info("Titles changed: %d", len(changed))
	printer.Info("Titles unchanged: %d", len(unchanged))

	printTitleSamples(printer, changed, unchanged, cfg.Report.SampleSize, cfg.UnchangedSampleSize())

	printer.PrintHints("titles")
	return nil
}

func printTitleSamples(printer *output.Printer, changed []titleChange, unchanged []string, nChanged, nUnchanged int) {
	if len(changed) > 0 {
		printer.Header("Sample Changes")
		for i, ch := range changed[:min(nChanged, len(changed))] {
			printer.Print("  %d. '%s' → '%s'", i+1, ch.Old, ch.New)
		}
		if len(changed) > nChanged {
			printer.Print("  ... and %d more changes", len(changed)-nChanged)
		}
	}

	if len(unchanged) > 0 && nUnchanged > 0 {
		printer.Header("Sample Unchanged Titles")
		for i, title := range unchanged[:min(nUnchanged, len(unchanged))] {
			printer.Print("  %d. '%s'", i+1, title)
		}
		if len(unchanged) > nUnchanged {
			printer.Print("  ... and %d more", len(unchanged)-nUnchanged)
		}
	}
}
