package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/ingest"
	"github.com/wwells/Recipes/internal/output"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input]",
	Short: "Build the catalog from a bookmark export",
	Long: `Convert a Pocket export into the recipe catalog.

Each bookmark becomes a recipe: the title is cleaned of site-name suffixes,
the source domain is taken from the URL, tags are normalized and keyword
categories are added from the title. Recipes are numbered from recipe_0001.

The input defaults to convert.input (data/pocket_export/part_000000.csv).
CSV exports need the columns title, url, time_added and tags; Pocket's HTML
export (ril_export.html) is read as well.

Replacing an existing catalog requires --yes. The replaced catalog is kept
as a snapshot.

Examples:
  recipectl convert                            # Convert the default export
  recipectl convert export.csv --yes           # Replace the existing catalog
  recipectl convert ril_export.html            # Read Pocket's HTML export
  recipectl convert export.txt --format csv    # Force the input format`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("format", string(ingest.FormatAuto), "input format: auto, csv, or html")
	convertCmd.Flags().Int("top", 10, "number of top tags to show")
}

func runConvert(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	formatFlag, _ := cmd.Flags().GetString("format")
	top, _ := cmd.Flags().GetInt("top")

	format, err := ingest.ParseFormat(formatFlag)
	if err != nil {
		return output.NewError("invalid --format value", err, "Use auto, csv, or html")
	}
	if top < 0 {
		return output.NewError(fmt.Sprintf("invalid --top value: %d", top), nil, "Use 0 to hide the top tags table")
	}

	input := cfg.Convert.Input
	if len(args) > 0 {
		input = args[0]
	}
	out := cfg.Catalog.Path

	rows, err := readExport(input, format)
	if err != nil {
		return err
	}

	_, statErr := os.Stat(out)
	exists := statErr == nil
	if exists && !confirmed() {
		cancelWrite(printer, out)
		return nil
	}
	if !exists {
		printer.Info("Creating new file: %s", out)
	}

	printer.Info("Converting %d bookmarks from %s", len(rows), input)

	c, err := ingest.NewPipeline(logger).Build(rows, input)
	if err != nil {
		return output.NewError("conversion failed", err, "Fix the reported row in the export and try again")
	}

	if err := saveCatalog(printer, out, c); err != nil {
		return err
	}

	printer.Blank()
	printer.Success("Conversion complete!")
	printer.Info("Total recipes: %d", len(c.Recipes))
	printer.Info("Total tags: %d", len(c.Tags))
	printer.Info("Output file: %s", out)

	if tops := ingest.TopTags(c, top); len(tops) > 0 {
		printer.Header("Top Tags")
		table := printer.Table([]string{"TAG", "RECIPES"})
		for _, tc := range tops {
			table.AddRow([]string{tc.Tag, strconv.Itoa(tc.Count)})
		}
		table.Render()
	}

	printer.PrintHints("convert")
	return nil
}

// readExport opens and parses the export file
func readExport(path string, format ingest.Format) ([]ingest.Row, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, output.NewError(
			fmt.Sprintf("input file not found: %s", path),
			nil,
			"Make sure the export is in the data/ directory or pass its path",
		)
	}
	if err != nil {
		return nil, output.NewError(fmt.Sprintf("could not open %s", path), err, "")
	}
	defer f.Close()

	rows, err := ingest.Read(f, format.Resolve(path))
	if err != nil {
		return nil, output.NewError(fmt.Sprintf("could not parse %s", path), err, "Use --format to choose the reader explicitly")
	}
	return rows, nil
}
