package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/issueform"
	"github.com/wwells/Recipes/internal/output"
)

// defaultIssueID is used when a submission is only previewed
const defaultIssueID = "recipe_9999"

var issueCmd = &cobra.Command{
	Use:   "issue <body-file>",
	Short: "Turn an issue form submission into a recipe",
	Long: `Parse the body of a "new recipe" issue form and build the recipe it describes.

The recognized sections are Recipe Title, Recipe URL, Recipe Tags, Custom
Tags and Notes. Tags are normalized and merged with keyword categories
derived from the title.

Without --add the extracted fields and the recipe JSON are printed. With
--add the recipe is validated, numbered after the highest existing id and
appended to the catalog (requires --yes).

Examples:
  recipectl issue body.md                      # Preview the recipe
  recipectl issue body.md --id recipe_0042     # Preview with a given id
  recipectl issue body.md --add --yes          # Append it to the catalog`,
	Args: cobra.ExactArgs(1),
	RunE: runIssue,
}

func init() {
	rootCmd.AddCommand(issueCmd)

	issueCmd.Flags().String("id", defaultIssueID, "recipe id used for the preview")
	issueCmd.Flags().Bool("add", false, "append the recipe to the catalog")
}

func runIssue(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	id, _ := cmd.Flags().GetString("id")
	add, _ := cmd.Flags().GetBool("add")

	body, err := os.ReadFile(args[0])
	if errors.Is(err, os.ErrNotExist) {
		return output.NewError(fmt.Sprintf("issue body not found: %s", args[0]), nil, "Save the issue body to a file and pass its path")
	}
	if err != nil {
		return output.NewError(fmt.Sprintf("could not read %s", args[0]), err, "")
	}

	sub := issueform.NewParser().Parse(string(body))

	printer.Header("Extracted Fields")
	table := printer.Table([]string{"FIELD", "VALUE"})
	for _, f := range issueform.Fields {
		table.AddRow([]string{string(f), sub.Get(f)})
	}
	table.Render()

	if !add {
		r := issueform.NewBuilder().Build(sub, id)
		printer.Header("Generated Recipe")
		return printer.JSON(r)
	}

	return addIssueRecipe(printer, sub)
}

func addIssueRecipe(printer *output.Printer, sub issueform.Submission) error {
	path := cfg.Catalog.Path

	c, err := loadCatalog(path)
	if err != nil {
		return err
	}

	r := issueform.NewBuilder().Build(sub, c.NextID())

	if problems := catalog.NewValidator().Recipe(r); len(problems) > 0 {
		printer.Header("Problems")
		table := printer.Table([]string{"FIELD", "PROBLEM"})
		for _, p := range problems {
			table.AddRow([]string{p.Field, p.Message})
		}
		table.Render()
		return output.NewError("submission is not a valid recipe", nil, "Fix the issue form fields and try again")
	}

	for _, existing := range c.Recipes {
		if existing.URL == r.URL {
			printer.Warning("%s already links to %s", existing.ID, r.URL)
			break
		}
	}

	if !confirmed() {
		cancelWrite(printer, path)
		return nil
	}

	if err := c.Add(r); err != nil {
		return err
	}
	c.Metadata.Stamp(catalog.MetaRecipeAddedAt, time.Now())
	c.Metadata[catalog.MetaTotalTags] = len(c.Tags)

	if err := saveCatalog(printer, path, c); err != nil {
		return err
	}

	printer.Header("Added Recipe")
	if err := printer.JSON(r); err != nil {
		return err
	}
	printer.Success("Added %s to %s", r.ID, path)
	printer.PrintHints("issue")
	return nil
}
