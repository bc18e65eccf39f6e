package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/recipe"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [name]",
	Short: "List keyword categories",
	Long: `List the categories recipes are tagged with automatically, and the title
keywords that select each one.

Examples:
  recipectl categories                 # List all categories
  recipectl categories desserts        # Show one category
  recipectl categories --json          # Output as JSON`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().Bool("json", false, "output as JSON")
}

func runCategories(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	registry := recipe.NewCategorizer()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	categories := registry.All()
	if len(args) == 1 {
		c, ok := registry.Get(args[0])
		if !ok {
			return unknownCategoryError(args[0], registry.Names())
		}
		categories = []recipe.Category{*c}
	}

	if jsonOutput {
		return printer.JSON(categories)
	}

	printer.Header("Categories")
	table := printer.Table([]string{"CATEGORY", "DESCRIPTION", "KEYWORDS"})
	for _, c := range categories {
		table.AddRow([]string{printer.Bold(c.Name), c.Description, strings.Join(c.Keywords, ", ")})
	}
	table.Render()
	return nil
}

func unknownCategoryError(name string, known []string) error {
	return &output.CLIError{
		Summary:    fmt.Sprintf("unknown category: %s", name),
		Suggestion: "Available categories: " + strings.Join(known, ", "),
		ExitCode:   output.ExitGeneral,
	}
}
