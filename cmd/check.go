package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check [catalog]",
	Short: "Verify catalog invariants",
	Long: `Check that the catalog is consistent:

  - every recipe has a recipe_ id, a title, a valid URL and a source
  - recipe tags are lowercase and unique
  - recipe ids are unique
  - the tag list equals the set of tags used by recipes

Also warns when the catalog was edited outside recipectl since its last
write. Any problem makes the command fail.

Examples:
  recipectl check
  recipectl check other.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	path := catalogArg(args)

	c, err := loadCatalog(path)
	if err != nil {
		return err
	}

	if st, err := newStore(path).Status(); err != nil {
		logger.Warn("could not read snapshot index", "error", err)
	} else if st.Drifted {
		printer.Warning("%s changed outside recipectl since its last write", path)
	}

	problems := catalog.NewValidator().Catalog(c)
	if len(problems) > 0 {
		printer.Header("Problems")
		table := printer.Table([]string{"RECIPE", "FIELD", "PROBLEM"})
		for _, p := range problems {
			table.AddRow([]string{p.RecipeID, p.Field, p.Message})
		}
		table.Render()

		return output.NewError(
			fmt.Sprintf("%d problem(s) found in %s", len(problems), path),
			nil,
			"Run 'recipectl tags' to resync the tag list, and fix recipe fields by hand",
		)
	}

	printer.Success("Catalog OK: %d recipes, %d tags", len(c.Recipes), len(c.Tags))
	printer.PrintHints("check")
	return nil
}
