package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/workflow"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>...",
	Short: "Sanity-check GitHub workflow files",
	Long: `Run quick checks over GitHub Actions workflow files:

  - tab characters and odd indentation
  - missing name:, on: or jobs: keys
  - YAML syntax errors

Findings are warnings unless --strict is given. A file that cannot be read
always fails.

Examples:
  recipectl lint .github/workflows/add-recipe.yml
  recipectl lint --strict .github/workflows/*.yml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().Bool("strict", false, "fail when any issue is found")
}

func runLint(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	strict, _ := cmd.Flags().GetBool("strict")

	reports, err := workflow.LintFiles(cmd.Context(), args)
	if err != nil {
		return err
	}

	unreadable, findings := 0, 0
	for _, r := range reports {
		printer.Header("Validating " + r.Path)

		if r.Err != nil {
			printer.Error("%v", r.Err)
			unreadable++
			continue
		}

		printer.Info("Total lines: %d", r.Lines)
		for _, f := range r.Findings {
			printer.Print("  %s %s", printer.Mark(false), f)
		}
		findings += len(r.Findings)

		if r.StructureOK() {
			printer.Success("Basic structure looks good")
		}
		if r.Clean() {
			printer.Success("No issues found")
		}
	}

	if unreadable > 0 {
		return output.NewError(fmt.Sprintf("could not read %d of %d file(s)", unreadable, len(reports)), nil, "Check the file paths")
	}
	if strict && findings > 0 {
		return output.NewError(fmt.Sprintf("%d issue(s) found", findings), nil, "")
	}
	return nil
}
