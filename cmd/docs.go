package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/wwells/Recipes/internal/output"
)

var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate man pages or markdown reference",
	Hidden: true,
	Long: `Generate reference documentation for every recipectl command.

Examples:
  recipectl docs --format man --output ./man
  recipectl docs --format markdown --output ./docs/cli`,
	Args: cobra.NoArgs,
	RunE: runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().String("format", "markdown", "output format: man or markdown")
	docsCmd.Flags().StringP("output", "o", "docs/cli", "output directory")
}

func runDocs(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	format, _ := cmd.Flags().GetString("format")
	dir, _ := cmd.Flags().GetString("output")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	switch format {
	case "man":
		header := &doc.GenManHeader{Title: "RECIPECTL", Section: "1"}
		if err := doc.GenManTree(root, header, dir); err != nil {
			return fmt.Errorf("generating man pages: %w", err)
		}
	case "markdown", "md":
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			return fmt.Errorf("generating markdown: %w", err)
		}
	default:
		return output.NewError(fmt.Sprintf("unknown docs format: %s", format), nil, "Use man or markdown")
	}

	printer.Success("Documentation written to %s", dir)
	return nil
}
