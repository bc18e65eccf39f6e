// Package cmd contains all CLI commands for recipectl
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/config"
	"github.com/wwells/Recipes/internal/output"
	"github.com/wwells/Recipes/internal/snapshot"
)

var (
	cfgFile     string
	verbose     bool
	dryRun      bool
	assumeYes   bool
	quiet       bool
	colorMode   string
	catalogPath string
	cfg         *config.Config
	logger      *slog.Logger
	version     = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recipectl",
	Short: "Recipe catalog maintenance CLI",
	Long: `recipectl maintains a personal recipe catalog stored as a single JSON document.

Each command performs one batch transformation of the catalog. Every rewrite
of an existing catalog keeps the previous version as a dated, read-only
snapshot that can be listed, verified and restored.

Example usage:
  recipectl convert export.csv       # Build the catalog from a Pocket export
  recipectl titles --yes             # Title-case every recipe title
  recipectl tags --yes               # Rebuild the tag list from recipe tags
  recipectl issue body.md --add -y   # Add a recipe from an issue form
  recipectl lint .github/workflows/*.yml
  recipectl snapshots list           # Show saved catalog versions`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .recipectl.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (default data/recipes.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "show what would be written without writing")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "replace existing files without asking")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, or never")

	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	if _, err := output.ParseColorMode(colorMode); err != nil {
		return output.NewError("invalid --color value", err, "Use auto, always, or never")
	}

	var err error
	cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return output.NewError("could not load configuration", err, "Check .recipectl.yaml syntax or use --config flag")
	}

	logger = newLogger(cmd.ErrOrStderr())

	logger.Debug("configuration loaded",
		"config_file", cfg.File,
		"catalog", cfg.Catalog.Path,
		"snapshots_dir", cfg.Snapshots.Dir,
		"dry_run", dryRun,
	)

	return nil
}

// newLogger builds the slog logger from config and global flags
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	default:
		_ = level.UnmarshalText([]byte(cfg.Logging.Level))
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newPrinter creates a printer for cmd honoring --color and --quiet
func newPrinter(cmd *cobra.Command) *output.Printer {
	mode, _ := output.ParseColorMode(colorMode)
	colors := true
	if cfg != nil {
		colors = cfg.Output.Colors
	}
	return output.NewPrinterTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: colors,
		Quiet:        quiet,
	})
}

// ReportError prints err the way commands report failures and returns the
// process exit code
func ReportError(err error) int {
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		cliErr = &output.CLIError{Summary: err.Error(), ExitCode: output.ExitGeneral}
	}
	newPrinter(rootCmd).FormatError(cliErr)
	return cliErr.ExitCode
}

// confirmed reports whether replacing an existing file was approved.
// Dry runs never write, so they need no approval.
func confirmed() bool {
	return dryRun || cfg.Confirm.AssumeYes
}

// cancelWrite tells the user an existing file was left alone
func cancelWrite(printer *output.Printer, path string) {
	printer.Warning("%s already exists and would be replaced", path)
	printer.Info("Re-run with --yes to continue; the current version is kept as a snapshot.")
	printer.Print("Cancelled. Your original file is unchanged.")
}

// catalogArg returns the catalog path from the positional argument or config
func catalogArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Catalog.Path
}

// newStore returns the snapshot store for a catalog file
func newStore(path string) *snapshot.Store {
	return snapshot.NewStore(path, cfg.Snapshots.Dir, logger, dryRun)
}

// loadCatalog reads the catalog, mapping failures to user-facing errors
func loadCatalog(path string) (*catalog.Catalog, error) {
	c, err := catalog.Load(path)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, output.NewError(
			fmt.Sprintf("catalog not found: %s", path),
			nil,
			"Run 'recipectl convert' to create it, or pass the catalog path",
		)
	}
	if err != nil {
		return nil, output.NewError(fmt.Sprintf("could not read catalog %s", path), err, "")
	}
	logger.Debug("catalog loaded", "path", path, "recipes", len(c.Recipes))
	return c, nil
}

// saveCatalog encodes c and writes it through the snapshot store
func saveCatalog(printer *output.Printer, path string, c *catalog.Catalog) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}

	store := newStore(path)
	parent, err := store.Write(data)
	if err != nil {
		return output.NewError(fmt.Sprintf("could not write catalog %s", path), err, "")
	}

	if parent != nil {
		printer.Info("Snapshot saved: %s", store.Path(*parent))
	}
	if dryRun {
		printer.Warning("Dry run: %s was not written", path)
	}
	return nil
}
