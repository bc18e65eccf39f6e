package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/recipe"
	"github.com/wwells/Recipes/internal/snapshot"
)

// testCatalog is the catalog path used by command tests, relative to the
// per-test working directory
const testCatalog = "data/recipes.json"

// setupCommandTest runs the test inside an empty working directory with no
// user config, and returns that directory
func setupCommandTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	return dir
}

// executeCommand runs recipectl with args and returns stdout and stderr
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default so state does not leak
// between executions of the shared command tree
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// fixtureCatalog returns a small consistent catalog
func fixtureCatalog() *catalog.Catalog {
	c := catalog.New()
	c.Recipes = []recipe.Recipe{
		{
			ID:        "recipe_0001",
			Title:     "best chocolate cake",
			URL:       "https://www.foodnetwork.com/recipes/cake",
			TimeAdded: 1700000000,
			Tags:      []string{"baking", "desserts"},
			Source:    "foodnetwork.com",
		},
		{
			ID:        "recipe_0002",
			Title:     "Soup Of The Day",
			URL:       "https://cooking.nytimes.com/recipes/1",
			TimeAdded: 1700000100,
			Tags:      []string{"soups"},
			Source:    "cooking.nytimes.com",
		},
		{
			ID:        "recipe_0003",
			Title:     "Apple Pie",
			URL:       "https://example.com/apple-pie",
			TimeAdded: 0,
			Tags:      []string{"desserts"},
			Source:    "example.com",
		},
	}
	c.SyncTags()
	c.Metadata[catalog.MetaTotalRecipes] = len(c.Recipes)
	return c
}

func writeCatalog(t *testing.T, path string, c *catalog.Catalog) {
	t.Helper()
	data, err := c.Encode()
	require.NoError(t, err)
	writeFile(t, path, string(data))
}

func readCatalog(t *testing.T, path string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(path)
	require.NoError(t, err)
	return c
}

// testStore opens the snapshot store of a catalog for assertions
func testStore(path string) *snapshot.Store {
	return snapshot.NewStore(path, "", slog.New(slog.NewTextHandler(io.Discard, nil)), false)
}
