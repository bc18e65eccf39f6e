package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwells/Recipes/internal/catalog"
)

func TestTags_Resync(t *testing.T) {
	setupCommandTest(t)
	c := fixtureCatalog()
	c.Tags = []string{"desserts", "old-tag"}
	writeCatalog(t, testCatalog, c)

	out, _, err := executeCommand(t, "tags", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Added: baking, soups")
	assert.Contains(t, out, "Removed: old-tag")
	assert.Contains(t, out, "Total tags: 3")

	got := readCatalog(t, testCatalog)
	assert.Equal(t, []string{"baking", "desserts", "soups"}, got.Tags)
	assert.EqualValues(t, 3, got.Metadata[catalog.MetaTotalTags])
	assert.NotEmpty(t, got.Metadata[catalog.MetaTagsUpdatedAt])
}

func TestTags_AlreadyUpToDate(t *testing.T) {
	setupCommandTest(t)
	writeCatalog(t, testCatalog, fixtureCatalog())

	out, _, err := executeCommand(t, "tags", "-y")
	require.NoError(t, err)
	assert.Contains(t, out, "No changes needed")
}

func TestTags_Cancelled(t *testing.T) {
	setupCommandTest(t)
	c := fixtureCatalog()
	c.Tags = []string{"stale"}
	writeCatalog(t, testCatalog, c)

	out, _, err := executeCommand(t, "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Equal(t, []string{"stale"}, readCatalog(t, testCatalog).Tags)
}
