package ingest

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/recipe"
)

func newTestPipeline() *Pipeline {
	p := NewPipeline(slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return p
}

func TestBuildRecipe_Example(t *testing.T) {
	p := newTestPipeline()

	r, err := p.BuildRecipe(1, Row{
		Title:     "Best Chocolate Cake – Food Blog",
		URL:       "https://www.example.com/cake",
		TimeAdded: "1700000000",
		Tags:      "Dessert, Cake",
	})
	require.NoError(t, err)

	assert.Equal(t, recipe.Recipe{
		ID:        "recipe_0001",
		Title:     "Best Chocolate Cake",
		URL:       "https://www.example.com/cake",
		TimeAdded: 1700000000,
		Tags:      []string{"cake", "desserts"},
		Source:    "example.com",
	}, r)
}

func TestBuildRecipe_Defaults(t *testing.T) {
	p := newTestPipeline()

	r, err := p.BuildRecipe(7, Row{Title: "https://bare.example/", URL: "  https://bare.example/  "})
	require.NoError(t, err)
	assert.Equal(t, "recipe_0007", r.ID)
	assert.Equal(t, recipe.UntitledTitle, r.Title)
	assert.Equal(t, "https://bare.example/", r.URL)
	assert.Equal(t, int64(0), r.TimeAdded)
	assert.Equal(t, []string{}, r.Tags)
	assert.Equal(t, "bare.example", r.Source)
}

func TestBuildRecipe_RejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want string
	}{
		{"empty url", Row{Title: "Note to self"}, "record 4: url is required"},
		{"relative url", Row{Title: "Stew", URL: "not-a-url"}, "record 4: url must be an absolute URL"},
		{"negative time", Row{Title: "Old one", URL: "https://x.com/b", TimeAdded: "-5"}, "record 4: time_added must be at least 0"},
	}

	p := newTestPipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.BuildRecipe(4, tt.row)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestBuildRecipe_InvalidTime(t *testing.T) {
	p := newTestPipeline()
	_, err := p.BuildRecipe(3, Row{Title: "Stew", URL: "https://stew.example/", TimeAdded: "yesterday"})
	assert.ErrorContains(t, err, "record 3")
}

func TestBuild(t *testing.T) {
	p := newTestPipeline()
	rows := []Row{
		{Title: "Chicken Soup | Blog", URL: "https://www.soups.example/", TimeAdded: "10", Tags: "weeknight"},
		{Title: "Sourdough Waffles", URL: "https://bread.example/", TimeAdded: "20", Tags: "Recipies"},
	}

	c, err := p.Build(rows, "data/export.csv")
	require.NoError(t, err)

	require.Len(t, c.Recipes, 2)
	assert.Equal(t, "recipe_0001", c.Recipes[0].ID)
	assert.Equal(t, "recipe_0002", c.Recipes[1].ID)
	assert.Equal(t, []string{"main-dishes", "soups", "weeknight"}, c.Recipes[0].Tags)
	assert.Equal(t, []string{"breads", "recipes"}, c.Recipes[1].Tags)
	assert.Equal(t, []string{"breads", "main-dishes", "recipes", "soups", "weeknight"}, c.Tags)

	assert.Equal(t, 2, c.Metadata[catalog.MetaTotalRecipes])
	assert.Equal(t, "2025-01-02T03:04:05Z", c.Metadata[catalog.MetaConvertedAt])
	assert.Equal(t, "data/export.csv", c.Metadata[catalog.MetaSourceFile])

	assert.Empty(t, catalog.NewValidator().Catalog(c))
}

func TestBuild_StopsOnBadRow(t *testing.T) {
	p := newTestPipeline()
	_, err := p.Build([]Row{{Title: "ok", URL: "https://ok.example/"}, {Title: "bad", URL: "https://bad.example/", TimeAdded: "x"}}, "in.csv")
	assert.ErrorContains(t, err, "record 2")
}

func TestTopTags(t *testing.T) {
	c := catalog.New()
	c.Recipes = []recipe.Recipe{
		{ID: "recipe_0001", Tags: []string{"a", "b"}},
		{ID: "recipe_0002", Tags: []string{"b", "c"}},
		{ID: "recipe_0003", Tags: []string{"b"}},
	}

	top := TopTags(c, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Tag)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "a", top[1].Tag)

	assert.Len(t, TopTags(c, 10), 3)
	assert.Nil(t, TopTags(c, 0))
	assert.Nil(t, TopTags(c, -1))
}
