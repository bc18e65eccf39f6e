package ingest

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/wwells/Recipes/internal/catalog"
	"github.com/wwells/Recipes/internal/recipe"
)

// progressEvery is how often Build logs progress, in records
const progressEvery = 50

// Pipeline cleans and classifies rows into catalog recipes
type Pipeline struct {
	categorizer *recipe.Categorizer
	validator   *catalog.Validator
	logger      *slog.Logger
	now         func() time.Time
}

// NewPipeline creates a pipeline using the default category keywords
func NewPipeline(logger *slog.Logger) *Pipeline {
	return &Pipeline{
		categorizer: recipe.NewCategorizer(),
		validator:   catalog.NewValidator(),
		logger:      logger,
		now:         time.Now,
	}
}

// BuildRecipe converts the row at 1-based position seq into a recipe. Rows
// that would not pass catalog validation are rejected.
func (p *Pipeline) BuildRecipe(seq int, row Row) (recipe.Recipe, error) {
	title := recipe.CleanTitle(row.Title)
	url := strings.TrimSpace(row.URL)

	var timeAdded int64
	if s := strings.TrimSpace(row.TimeAdded); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return recipe.Recipe{}, fmt.Errorf("record %d: invalid time_added %q", seq, row.TimeAdded)
		}
		timeAdded = n
	}

	tags := recipe.MergeTags(
		recipe.ParseTags(row.Tags),
		p.categorizer.Categorize(title),
	)

	r := recipe.Recipe{
		ID:        recipe.FormatID(seq),
		Title:     title,
		URL:       url,
		TimeAdded: timeAdded,
		Tags:      tags,
		Source:    recipe.ExtractSource(url),
	}
	if problems := p.validator.Recipe(r); len(problems) > 0 {
		return recipe.Recipe{}, fmt.Errorf("record %d: %s %s", seq, problems[0].Field, problems[0].Message)
	}
	return r, nil
}

// Build converts rows, in order, into a new catalog. sourceFile is recorded
// in the catalog metadata.
func (p *Pipeline) Build(rows []Row, sourceFile string) (*catalog.Catalog, error) {
	c := catalog.New()

	for i, row := range rows {
		r, err := p.BuildRecipe(i+1, row)
		if err != nil {
			return nil, err
		}
		c.Recipes = append(c.Recipes, r)

		if (i+1)%progressEvery == 0 {
			p.logger.Info("processed recipes", "count", i+1)
		}
	}

	c.SyncTags()
	c.Metadata[catalog.MetaTotalRecipes] = len(c.Recipes)
	c.Metadata.Stamp(catalog.MetaConvertedAt, p.now())
	c.Metadata[catalog.MetaSourceFile] = sourceFile

	p.logger.Debug("catalog built",
		"recipes", len(c.Recipes),
		"tags", len(c.Tags),
		"source_file", sourceFile,
	)

	return c, nil
}

// TopTags returns the n most used tags of c
func TopTags(c *catalog.Catalog, n int) []catalog.TagCount {
	if n <= 0 {
		return nil
	}
	counts := c.TagCounts()
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
