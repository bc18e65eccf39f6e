package issueform

import (
	"strings"
	"time"

	"github.com/wwells/Recipes/internal/recipe"
)

// Builder turns submissions into catalog recipes
type Builder struct {
	categorizer *recipe.Categorizer
	now         func() time.Time
}

// NewBuilder creates a builder using the default category keywords
func NewBuilder() *Builder {
	return &Builder{
		categorizer: recipe.NewCategorizer(),
		now:         time.Now,
	}
}

// Build creates the recipe for sub with the given id. Tags are the
// normalized union of the chosen tags, the custom tags and the keyword
// categories of the title.
func (b *Builder) Build(sub Submission, id string) recipe.Recipe {
	title := strings.TrimSpace(sub.Get(FieldTitle))
	url := strings.TrimSpace(sub.Get(FieldURL))

	tags := recipe.MergeTags(
		recipe.ParseTags(sub.Get(FieldTags)),
		recipe.ParseTags(sub.Get(FieldCustomTags)),
		b.categorizer.Categorize(title),
	)

	return recipe.Recipe{
		ID:        id,
		Title:     title,
		URL:       url,
		TimeAdded: b.now().Unix(),
		Tags:      tags,
		Source:    recipe.ExtractSource(url),
		Notes:     sub.Get(FieldNotes),
	}
}
