// Package catalog reads, updates and encodes the recipe catalog document
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/wwells/Recipes/internal/recipe"
)

// Metadata keys written by recipectl
const (
	MetaTotalRecipes    = "total_recipes"
	MetaTotalTags       = "total_tags"
	MetaConvertedAt     = "converted_at"
	MetaSourceFile      = "source_file"
	MetaTitlesUpdatedAt = "titles_updated_at"
	MetaTitlesChanged   = "titles_changed"
	MetaTagsUpdatedAt   = "tags_updated_at"
	MetaRecipeAddedAt   = "recipe_added_at"
)

// ErrNotFound is returned by Load when the catalog file does not exist
var ErrNotFound = errors.New("catalog not found")

// Metadata is the free-form metadata object of the catalog
type Metadata map[string]any

// Catalog is the whole recipe document
type Catalog struct {
	Recipes  []recipe.Recipe `json:"recipes"`
	Tags     []string        `json:"tags"`
	Metadata Metadata        `json:"metadata"`
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		Recipes:  []recipe.Recipe{},
		Tags:     []string{},
		Metadata: Metadata{},
	}
}

// Load reads a catalog from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a catalog document
func Decode(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Recipes == nil {
		c.Recipes = []recipe.Recipe{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Metadata == nil {
		c.Metadata = Metadata{}
	}
	return &c, nil
}

// Encode renders the catalog as 2-space indented JSON. Non-ASCII text and
// HTML characters are written as-is.
func (c *Catalog) Encode() ([]byte, error) {
	for i := range c.Recipes {
		if c.Recipes[i].Tags == nil {
			c.Recipes[i].Tags = []string{}
		}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Metadata == nil {
		c.Metadata = Metadata{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Vocabulary returns the sorted union of all recipe tags
func (c *Catalog) Vocabulary() []string {
	set := make(map[string]struct{})
	for _, r := range c.Recipes {
		for _, t := range r.Tags {
			set[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// TagDiff describes how the document tag list changed
type TagDiff struct {
	Added   []string
	Removed []string
	// Changed is true when the stored list differed in any way, including order
	Changed bool
}

// SyncTags replaces the document tag list with the recipe vocabulary
func (c *Catalog) SyncTags() TagDiff {
	old := c.Tags
	current := c.Vocabulary()
	c.Tags = current

	return TagDiff{
		Added:   difference(current, old),
		Removed: difference(old, current),
		Changed: !slices.Equal(old, current),
	}
}

// difference returns the sorted elements of a that are not in b
func difference(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	out := []string{}
	seen := make(map[string]bool)
	for _, s := range a {
		if !inB[s] && !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	sort.Strings(out)
	return out
}

// TagCount is the number of recipes using a tag
type TagCount struct {
	Tag   string
	Count int
}

// TagCounts returns usage counts for every tag, most used first; ties are
// broken alphabetically
func (c *Catalog) TagCounts() []TagCount {
	counts := make(map[string]int)
	for _, r := range c.Recipes {
		for _, t := range r.Tags {
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// NextID returns the id following the highest existing recipe id
func (c *Catalog) NextID() string {
	highest := 0
	for _, r := range c.Recipes {
		if n, ok := recipe.ParseID(r.ID); ok && n > highest {
			highest = n
		}
	}
	return recipe.FormatID(highest + 1)
}

// Find returns the recipe with the given id
func (c *Catalog) Find(id string) (*recipe.Recipe, bool) {
	for i := range c.Recipes {
		if c.Recipes[i].ID == id {
			return &c.Recipes[i], true
		}
	}
	return nil, false
}

// Add appends a recipe and refreshes the tag vocabulary and recipe count
func (c *Catalog) Add(r recipe.Recipe) error {
	if _, exists := c.Find(r.ID); exists {
		return fmt.Errorf("recipe %s already exists", r.ID)
	}
	c.Recipes = append(c.Recipes, r)
	c.SyncTags()
	if c.Metadata == nil {
		c.Metadata = Metadata{}
	}
	c.Metadata[MetaTotalRecipes] = len(c.Recipes)
	return nil
}

// Stamp records the current time under key as an RFC 3339 timestamp
func (m Metadata) Stamp(key string, now time.Time) {
	m[key] = now.Format(time.RFC3339)
}
