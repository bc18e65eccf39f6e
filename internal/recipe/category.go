package recipe

import (
	"slices"
	"strings"
)

// Category is an automatic tag assigned from keywords found in a title
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Matches reports whether any keyword occurs in title, ignoring case
func (c *Category) Matches(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range c.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// defaultCategories is the fixed keyword table, in reporting order
var defaultCategories = []Category{
	{
		Name:        "desserts",
		Description: "Cakes, pies, cookies and other sweets",
		Keywords:    []string{"cake", "pie", "cookie", "brownie", "pudding", "ice cream", "shortcake", "crumble", "cobbler", "cupcake", "frosting", "filling"},
	},
	{
		Name:        "breads",
		Description: "Breads and griddle cakes",
		Keywords:    []string{"bread", "sourdough", "focaccia", "waffle", "pancake", "muffin", "biscuit"},
	},
	{
		Name:        "main-dishes",
		Description: "Meat, fish and pasta mains",
		Keywords:    []string{"chicken", "beef", "pork", "salmon", "fish", "steak", "ribs", "meatball", "lasagna", "pasta", "risotto", "casserole", "stir-fry"},
	},
	{
		Name:        "soups",
		Description: "Soups and stews",
		Keywords:    []string{"soup", "stew", "chili", "broth"},
	},
	{
		Name:        "salads",
		Description: "Salads and slaws",
		Keywords:    []string{"salad", "slaw"},
	},
	{
		Name:        "sides",
		Description: "Vegetable, potato and rice sides",
		Keywords:    []string{"potato", "rice", "bean", "vegetable", "asparagus", "broccoli", "carrot", "spinach", "green bean"},
	},
	{
		Name:        "breakfast",
		Description: "Breakfast and brunch dishes",
		Keywords:    []string{"breakfast", "omelette", "frittata", "strata", "eggs benedict"},
	},
	{
		Name:        "appetizers",
		Description: "Dips, spreads and starters",
		Keywords:    []string{"appetizer", "dip", "spread", "bruschetta"},
	},
}

// Categorizer assigns category tags from a static keyword registry
type Categorizer struct {
	categories []Category
	byName     map[string]*Category
}

// NewCategorizer creates a categorizer over its own copy of the default
// keyword table
func NewCategorizer() *Categorizer {
	c := &Categorizer{
		categories: slices.Clone(defaultCategories),
		byName:     make(map[string]*Category, len(defaultCategories)),
	}
	for i := range c.categories {
		c.categories[i].Keywords = slices.Clone(c.categories[i].Keywords)
		c.byName[c.categories[i].Name] = &c.categories[i]
	}
	return c
}

// All returns every category in registry order
func (c *Categorizer) All() []Category {
	return c.categories
}

// Get returns a category by name
func (c *Categorizer) Get(name string) (*Category, bool) {
	cat, ok := c.byName[name]
	return cat, ok
}

// Names returns all category names in registry order
func (c *Categorizer) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Categorize returns the names of all categories whose keywords match title
func (c *Categorizer) Categorize(title string) []string {
	var matched []string
	for i := range c.categories {
		if c.categories[i].Matches(title) {
			matched = append(matched, c.categories[i].Name)
		}
	}
	return matched
}
