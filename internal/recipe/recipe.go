// Package recipe holds the recipe record and the text rules used to build one
// from a bookmark: title cleaning, source extraction, tag normalization,
// keyword categorization and title casing.
package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// IDPrefix is the prefix shared by every recipe id
const IDPrefix = "recipe_"

// Recipe is a single bookmarked recipe in the catalog
type Recipe struct {
	ID        string   `json:"id" validate:"required,startswith=recipe_"`
	Title     string   `json:"title" validate:"required"`
	URL       string   `json:"url" validate:"required,url"`
	TimeAdded int64    `json:"time_added" validate:"gte=0"`
	Tags      []string `json:"tags" validate:"unique,dive,required,lowercase"`
	Source    string   `json:"source" validate:"required"`
	Notes     string   `json:"notes,omitempty"`
}

// FormatID returns the id for the n-th recipe, counting from 1
func FormatID(n int) string {
	return fmt.Sprintf("%s%04d", IDPrefix, n)
}

// ParseID returns the sequence number encoded in id
func ParseID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, IDPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
