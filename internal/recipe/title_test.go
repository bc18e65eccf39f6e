package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"en dash suffix", "Best Chocolate Cake – Food Blog", "Best Chocolate Cake"},
		{"hyphen suffix", "Banana Bread - Some Site", "Banana Bread"},
		{"pipe suffix", "Lemon Bars | Bake Shop", "Lemon Bars"},
		{"pipe keeps nothing after first pipe", "Lemon Bars | Bake | Shop", "Lemon Bars"},
		{"no suffix", "Plain Old Soup", "Plain Old Soup"},
		{"empty", "", UntitledTitle},
		{"bare url", "https://example.com/recipe", UntitledTitle},
		{"http prefix is enough", "httpfoo", UntitledTitle},
		{"only a suffix", " - Site", UntitledTitle},
		{"surrounding whitespace trimmed", "  Stew  ", "Stew"},
		// hyphenated titles are over-stripped on purpose
		{"hyphenated title over-stripped", "Stir-fry Chicken", "Stir"},
		{"dash then hyphen", "Pork Ribs - Grill – Blog", "Pork Ribs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}
