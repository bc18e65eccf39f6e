package recipe

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minorWords stay lowercase unless they open or close a title. Words longer
// than three letters are capitalized anyway, so only the short ones matter.
var minorWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true,
	"and": true, "or": true, "but": true, "to": true, "for": true,
	"with": true, "by": true, "at": true, "from": true, "up": true,
	"about": true, "into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "between": true, "among": true,
}

// TitleCase capitalizes each word of title except short minor words in the
// middle. Whitespace runs collapse to single spaces. The rules are a
// heuristic, not a style guide: "Stir-fry" keeps its lowercase second half.
func TitleCase(title string) string {
	if title == "" {
		return title
	}

	// Casers carry state, so each call gets its own.
	lower := cases.Lower(language.Und)
	words := strings.Fields(title)
	out := make([]string, len(words))
	last := len(words) - 1

	for i, word := range words {
		lw := lower.String(word)
		if i == 0 || i == last || !minorWords[lw] || utf8.RuneCountInString(word) > 3 {
			out[i] = capitalize(word)
		} else {
			out[i] = lw
		}
	}

	return strings.Join(out, " ")
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return cases.Upper(language.Und).String(string(r)) + cases.Lower(language.Und).String(word[size:])
}
