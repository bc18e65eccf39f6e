package recipe

import (
	"regexp"
	"strings"
)

// UntitledTitle replaces titles that are empty or bare URLs
const UntitledTitle = "Untitled Recipe"

// Site-name suffix patterns, applied in this order. Each one removes the
// rightmost segment after its separator, so a title such as
// "Stir-fry Chicken" loses "-fry Chicken".
var siteSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s*–\s*[^–]+$`),
	regexp.MustCompile(`\s*-\s*[^-]+$`),
	regexp.MustCompile(`\s*\|.*$`),
}

// CleanTitle strips trailing " – site", " - site" and " | site" suffixes
func CleanTitle(title string) string {
	if title == "" || strings.HasPrefix(title, "http") {
		return UntitledTitle
	}

	for _, re := range siteSuffixPatterns {
		title = re.ReplaceAllString(title, "")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return UntitledTitle
	}
	return title
}
