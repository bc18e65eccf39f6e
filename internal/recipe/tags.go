package recipe

import (
	"sort"
	"strings"
)

// tagSynonyms maps common spelling variants onto the canonical tag
var tagSynonyms = map[string]string{
	"recipies":  "recipes",
	"dessert":   "desserts",
	"main-dish": "main-dishes",
	"appetizer": "appetizers",
}

// NormalizeTag trims, lowercases and maps a single tag onto its canonical form.
// An empty result means the tag should be dropped.
func NormalizeTag(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	if canonical, ok := tagSynonyms[t]; ok {
		return canonical
	}
	return t
}

// ParseTags splits a comma-separated tag string into normalized unique tags.
// The result is sorted, but callers should treat it as a set.
func ParseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return MergeTags(strings.Split(raw, ","))
}

// MergeTags returns the normalized union of the given tag lists
func MergeTags(lists ...[]string) []string {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, tag := range list {
			n := NormalizeTag(tag)
			if n == "" {
				continue
			}
			set[n] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
