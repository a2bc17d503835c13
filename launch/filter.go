package launch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the launches whose mission name contains query, compared
// case-insensitively. The result keeps the order of items. An empty query
// returns items unchanged; a launch without a mission name never matches a
// non-empty query.
func Filter(items []Launch, query string) []Launch {
	if query == "" {
		return items
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	filtered := make([]Launch, 0, len(items))
	for _, l := range items {
		if !l.HasName() {
			continue
		}
		if strings.Contains(lower.String(l.Name()), needle) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
