package portfolio

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter returns the projects matching category and query, in source order.
//
// A project passes when category is AllCategories or equals CategoryOf(p),
// and query is empty or a case-insensitive substring of the project's
// searchable text.
func Filter(projects []Project, category, query string) []Project {
	needle := strings.ToLower(query)
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if category != AllCategories && CategoryOf(p) != category {
			continue
		}
		if needle != "" && !strings.Contains(searchText(p), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// searchText joins the searchable fields. The raw category is used, so a
// project without one does not match "other".
func searchText(p Project) string {
	parts := make([]string, 0, 4+len(p.Tech))
	parts = append(parts, p.Title, p.Subtitle, p.Description, p.Category)
	parts = append(parts, p.Tech...)
	return strings.ToLower(strings.Join(parts, " "))
}

// LanguageTag parses a document language such as "de" or "pt-BR". An empty
// or malformed value falls back to English.
func LanguageTag(lang string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.English
	}
	return tag
}

// NewCollator returns the collator used to order categories.
func NewCollator(tag language.Tag) *collate.Collator {
	return collate.New(tag)
}

// Categories returns AllCategories followed by the distinct project
// categories in locale order. A nil collator uses English rules.
func Categories(projects []Project, col *collate.Collator) []string {
	if col == nil {
		col = NewCollator(language.English)
	}
	seen := make(map[string]struct{}, len(projects))
	distinct := make([]string, 0, len(projects))
	for _, p := range projects {
		c := CategoryOf(p)
		if c == AllCategories {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		distinct = append(distinct, c)
	}
	slices.SortStableFunc(distinct, col.CompareString)
	return append([]string{AllCategories}, distinct...)
}
