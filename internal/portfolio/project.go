package portfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
)

const (
	// AllCategories is the filter value that disables category matching.
	AllCategories = "All"
	// DefaultCategory is used for projects without a category.
	DefaultCategory = "Other"
	// MaxTechTags caps the technology tags shown on a card.
	MaxTechTags = 7
)

// Project is one portfolio entry.
type Project struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Repo        string   `json:"repo,omitempty"`
	Live        string   `json:"live,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// HasLive reports whether the project links to a live demo.
func (p Project) HasLive() bool {
	return p.Live != ""
}

// VisibleTech returns the tags shown on the project card.
func (p Project) VisibleTech() []string {
	if len(p.Tech) > MaxTechTags {
		return p.Tech[:MaxTechTags]
	}
	return p.Tech
}

// CategoryOf returns the project's category, falling back to DefaultCategory.
func CategoryOf(p Project) string {
	if p.Category == "" {
		return DefaultCategory
	}
	return p.Category
}

// Catalog is the decoded project collection.
type Catalog struct {
	Projects []Project `json:"projects"`

	// Problems lists the records or fields that could not be read as
	// expected. The affected values are zeroed or skipped; the rest of the
	// catalog is kept.
	Problems []*apperrors.Error `json:"-"`
}

// Err joins the decode problems, or returns nil for a clean catalog.
func (c Catalog) Err() error {
	if len(c.Problems) == 0 {
		return nil
	}
	errs := make([]error, 0, len(c.Problems))
	for _, p := range c.Problems {
		errs = append(errs, p)
	}
	return errors.Join(errs...)
}

// DecodeCatalog reads a catalog document.
//
// A document that is not valid JSON is a CodeCatalogDecode error. A document
// without a usable "projects" array decodes to an empty catalog. Records are
// read one at a time: a non-object record is skipped, a field with the wrong
// type is zeroed, and each is recorded in Catalog.Problems.
func DecodeCatalog(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Catalog{}, apperrors.Wrap(apperrors.CodeCatalogDecode, "read catalog", err)
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, apperrors.Wrap(apperrors.CodeCatalogDecode, "decode catalog", err)
	}

	catalog := Catalog{Projects: []Project{}}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return catalog, nil
	}
	projectsRaw, ok := fields["projects"]
	if !ok {
		return catalog, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(projectsRaw, &records); err != nil {
		return catalog, nil
	}

	for i, record := range records {
		d := recordDecoder{index: i}
		if p, ok := d.project(record); ok {
			catalog.Projects = append(catalog.Projects, p)
		}
		catalog.Problems = append(catalog.Problems, d.problems...)
	}
	return catalog, nil
}

type recordDecoder struct {
	index    int
	problems []*apperrors.Error
}

func (d *recordDecoder) problem(field, message string) {
	meta := map[string]string{"index": strconv.Itoa(d.index)}
	if field != "" {
		meta["field"] = field
	}
	d.problems = append(d.problems, apperrors.WithMetadata(apperrors.CodeCatalogDecode, message, meta))
}

func (d *recordDecoder) project(raw json.RawMessage) (Project, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		d.problem("", fmt.Sprintf("project %d is not an object", d.index))
		return Project{}, false
	}
	p := Project{
		Title:       d.text(fields, "title"),
		Subtitle:    d.text(fields, "subtitle"),
		Description: d.text(fields, "description"),
		Category:    d.text(fields, "category"),
		Tech:        d.tags(fields, "tech"),
		Repo:        d.text(fields, "repo"),
		Live:        d.text(fields, "live"),
		Featured:    d.flag(fields, "featured"),
	}
	return p, true
}

// text reads a string field. Numbers and booleans keep their literal text.
func (d *recordDecoder) text(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	s, ok := scalarText(raw)
	if !ok {
		d.problem(name, fmt.Sprintf("project %d: %s is not a string", d.index, name))
		return ""
	}
	return s
}

// flag reads a boolean field. Only a JSON true sets it.
func (d *recordDecoder) flag(fields map[string]json.RawMessage, name string) bool {
	raw, ok := fields[name]
	if !ok {
		return false
	}
	var v *bool
	if err := json.Unmarshal(raw, &v); err != nil {
		d.problem(name, fmt.Sprintf("project %d: %s is not a boolean", d.index, name))
		return false
	}
	return v != nil && *v
}

// tags reads a list of strings, dropping entries that are not scalars.
func (d *recordDecoder) tags(fields map[string]json.RawMessage, name string) []string {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.problem(name, fmt.Sprintf("project %d: %s is not a list", d.index, name))
		return nil
	}
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := scalarText(item)
		if !ok {
			d.problem(name, fmt.Sprintf("project %d: %s entry is not a string", d.index, name))
			continue
		}
		out = append(out, s)
	}
	return out
}

func scalarText(raw json.RawMessage) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// FeaturedFirst returns a copy of projects with featured entries first.
// Order inside the featured and non-featured groups is preserved.
func FeaturedFirst(projects []Project) []Project {
	out := slices.Clone(projects)
	slices.SortStableFunc(out, func(a, b Project) int {
		switch {
		case a.Featured == b.Featured:
			return 0
		case a.Featured:
			return -1
		default:
			return 1
		}
	})
	return out
}
