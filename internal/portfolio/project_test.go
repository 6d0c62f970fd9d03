package portfolio

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
)

func titles(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func TestCategoryOfDefaultsToOther(t *testing.T) {
	if got := CategoryOf(Project{Title: "x"}); got != DefaultCategory {
		t.Fatalf("CategoryOf() = %q, want %q", got, DefaultCategory)
	}
	if got := CategoryOf(Project{Category: "CLI"}); got != "CLI" {
		t.Fatalf("CategoryOf() = %q, want %q", got, "CLI")
	}
}

func TestVisibleTechTruncatesToSeven(t *testing.T) {
	p := Project{Tech: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f", "g"}, p.VisibleTech()); diff != "" {
		t.Fatalf("VisibleTech() mismatch (-want +got):\n%s", diff)
	}
	short := Project{Tech: []string{"Go"}}
	if diff := cmp.Diff([]string{"Go"}, short.VisibleTech()); diff != "" {
		t.Fatalf("VisibleTech() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCatalog(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "projects",
			doc:  `{"projects":[{"title":"A","category":"Web","featured":true},{"title":"B","category":"CLI"}]}`,
			want: []string{"A", "B"},
		},
		{name: "missing key", doc: `{"items":[{"title":"A"}]}`, want: []string{}},
		{name: "null projects", doc: `{"projects":null}`, want: []string{}},
		{name: "projects not array", doc: `{"projects":"nope"}`, want: []string{}},
		{name: "document not object", doc: `[1,2,3]`, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := DecodeCatalog(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("DecodeCatalog() error = %v", err)
			}
			if catalog.Projects == nil {
				t.Fatal("expected non-nil projects")
			}
			if diff := cmp.Diff(tt.want, titles(catalog.Projects)); diff != "" {
				t.Fatalf("titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeCatalogKeepsOptionalFields(t *testing.T) {
	doc := `{"projects":[{"title":"A","subtitle":"s","description":"d","tech":["Go"],"repo":"https://r","live":"https://l","featured":true}]}`
	catalog, err := DecodeCatalog(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	want := Project{
		Title:       "A",
		Subtitle:    "s",
		Description: "d",
		Tech:        []string{"Go"},
		Repo:        "https://r",
		Live:        "https://l",
		Featured:    true,
	}
	if diff := cmp.Diff(want, catalog.Projects[0]); diff != "" {
		t.Fatalf("project mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCatalogKeepsSiblingsOfBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []Project
		problem string
	}{
		{
			name:    "featured not boolean",
			doc:     `{"projects":[{"title":"A","category":"Web"},{"title":"B","featured":"yes"}]}`,
			want:    []Project{{Title: "A", Category: "Web"}, {Title: "B"}},
			problem: "featured",
		},
		{
			name:    "tech not list",
			doc:     `{"projects":[{"title":"A","category":"Web"},{"title":"B","tech":"Go"}]}`,
			want:    []Project{{Title: "A", Category: "Web"}, {Title: "B"}},
			problem: "tech",
		},
		{
			name: "numeric title",
			doc:  `{"projects":[{"title":"A","category":"Web"},{"title":2024}]}`,
			want: []Project{{Title: "A", Category: "Web"}, {Title: "2024"}},
		},
		{
			name:    "record not object",
			doc:     `{"projects":[{"title":"A","category":"Web"},"oops",null]}`,
			want:    []Project{{Title: "A", Category: "Web"}},
			problem: "",
		},
		{
			name:    "object in tech list",
			doc:     `{"projects":[{"title":"A","tech":["Go",{"x":1},"Wasm"]}]}`,
			want:    []Project{{Title: "A", Tech: []string{"Go", "Wasm"}}},
			problem: "tech",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := DecodeCatalog(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("DecodeCatalog() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, catalog.Projects); diff != "" {
				t.Fatalf("projects mismatch (-want +got):\n%s", diff)
			}
			if tt.name == "numeric title" {
				if catalog.Err() != nil {
					t.Fatalf("Err() = %v, want nil", catalog.Err())
				}
				return
			}
			if len(catalog.Problems) == 0 {
				t.Fatal("expected decode problems")
			}
			if apperrors.CodeOf(catalog.Err()) != apperrors.CodeCatalogDecode {
				t.Fatalf("Err() = %v, want decode code", catalog.Err())
			}
			if got := catalog.Problems[0].Metadata["field"]; got != tt.problem {
				t.Fatalf("problem field = %q, want %q", got, tt.problem)
			}
		})
	}
}

func TestDecodeCatalogCleanHasNoProblems(t *testing.T) {
	catalog, err := DecodeCatalog(strings.NewReader(`{"projects":[{"title":"A","tech":null,"featured":false}]}`))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	if catalog.Err() != nil {
		t.Fatalf("Err() = %v, want nil", catalog.Err())
	}
}

func TestDecodeCatalogRejectsInvalidJSON(t *testing.T) {
	for _, doc := range []string{`{"projects":[`, `<html>`, `{"projects":[]} trailing`, ``} {
		_, err := DecodeCatalog(strings.NewReader(doc))
		if err == nil {
			t.Fatalf("DecodeCatalog(%q) expected error", doc)
		}
		if !stderrors.Is(err, apperrors.New(apperrors.CodeCatalogDecode, "")) {
			t.Fatalf("DecodeCatalog(%q) error = %v, want decode code", doc, err)
		}
	}
}

func TestFeaturedFirstIsStablePartition(t *testing.T) {
	in := []Project{
		{Title: "a"},
		{Title: "b", Featured: true},
		{Title: "c"},
		{Title: "d", Featured: true},
		{Title: "e"},
	}
	got := FeaturedFirst(in)
	if diff := cmp.Diff([]string{"b", "d", "a", "c", "e"}, titles(got)); diff != "" {
		t.Fatalf("FeaturedFirst() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, titles(in)); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}
