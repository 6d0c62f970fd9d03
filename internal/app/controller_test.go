package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/portfolio"
	"github.com/louisbranch/portfolio/internal/view"
)

type fakeSource struct {
	catalog portfolio.Catalog
	err     error
	calls   int
}

func (s *fakeSource) Load(context.Context) (portfolio.Catalog, error) {
	s.calls++
	return s.catalog, s.err
}

type fakeRenderer struct {
	models   []view.Model
	failures int
	err      error
}

func (r *fakeRenderer) Render(_ context.Context, m view.Model) error {
	r.models = append(r.models, m)
	return r.err
}

func (r *fakeRenderer) RenderLoadFailure(context.Context) error {
	r.failures++
	return r.err
}

func (r *fakeRenderer) last(t *testing.T) view.Model {
	t.Helper()
	if len(r.models) == 0 {
		t.Fatal("expected at least one render")
	}
	return r.models[len(r.models)-1]
}

type fakeFocuser struct {
	ids []string
}

func (f *fakeFocuser) Focus(id string) error {
	f.ids = append(f.ids, id)
	return nil
}

func titles(projects []portfolio.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func scenarioSource() *fakeSource {
	return &fakeSource{catalog: portfolio.Catalog{Projects: []portfolio.Project{
		{Title: "B", Category: "CLI"},
		{Title: "A", Category: "Web", Featured: true},
		{Title: "C", Category: "Web", Tech: []string{"React"}},
	}}}
}

func TestStartOrdersFeaturedFirstAndRenders(t *testing.T) {
	r := &fakeRenderer{}
	src := scenarioSource()
	c := New(r)

	if err := c.Start(context.Background(), src); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("source calls = %d, want 1", src.calls)
	}
	m := r.last(t)
	if diff := cmp.Diff([]string{"A", "B", "C"}, titles(m.Projects)); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"All", "CLI", "Web"}, m.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if m.Category != portfolio.AllCategories {
		t.Fatalf("category = %q, want All", m.Category)
	}
	if diff := cmp.Diff(portfolio.Stats{Total: 3, Featured: 1, Categories: 2}, m.Stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStartLoadFailureRendersNoticeAndLogs(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.NewWithWriter(logging.Config{Level: "info", Format: "json"}, &logs)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	r := &fakeRenderer{}
	loadErr := apperrors.New(apperrors.CodeCatalogFetch, "fetch catalog")
	c := New(r, WithLogger(logger))

	err = c.Start(context.Background(), &fakeSource{err: loadErr})
	if !errors.Is(err, loadErr) {
		t.Fatalf("Start() error = %v, want %v", err, loadErr)
	}
	if r.failures != 1 {
		t.Fatalf("failure renders = %d, want 1", r.failures)
	}
	if len(r.models) != 0 {
		t.Fatalf("renders = %d, want 0", len(r.models))
	}
	if !strings.Contains(logs.String(), "fetch catalog") {
		t.Fatalf("expected load failure in logs, got %q", logs.String())
	}
	if got := c.State(); len(got.Projects) != 0 || got.Category != portfolio.AllCategories || got.Query != "" {
		t.Fatalf("State() = %+v, want initial state", got)
	}
}

func TestStartJoinsRenderFailure(t *testing.T) {
	r := &fakeRenderer{err: errors.New("detached")}
	loadErr := errors.New("offline")
	err := New(r).Start(context.Background(), &fakeSource{err: loadErr})
	if !errors.Is(err, loadErr) || !errors.Is(err, r.err) {
		t.Fatalf("Start() error = %v, want both causes", err)
	}
}

func TestSelectCategoryFiltersAndFocusesSearch(t *testing.T) {
	r := &fakeRenderer{}
	focus := &fakeFocuser{}
	c := New(r, WithFocuser(focus))
	ctx := context.Background()
	if err := c.Start(ctx, scenarioSource()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := c.SelectCategory(ctx, "Web"); err != nil {
		t.Fatalf("SelectCategory() error = %v", err)
	}
	m := r.last(t)
	if diff := cmp.Diff([]string{"A", "C"}, titles(m.Projects)); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
	if m.Category != "Web" {
		t.Fatalf("category = %q, want Web", m.Category)
	}
	if diff := cmp.Diff([]string{"All", "CLI", "Web"}, m.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{view.MountSearch}, focus.ids); diff != "" {
		t.Fatalf("focus mismatch (-want +got):\n%s", diff)
	}
}

func TestSetQueryRendersOnEveryChange(t *testing.T) {
	r := &fakeRenderer{}
	c := New(r)
	ctx := context.Background()
	if err := c.Start(ctx, scenarioSource()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for _, q := range []string{"r", "re", "rea", "react"} {
		if err := c.SetQuery(ctx, q); err != nil {
			t.Fatalf("SetQuery(%q) error = %v", q, err)
		}
	}
	if len(r.models) != 5 {
		t.Fatalf("renders = %d, want 5", len(r.models))
	}
	m := r.last(t)
	if diff := cmp.Diff([]string{"C"}, titles(m.Projects)); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(portfolio.Stats{Total: 3, Featured: 1, Categories: 2}, m.Stats); diff != "" {
		t.Fatalf("stats must ignore the filter (-want +got):\n%s", diff)
	}

	if err := c.SetQuery(ctx, ""); err != nil {
		t.Fatalf("SetQuery(\"\") error = %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, titles(r.last(t).Projects)); diff != "" {
		t.Fatalf("cleared query mismatch (-want +got):\n%s", diff)
	}
}

func TestFilteringNeverReorders(t *testing.T) {
	r := &fakeRenderer{}
	c := New(r)
	ctx := context.Background()
	if err := c.Start(ctx, scenarioSource()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	_ = c.SelectCategory(ctx, "CLI")
	_ = c.SelectCategory(ctx, portfolio.AllCategories)
	if diff := cmp.Diff([]string{"A", "B", "C"}, titles(r.last(t).Projects)); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderErrorIsReturned(t *testing.T) {
	r := &fakeRenderer{}
	c := New(r)
	ctx := context.Background()
	if err := c.Start(ctx, scenarioSource()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	r.err = errors.New("detached")
	if err := c.SetQuery(ctx, "x"); !errors.Is(err, r.err) {
		t.Fatalf("SetQuery() error = %v, want %v", err, r.err)
	}
}

func TestWithLanguageOrdersCategories(t *testing.T) {
	src := &fakeSource{catalog: portfolio.Catalog{Projects: []portfolio.Project{
		{Title: "A", Category: "Zeta"},
		{Title: "B", Category: "Öga"},
	}}}

	english := New(&fakeRenderer{})
	if err := english.Start(context.Background(), src); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if diff := cmp.Diff([]string{"All", "Öga", "Zeta"}, english.Model().Categories); diff != "" {
		t.Fatalf("english categories mismatch (-want +got):\n%s", diff)
	}

	swedish := New(&fakeRenderer{}, WithLanguage(portfolio.LanguageTag("sv")))
	if err := swedish.Start(context.Background(), src); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if diff := cmp.Diff([]string{"All", "Zeta", "Öga"}, swedish.Model().Categories); diff != "" {
		t.Fatalf("swedish categories mismatch (-want +got):\n%s", diff)
	}
}

func TestStartLogsUnreadableRecords(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.NewWithWriter(logging.Config{Level: "info", Format: "json"}, &logs)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	catalog, err := portfolio.DecodeCatalog(strings.NewReader(
		`{"projects":[{"title":"A","category":"Web"},{"title":"B","featured":"yes"}]}`))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	r := &fakeRenderer{}
	c := New(r, WithLogger(logger))

	if err := c.Start(context.Background(), &fakeSource{catalog: catalog}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B"}, titles(r.last(t).Projects)); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "unreadable records") {
		t.Fatalf("expected record problems in logs, got %q", logs.String())
	}
}
