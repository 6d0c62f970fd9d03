package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/portfolio"
)

// Mount point element ids.
const (
	MountSearch         = "search"
	MountFilters        = "filters"
	MountGrid           = "grid"
	MountStatProjects   = "statProjects"
	MountStatFeatured   = "statFeatured"
	MountStatCategories = "statCategories"
	MountYear           = "year"
	MountCanvas         = "bg"
)

// Document is the set of mount points the renderer writes to.
type Document interface {
	// ReplaceChildren discards the element's children and parses html in
	// their place.
	ReplaceChildren(id, html string) error
	// SetText replaces the element's text content.
	SetText(id, text string) error
}

// Model is everything one render needs.
type Model struct {
	Categories []string
	Category   string
	Projects   []portfolio.Project
	Stats      portfolio.Stats
}

// Renderer rebuilds page regions from a Model.
type Renderer struct {
	doc Document
	now func() time.Time
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRenderer builds a Renderer over doc.
func NewRenderer(doc Document, opts ...RendererOption) *Renderer {
	r := &Renderer{doc: doc, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render rebuilds the filter bar, the grid, and the stats panel.
func (r *Renderer) Render(ctx context.Context, m Model) error {
	if err := r.replace(ctx, MountFilters, FilterBar(m.Categories, m.Category)); err != nil {
		return err
	}
	if err := r.replace(ctx, MountGrid, Grid(m.Projects)); err != nil {
		return err
	}
	return r.renderStats(m.Stats)
}

// RenderLoadFailure replaces the grid with the load failure message.
func (r *Renderer) RenderLoadFailure(ctx context.Context) error {
	return r.replace(ctx, MountGrid, LoadFailure())
}

func (r *Renderer) renderStats(stats portfolio.Stats) error {
	texts := []struct {
		id   string
		text string
	}{
		{MountStatProjects, strconv.Itoa(stats.Total)},
		{MountStatFeatured, strconv.Itoa(stats.Featured)},
		{MountStatCategories, strconv.Itoa(stats.Categories)},
		{MountYear, strconv.Itoa(r.now().Year())},
	}
	for _, t := range texts {
		if err := r.doc.SetText(t.id, t.text); err != nil {
			return fmt.Errorf("set #%s: %w", t.id, err)
		}
	}
	return nil
}

func (r *Renderer) replace(ctx context.Context, id string, c templ.Component) error {
	html, err := renderString(ctx, c)
	if err != nil {
		return fmt.Errorf("render #%s: %w", id, err)
	}
	if err := r.doc.ReplaceChildren(id, html); err != nil {
		return fmt.Errorf("replace #%s: %w", id, err)
	}
	return nil
}

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
