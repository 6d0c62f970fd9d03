package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/portfolio"
	"github.com/louisbranch/portfolio/internal/view"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Source loads the project catalog.
type Source interface {
	Load(ctx context.Context) (portfolio.Catalog, error)
}

// Renderer draws a derived model onto the page.
type Renderer interface {
	Render(ctx context.Context, m view.Model) error
	RenderLoadFailure(ctx context.Context) error
}

// Focuser moves input focus to an element.
type Focuser interface {
	Focus(id string) error
}

// State is the visitor-facing page state. The visible projects are always a
// function of these three fields.
type State struct {
	Projects []portfolio.Project
	Category string
	Query    string
}

// NewState returns the initial state: no projects, every category, no query.
func NewState() State {
	return State{Category: portfolio.AllCategories}
}

// Controller owns the page state and re-renders on every change.
type Controller struct {
	state    State
	renderer Renderer
	focus    Focuser
	collator *collate.Collator
	logger   *zap.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFocuser sets where search focus is returned after a category click.
func WithFocuser(f Focuser) Option {
	return func(c *Controller) {
		c.focus = f
	}
}

// WithLanguage sets the locale used to order categories.
func WithLanguage(tag language.Tag) Option {
	return func(c *Controller) {
		c.collator = portfolio.NewCollator(tag)
	}
}

// New builds a Controller in the initial state.
func New(renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		state:    NewState(),
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.collator == nil {
		c.collator = portfolio.NewCollator(language.English)
	}
	c.logger = logging.Component(c.logger, "page")
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Model derives everything the renderer needs from the current state.
func (c *Controller) Model() view.Model {
	projects := c.state.Projects
	return view.Model{
		Categories: portfolio.Categories(projects, c.collator),
		Category:   c.state.Category,
		Projects:   portfolio.Filter(projects, c.state.Category, c.state.Query),
		Stats:      portfolio.Summarize(projects),
	}
}

// Start loads the catalog, orders it featured-first once, and renders.
//
// A load failure replaces the grid with a failure notice, is logged, and is
// returned. There is no retry.
func (c *Controller) Start(ctx context.Context, src Source) error {
	catalog, err := src.Load(ctx)
	if err != nil {
		c.logger.Error("load projects", zap.Error(err))
		if renderErr := c.renderer.RenderLoadFailure(ctx); renderErr != nil {
			return errors.Join(fmt.Errorf("load projects: %w", err), fmt.Errorf("render load failure: %w", renderErr))
		}
		return fmt.Errorf("load projects: %w", err)
	}

	if problems := catalog.Err(); problems != nil {
		c.logger.Warn("catalog has unreadable records",
			zap.Int(logging.FieldCount, len(catalog.Problems)),
			zap.Error(problems),
		)
	}
	c.state.Projects = portfolio.FeaturedFirst(catalog.Projects)
	c.logger.Info("projects loaded", zap.Int(logging.FieldCount, len(c.state.Projects)))
	return c.render(ctx)
}

// SelectCategory filters by category, re-renders, and returns focus to the
// search field.
func (c *Controller) SelectCategory(ctx context.Context, category string) error {
	c.state.Category = category
	if err := c.render(ctx); err != nil {
		return err
	}
	if c.focus == nil {
		return nil
	}
	if err := c.focus.Focus(view.MountSearch); err != nil {
		return fmt.Errorf("focus search: %w", err)
	}
	return nil
}

// SetQuery filters by free text and re-renders. Every call renders; there is
// no debouncing.
func (c *Controller) SetQuery(ctx context.Context, query string) error {
	c.state.Query = query
	return c.render(ctx)
}

func (c *Controller) render(ctx context.Context) error {
	if err := c.renderer.Render(ctx, c.Model()); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
