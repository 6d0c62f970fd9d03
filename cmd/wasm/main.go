//go:build js && wasm

// Package main is the browser entry point for the portfolio page.
//
// It starts the particle background, loads the project catalog, and binds the
// search box and filter bar to the page controller. Build with
// GOOS=js GOARCH=wasm.
package main

import (
	"context"

	"github.com/louisbranch/portfolio/internal/app"
	"github.com/louisbranch/portfolio/internal/browser"
	"github.com/louisbranch/portfolio/internal/particles"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/portfolio"
	"github.com/louisbranch/portfolio/internal/view"
	"go.uber.org/zap"
)

const catalogURL = "./projects.json"

func main() {
	logger, err := logging.New(logging.Config{Level: "info", Format: logging.FormatConsole})
	if err != nil {
		logger = zap.NewNop()
	}

	ctx := context.Background()
	doc := browser.NewDocument()

	startParticles(ctx, doc, logging.Component(logger, "particles"))

	ctrl := app.New(view.NewRenderer(doc),
		app.WithLogger(logger),
		app.WithFocuser(doc),
		app.WithLanguage(portfolio.LanguageTag(doc.Language())),
	)
	if err := ctrl.Start(ctx, browser.FetchSource{URL: catalogURL}); err == nil {
		bindControls(ctx, doc, ctrl, logger)
	}

	select {}
}

// startParticles runs the background animation. It never waits on the
// catalog and is never stopped.
func startParticles(ctx context.Context, doc *browser.Document, logger *zap.Logger) {
	canvas, err := browser.NewCanvas(doc, view.MountCanvas)
	if err != nil {
		logger.Warn("particle canvas unavailable", zap.Error(err))
		return
	}
	field := particles.NewField(particles.DefaultOptions(), nil)
	fit := func() {
		vp := browser.CurrentViewport()
		canvas.Fit(field.Resize(vp.Width, vp.Height, vp.PixelRatio), vp)
	}
	fit()
	browser.OnResize(fit)
	particles.NewAnimator(field, canvas, browser.NewFrameScheduler()).Run(ctx)
}

func bindControls(ctx context.Context, doc *browser.Document, ctrl *app.Controller, logger *zap.Logger) {
	err := doc.OnInput(view.MountSearch, func(value string) {
		if err := ctrl.SetQuery(ctx, value); err != nil {
			logger.Error("search", zap.Error(err))
		}
	})
	if err != nil {
		logger.Error("bind search", zap.Error(err))
	}
	err = doc.OnDelegatedClick(view.MountFilters, view.CategoryAttr, func(category string) {
		if err := ctrl.SelectCategory(ctx, category); err != nil {
			logger.Error("select category", zap.String("category", category), zap.Error(err))
		}
	})
	if err != nil {
		logger.Error("bind filters", zap.Error(err))
	}
}
