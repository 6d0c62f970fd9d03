// Package main starts the portfolio static host.
//
// This process serves the page shell, the catalog and the wasm bundle; all
// filtering and rendering happens in the browser.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	sitecmd "github.com/louisbranch/portfolio/internal/cmd/site"
	"github.com/louisbranch/portfolio/internal/platform/config"
)

func main() {
	cfg, err := sitecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sitecmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
