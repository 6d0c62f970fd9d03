// Package site parses site command flags and starts the static host.
package site

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	"github.com/louisbranch/portfolio/internal/services/site"
	"go.uber.org/zap"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr     string `env:"SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	Title        string `env:"SITE_TITLE" envDefault:"Portfolio"`
	CatalogPath  string `env:"SITE_CATALOG_PATH" envDefault:"projects.json"`
	WasmDir      string `env:"SITE_WASM_DIR" envDefault:"build/wasm"`
	WatchCatalog bool   `env:"SITE_WATCH_CATALOG" envDefault:"true"`
	Log          logging.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Page title")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Path to projects.json")
	fs.StringVar(&cfg.WasmDir, "wasm-dir", cfg.WasmDir, "Directory holding app.wasm and wasm_exec.js")
	fs.BoolVar(&cfg.WatchCatalog, "watch", cfg.WatchCatalog, "Re-validate the catalog when it changes")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (console, json)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the site host and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	options := entrypoint.RunOptions{ShutdownTimeout: timeouts.Shutdown, Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, options, func(ctx context.Context) error {
		server, err := site.NewServer(site.Config{
			HTTPAddr:     cfg.HTTPAddr,
			Title:        cfg.Title,
			CatalogPath:  cfg.CatalogPath,
			WasmDir:      cfg.WasmDir,
			WatchCatalog: cfg.WatchCatalog,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		logger.Info("site configured",
			zap.String(logging.FieldAddress, cfg.HTTPAddr),
			zap.String(logging.FieldPath, cfg.CatalogPath),
		)
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}
