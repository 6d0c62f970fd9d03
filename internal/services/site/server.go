package site

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config defines the inputs for the site server.
type Config struct {
	HTTPAddr     string
	Title        string
	CatalogPath  string
	WasmDir      string
	WatchCatalog bool
	Logger       *zap.Logger
}

// Server hosts the site HTTP server and the optional catalog watcher.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	watcher    *CatalogWatcher
	logger     *zap.Logger
}

// NewServer builds a configured site server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := logging.Component(config.Logger, "site")

	handler, err := NewHandler(HandlerConfig{
		Title:       config.Title,
		CatalogPath: config.CatalogPath,
		WasmDir:     config.WasmDir,
		Logger:      config.Logger,
	})
	if err != nil {
		return nil, err
	}

	var watcher *CatalogWatcher
	if config.WatchCatalog {
		watcher = NewCatalogWatcher(config.CatalogPath, config.Logger)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		watcher: watcher,
		logger:  logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener until the context ends.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	g, ctx := errgroup.WithContext(ctx)
	s.logger.Info("site listening", zap.String(logging.FieldAddress, listener.Addr().String()))
	g.Go(func() error {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})
	if s.watcher != nil {
		g.Go(func() error {
			if err := s.watcher.Run(ctx); err != nil {
				s.logger.Warn("catalog watcher stopped", zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}
