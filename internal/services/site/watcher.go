package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	"github.com/louisbranch/portfolio/internal/portfolio"
	"go.uber.org/zap"
)

// CatalogReport is the outcome of checking the catalog file.
type CatalogReport struct {
	Path  string
	Stats portfolio.Stats
	// Problems holds the per-record decode problems of a catalog that was
	// otherwise read.
	Problems error
	Err      error
}

// CatalogWatcher re-checks the catalog file whenever it changes and logs
// what a client would see. It never changes what is served.
type CatalogWatcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	onReport func(CatalogReport)

	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
	inflight sync.WaitGroup
}

// WatcherOption customizes a CatalogWatcher.
type WatcherOption func(*CatalogWatcher)

// WithDebounce overrides the quiet period before a check.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *CatalogWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithReportHook receives every report after it is logged.
func WithReportHook(fn func(CatalogReport)) WatcherOption {
	return func(w *CatalogWatcher) {
		w.onReport = fn
	}
}

// NewCatalogWatcher builds a watcher for the catalog at path.
func NewCatalogWatcher(path string, logger *zap.Logger, opts ...WatcherOption) *CatalogWatcher {
	w := &CatalogWatcher{
		path:     filepath.Clean(path),
		debounce: timeouts.CatalogDebounce,
		logger:   logging.Component(logger, "catalog-watcher"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Check decodes the catalog file once and reports the result.
func (w *CatalogWatcher) Check() CatalogReport {
	report := CatalogReport{Path: w.path}
	f, err := os.Open(w.path)
	if err != nil {
		report.Err = fmt.Errorf("open catalog: %w", err)
	} else {
		catalog, decodeErr := portfolio.DecodeCatalog(f)
		_ = f.Close()
		if decodeErr != nil {
			report.Err = decodeErr
		} else {
			report.Stats = portfolio.Summarize(catalog.Projects)
			report.Problems = catalog.Err()
		}
	}

	switch {
	case report.Err != nil:
		w.logger.Warn("catalog check failed", zap.String(logging.FieldPath, w.path), zap.Error(report.Err))
	case report.Problems != nil:
		w.logger.Warn("catalog has unreadable records",
			zap.String(logging.FieldPath, w.path),
			zap.Int(logging.FieldCount, report.Stats.Total),
			zap.Error(report.Problems),
		)
	default:
		w.logger.Info("catalog checked",
			zap.String(logging.FieldPath, w.path),
			zap.Int(logging.FieldCount, report.Stats.Total),
			zap.Int(logging.FieldFeatured, report.Stats.Featured),
			zap.Int(logging.FieldCategory, report.Stats.Categories),
		)
	}
	if w.onReport != nil {
		w.onReport(report)
	}
	return report
}

// Run checks the catalog once, then again after every change, until ctx
// ends. The parent directory is watched so editors that replace the file
// are seen.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.mu.Lock()
	w.stopped = false
	w.mu.Unlock()
	defer w.stopTimer()

	w.Check()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("catalog changed", zap.String(logging.FieldOp, event.Op.String()))
			w.schedule()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (w *CatalogWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.debouncedCheck)
}

func (w *CatalogWatcher) debouncedCheck() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()
	w.Check()
}

// stopTimer cancels a pending check and waits for one already running.
func (w *CatalogWatcher) stopTimer() {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.inflight.Wait()
}
