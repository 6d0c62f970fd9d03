package site

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/services/site/static"
	"github.com/louisbranch/portfolio/internal/view"
	"go.uber.org/zap"
)

// Route paths.
const (
	RouteRoot    = "/"
	RouteCatalog = "/projects.json"
	RouteStatic  = "/static/"
	RouteWasm    = "/wasm/"
	RouteHealth  = "/healthz"
)

// Bundle file names inside the WebAssembly directory.
const (
	WasmBinary  = "app.wasm"
	WasmSupport = "wasm_exec.js"
)

// DefaultTitle is the page title when none is configured.
const DefaultTitle = "Portfolio"

// HandlerConfig defines the inputs for the site handler.
type HandlerConfig struct {
	Title       string
	CatalogPath string
	WasmDir     string
	Logger      *zap.Logger
}

type handler struct {
	catalogPath string
	logger      *zap.Logger
}

// NewHandler builds the HTTP handler for the site.
func NewHandler(config HandlerConfig) (http.Handler, error) {
	catalogPath := strings.TrimSpace(config.CatalogPath)
	if catalogPath == "" {
		return nil, errors.New("catalog path is required")
	}
	wasmDir := strings.TrimSpace(config.WasmDir)
	if wasmDir == "" {
		return nil, errors.New("wasm directory is required")
	}
	title := strings.TrimSpace(config.Title)
	if title == "" {
		title = DefaultTitle
	}
	logger := logging.Component(config.Logger, "site")

	h := &handler{catalogPath: catalogPath, logger: logger}
	page := view.Page(view.PageOptions{
		Title:         title,
		StylesheetURL: RouteStatic + "site.css",
		WasmExecURL:   RouteWasm + WasmSupport,
		WasmURL:       RouteWasm + WasmBinary,
	})

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", templ.Handler(page))
	mux.HandleFunc("GET "+RouteCatalog, h.serveCatalog)
	mux.Handle("GET "+RouteStatic, http.StripPrefix(RouteStatic, http.FileServer(http.FS(static.FS))))
	mux.Handle("GET "+RouteWasm, http.StripPrefix(RouteWasm, http.FileServer(http.Dir(wasmDir))))
	mux.HandleFunc("GET "+RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return withTracing(withAccessLog(mux, logger)), nil
}

// serveCatalog streams the catalog file with caching disabled. The file is
// served as-is; clients decode it defensively.
func (h *handler) serveCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	f, err := os.Open(h.catalogPath)
	if err != nil {
		code := apperrors.CodeUnknown
		if errors.Is(err, fs.ErrNotExist) {
			code = apperrors.CodeCatalogNotFound
		}
		h.writeError(w, apperrors.WrapWithMetadata(code, "open catalog",
			map[string]string{logging.FieldPath: h.catalogPath}, err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.writeError(w, apperrors.Wrap(apperrors.CodeUnknown, "stat catalog", err))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	http.ServeContent(w, r, RouteCatalog, info.ModTime(), f)
}

func (h *handler) writeError(w http.ResponseWriter, err *apperrors.Error) {
	status := err.Code.HTTPStatus()
	h.logger.Warn("catalog unavailable",
		zap.String("code", string(err.Code)),
		zap.Int(logging.FieldStatus, status),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(status), status)
}
