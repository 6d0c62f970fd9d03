//go:build js && wasm

package browser

import (
	"context"
	"strconv"
	"strings"
	"syscall/js"

	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
	"github.com/louisbranch/portfolio/internal/portfolio"
)

// FetchSource loads the catalog with window.fetch, bypassing the HTTP cache.
type FetchSource struct {
	URL string
}

// Load fetches and decodes the catalog.
func (s FetchSource) Load(ctx context.Context) (portfolio.Catalog, error) {
	opts := js.Global().Get("Object").New()
	opts.Set("cache", "no-store")

	resp, err := await(ctx, js.Global().Call("fetch", s.URL, opts))
	if err != nil {
		return portfolio.Catalog{}, apperrors.WrapWithMetadata(apperrors.CodeCatalogFetch, "fetch catalog",
			map[string]string{"url": s.URL}, err)
	}
	if !resp.Get("ok").Bool() {
		status := strconv.Itoa(resp.Get("status").Int())
		return portfolio.Catalog{}, apperrors.WithMetadata(apperrors.CodeCatalogFetch, "fetch catalog: status "+status,
			map[string]string{"url": s.URL, "status": status})
	}

	body, err := await(ctx, resp.Call("text"))
	if err != nil {
		return portfolio.Catalog{}, apperrors.Wrap(apperrors.CodeCatalogFetch, "read catalog body", err)
	}
	return portfolio.DecodeCatalog(strings.NewReader(body.String()))
}

// jsError carries a rejected promise reason.
type jsError struct {
	reason js.Value
}

func (e jsError) Error() string {
	switch e.reason.Type() {
	case js.TypeUndefined, js.TypeNull:
		return "promise rejected"
	case js.TypeObject:
		if msg := e.reason.Get("message"); msg.Type() == js.TypeString {
			return msg.String()
		}
	}
	return js.Global().Get("String").Invoke(e.reason).String()
}

// await blocks the calling goroutine until promise settles or ctx ends.
// It must not be called from inside a JavaScript callback.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	type result struct {
		value js.Value
		err   error
	}
	done := make(chan result, 1)

	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		v := js.Undefined()
		if len(args) > 0 {
			v = args[0]
		}
		done <- result{value: v}
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := js.Undefined()
		if len(args) > 0 {
			reason = args[0]
		}
		done <- result{err: jsError{reason: reason}}
		return nil
	})
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)
	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return js.Undefined(), ctx.Err()
	}
}
