// Package site hosts the portfolio page's static files.
//
// It serves the page shell, the stylesheet, the WebAssembly client, and the
// project catalog. The catalog is always served with caching disabled so the
// client sees edits on the next load. Project data is never rendered here;
// the browser client fetches and renders it.
package site
