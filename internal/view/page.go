package view

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// PageOptions configures the static page shell.
type PageOptions struct {
	Title         string
	StylesheetURL string
	WasmExecURL   string
	WasmURL       string
}

// Page renders the document shell with every mount point the client needs.
// It carries no project data; the client fills the regions after load.
func Page(opts PageOptions) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.element("title", "", opts.Title)
		m.raw(`<link rel="stylesheet"`)
		m.href(opts.StylesheetURL)
		m.raw(`></head><body>`)

		m.raw(`<canvas`)
		m.attr("id", MountCanvas)
		m.raw(` aria-hidden="true"></canvas>`)

		m.raw(`<main class="wrap"><header class="hero glass">`)
		m.element("h1", "", opts.Title)
		m.raw(`<div class="stats">`)
		stat(m, MountStatProjects, "Projects")
		stat(m, MountStatFeatured, "Featured")
		stat(m, MountStatCategories, "Categories")
		m.raw(`</div></header>`)

		m.raw(`<section class="controls glass"><input type="search" placeholder="Search projects, tech, keywords"`)
		m.attr("id", MountSearch)
		m.raw(` autocomplete="off"><div`)
		m.attr("id", MountFilters)
		m.raw(` class="filters"></div></section>`)

		m.raw(`<section class="grid"`)
		m.attr("id", MountGrid)
		m.raw(`></section></main>`)

		m.raw(`<footer class="foot">&copy; <span`)
		m.attr("id", MountYear)
		m.raw(`></span></footer>`)

		wasmURL, err := json.Marshal(opts.WasmURL)
		if err != nil {
			return err
		}
		m.raw(`<script`)
		m.attr("src", opts.WasmExecURL)
		m.raw(`></script><script>`)
		m.raw(`const go = new Go();WebAssembly.instantiateStreaming(fetch(`)
		m.raw(string(wasmURL))
		m.raw(`), go.importObject).then((r) => go.run(r.instance)).catch((e) => console.error(e));`)
		m.raw(`</script></body></html>`)
		return m.err
	})
}

func stat(m *markup, id, label string) {
	m.raw(`<div class="stat"><span class="num"`)
	m.attr("id", id)
	m.raw(`>0</span>`)
	m.element("span", "label", label)
	m.raw(`</div>`)
}
