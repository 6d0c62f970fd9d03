package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/portfolio"
)

// User-facing copy.
const (
	EmptyMessage       = "No projects match your filters."
	LoadFailureMessage = "Failed to load projects.json. Check console."
	NoLiveDemoHint     = "No live demo"
)

// CategoryAttr carries the category value on each filter button.
const CategoryAttr = "data-category"

// FilterBar renders one button per category, marking the active one.
func FilterBar(categories []string, active string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		for _, category := range categories {
			class := "filter"
			if category == active {
				class += " active"
			}
			m.raw("<button")
			m.attr("type", "button")
			m.attr("class", class)
			m.attr(CategoryAttr, category)
			m.raw(">")
			m.text(category)
			m.raw("</button>")
		}
		return m.err
	})
}

// ProjectCard renders a single project.
func ProjectCard(p portfolio.Project) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<article class="pcard">`)

		m.raw(`<div class="pmeta"><div>`)
		m.element("h3", "ptitle", p.Title)
		m.element("div", "psub", p.Subtitle)
		m.raw(`</div>`)
		m.element("div", "badge", portfolio.CategoryOf(p))
		m.raw(`</div>`)

		m.element("div", "pdesc", p.Description)

		m.raw(`<div class="tech">`)
		for _, tag := range p.VisibleTech() {
			m.element("span", "", tag)
		}
		m.raw(`</div>`)

		m.raw(`<div class="links">`)
		m.raw(`<a class="plink"`)
		m.href(p.Repo)
		m.attr("target", "_blank")
		m.attr("rel", "noopener noreferrer")
		m.raw(`>Repo</a>`)
		if p.HasLive() {
			m.raw(`<a class="plink"`)
			m.href(p.Live)
			m.attr("target", "_blank")
			m.attr("rel", "noopener noreferrer")
			m.raw(`>Live</a>`)
		} else {
			m.raw(`<a class="plink disabled" href="#"`)
			m.attr("title", NoLiveDemoHint)
			m.raw(`>Live</a>`)
		}
		m.raw(`</div>`)

		m.raw(`</article>`)
		return m.err
	})
}

// Grid renders the project cards, or a single placeholder when empty.
func Grid(projects []portfolio.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(projects) == 0 {
			return notice(EmptyMessage).Render(ctx, w)
		}
		for _, p := range projects {
			if err := ProjectCard(p).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadFailure renders the message shown when the catalog cannot be loaded.
func LoadFailure() templ.Component {
	return notice(LoadFailureMessage)
}

func notice(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<div class="glass notice" style="padding: 16px">`)
		m.text(message)
		m.raw(`</div>`)
		return m.err
	})
}
