package view

import (
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML fragments, remembering the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (m *markup) href(value string) {
	m.attr("href", string(templ.URL(value)))
}

// element writes <tag class="...">text</tag>.
func (m *markup) element(tag, class, text string) {
	m.raw("<" + tag)
	if class != "" {
		m.attr("class", class)
	}
	m.raw(">")
	m.text(text)
	m.raw("</" + tag + ">")
}
