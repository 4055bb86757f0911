package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup incrementally writes an HTML fragment, capturing the first error so
// component renderers read as straight-line element sequences.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

func (m *markup) write(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// open starts a tag and leaves it dangling for attributes.
func (m *markup) open(tag string) {
	m.write("<" + tag)
}

// attr writes a name/value attribute, skipping empty values.
func (m *markup) attr(name, value string) {
	if value == "" {
		return
	}
	m.write(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// bag merges caller-supplied attributes verbatim onto the dangling tag.
func (m *markup) bag(attrs templ.Attributes) {
	if m.err != nil || len(attrs) == 0 {
		return
	}
	m.err = templ.RenderAttributes(m.ctx, m.w, attrs)
}

// gt closes the dangling tag.
func (m *markup) gt() {
	m.write(">")
}

func (m *markup) close(tag string) {
	m.write("</" + tag + ">")
}

func (m *markup) text(s string) {
	m.write(templ.EscapeString(s))
}

// slot renders a nested component when present.
func (m *markup) slot(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *markup) done() error {
	return m.err
}
