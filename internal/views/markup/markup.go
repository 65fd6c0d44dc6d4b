// Package markup is the small HTML writer behind the view components.
package markup

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer emits HTML and remembers the first write error, so components can
// write a sequence of fragments and check once at the end.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped. Only use it for markup the component controls.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Rawf formats unescaped markup. Arguments must already be safe.
func (m *Writer) Rawf(format string, args ...any) {
	m.Raw(fmt.Sprintf(format, args...))
}

// Text writes s HTML-escaped.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (m *Writer) Attr(name, value string) {
	m.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Open writes an opening tag with attribute pairs.
func (m *Writer) Open(tag string, attrs ...string) {
	m.Raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.Attr(attrs[i], attrs[i+1])
	}
	m.Raw(">")
}

// Close writes a closing tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Element writes a complete element with escaped text content.
func (m *Writer) Element(tag, text string, attrs ...string) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Component renders c in place.
func (m *Writer) Component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Err returns the first error encountered.
func (m *Writer) Err() error {
	return m.err
}

// Func adapts a writer callback into a templ component.
func Func(fn func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(w)
		fn(ctx, m)
		return m.Err()
	})
}
