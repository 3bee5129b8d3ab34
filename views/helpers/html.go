package helpers

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates markup for a component and keeps the first write error.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// Component builds a templ component from a render function.
func Component(fn func(w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &Writer{ctx: ctx, w: out}
		fn(w)
		return w.err
	})
}

// Raw writes trusted markup as-is.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Rawf formats trusted markup. Arguments must already be escaped.
func (w *Writer) Rawf(format string, args ...any) {
	w.Raw(fmt.Sprintf(format, args...))
}

// Text writes escaped text.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Render writes a nested component.
func (w *Writer) Render(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

// Esc escapes text or attribute values.
func Esc(s string) string {
	return templ.EscapeString(s)
}

// Href sanitizes and escapes a URL for an href or src attribute.
func Href(u string) string {
	return templ.EscapeString(string(templ.URL(u)))
}
