package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorPage is the generic page shown when a page's data could not be loaded.
func ErrorPage(status int, title, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<div class=\"error\"")
		hw.attr("data-status", strconv.Itoa(status))
		hw.raw("><h2>")
		hw.text(title)
		hw.raw("</h2><p>")
		hw.text(message)
		hw.raw("</p></div>")
		return hw.err
	})
}
