// Package view renders the storefront pages as templ components.
//
// Components are written against templ's runtime directly (templ.ComponentFunc),
// so every piece of text goes through templ.EscapeString before it is written.
package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter stops writing after the first error so callers can check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// ComposeTitle prefixes a page title with the store name: "Store - Title".
func ComposeTitle(title, storeName string) string {
	title = strings.TrimSpace(title)
	storeName = strings.TrimSpace(storeName)
	switch {
	case storeName == "":
		return title
	case title == "":
		return storeName
	default:
		return storeName + " - " + title
	}
}
