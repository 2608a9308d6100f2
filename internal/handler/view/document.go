package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page is a renderable page body that also knows its document head.
type Page interface {
	templ.Component
	PageTitle() string
	PageDescription() string
}

// Document wraps body in a full HTML document.
func Document(lang, title, metaDescription string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html><html")
		hw.attr("lang", lang)
		hw.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		hw.text(title)
		hw.raw("</title>")
		if metaDescription != "" {
			hw.raw("<meta name=\"description\"")
			hw.attr("content", metaDescription)
			hw.raw(">")
		}
		hw.raw("</head><body><main>")
		hw.component(ctx, body)
		hw.raw("</main></body></html>")
		return hw.err
	})
}

// FullPage renders page inside Document using the page's own head.
func FullPage(lang string, page Page) templ.Component {
	return Document(lang, page.PageTitle(), page.PageDescription(), page)
}
