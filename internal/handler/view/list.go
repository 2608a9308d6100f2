package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ListPage is the shared shape of the storefront pages: a heading, an optional
// preamble and one block per item in order.
type ListPage[I any] struct {
	Title           string
	MetaDescription string
	Heading         string
	Preamble        templ.Component
	Items           []I
	Item            func(I) templ.Component
	Class           string
}

func (p ListPage[I]) PageTitle() string       { return p.Title }
func (p ListPage[I]) PageDescription() string { return p.MetaDescription }

func (p ListPage[I]) Render(ctx context.Context, w io.Writer) error {
	hw := &htmlWriter{w: w}
	hw.raw("<div")
	if p.Class != "" {
		hw.attr("class", p.Class)
	}
	hw.raw("><h2>")
	hw.text(p.Heading)
	hw.raw("</h2>")
	hw.component(ctx, p.Preamble)
	if p.Item != nil {
		for _, item := range p.Items {
			hw.component(ctx, p.Item(item))
		}
	}
	hw.raw("</div>")
	return hw.err
}
