package view

import (
	"context"
	"io"
	"strconv"

	"gin-storefront/internal/i18n"
	"gin-storefront/internal/usecase/pages"
	"gin-storefront/internal/usecase/readmodel"

	"github.com/a-h/templ"
)

// TyCsPage returns nil when props carry no data.
func TyCsPage(props pages.Props[readmodel.TyCsResponse], text i18n.TextBundle) Page {
	if props.Data == nil {
		return nil
	}
	title := text.Get(i18n.SectionMain, i18n.KeyTyCs)
	return ListPage[readmodel.TyCRM]{
		Title:           ComposeTitle(title, text.Get(i18n.SectionMain, i18n.KeyStoreName)),
		MetaDescription: text.Get(i18n.SectionMain, i18n.KeyTyCsMetaDescription),
		Heading:         title,
		Preamble:        versionLine(text.Get(i18n.SectionMain, i18n.KeyVersion), props.Data.Version),
		Items:           props.Data.TyCs,
		Item:            tycItem,
		Class:           "tycs",
	}
}

func versionLine(label, version string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<p class=\"version\">")
		hw.text(label)
		hw.raw(": ")
		hw.text(version)
		hw.raw("</p>")
		return hw.err
	})
}

func tycItem(t readmodel.TyCRM) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<div class=\"tyc\"")
		hw.attr("data-id", strconv.Itoa(t.ID))
		hw.raw("><h3>")
		hw.text(t.Title)
		hw.raw("</h3><p>")
		hw.text(t.Description)
		hw.raw("</p></div>")
		return hw.err
	})
}
