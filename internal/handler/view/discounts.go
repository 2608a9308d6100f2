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

const (
	discountImageWidth  = 600
	discountImageHeight = 300
)

// DiscountsPage returns nil when props carry no data.
func DiscountsPage(props pages.Props[readmodel.DiscountsResponse], text i18n.TextBundle) Page {
	if props.Data == nil {
		return nil
	}
	title := text.Get(i18n.SectionDiscounts, i18n.KeyTitle)
	return ListPage[readmodel.DiscountRM]{
		Title:           ComposeTitle(title, text.Get(i18n.SectionMain, i18n.KeyStoreName)),
		MetaDescription: text.Get(i18n.SectionDiscounts, i18n.KeyMetaDescription),
		Heading:         title,
		Items:           *props.Data,
		Item: func(d readmodel.DiscountRM) templ.Component {
			return discountItem(d, text.Get(i18n.SectionDiscounts, i18n.KeyExpiration))
		},
		Class: "discounts",
	}
}

func discountItem(d readmodel.DiscountRM, expirationLabel string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<div class=\"discount\"")
		hw.attr("data-id", strconv.Itoa(d.ID))
		hw.raw("><h3>")
		hw.text(d.Title)
		hw.raw("</h3><img")
		hw.attr("src", d.Image)
		hw.attr("alt", d.Title)
		hw.attr("width", strconv.Itoa(discountImageWidth))
		hw.attr("height", strconv.Itoa(discountImageHeight))
		hw.raw("><i>")
		hw.text(d.Description)
		hw.raw("</i><b>")
		hw.text(expirationLabel)
		hw.raw(": <span>")
		hw.text(d.Expiration)
		hw.raw("</span></b></div>")
		return hw.err
	})
}
