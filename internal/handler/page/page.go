package page

import (
	"bytes"
	"net/http"

	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/handler/view"
	"gin-storefront/internal/i18n"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/pages"
	"gin-storefront/internal/usecase/readmodel"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

type PageHandler struct {
	discounts pages.Loader[readmodel.DiscountsResponse]
	tycs      pages.Loader[readmodel.TyCsResponse]
	table     *i18n.Table
	locales   *middleware.LocaleResolver
}

func NewPageHandler(
	discounts pages.Loader[readmodel.DiscountsResponse],
	tycs pages.Loader[readmodel.TyCsResponse],
	table *i18n.Table,
	locales *middleware.LocaleResolver,
) *PageHandler {
	return &PageHandler{
		discounts: discounts,
		tycs:      tycs,
		table:     table,
		locales:   locales,
	}
}

// Discounts renders the discounts listing, loading its data on every request.
func (h *PageHandler) Discounts(c *gin.Context) {
	locale := h.locale(c)
	props, err := h.discounts.Load(c.Request.Context(), locale)
	if err != nil {
		_ = c.Error(errs.Wrapf(err, "load discounts for %s", locale))
		c.Abort()
		return
	}
	h.render(c, locale, view.DiscountsPage(props, h.table.Resolve(locale)))
}

// TyCs renders the terms and conditions page.
func (h *PageHandler) TyCs(c *gin.Context) {
	locale := h.locale(c)
	props, err := h.tycs.Load(c.Request.Context(), locale)
	if err != nil {
		_ = c.Error(errs.Wrapf(err, "load tycs for %s", locale))
		c.Abort()
		return
	}
	h.render(c, locale, view.TyCsPage(props, h.table.Resolve(locale)))
}

// Root sends the visitor to the discounts page in the language they asked for.
func (h *PageHandler) Root(c *gin.Context) {
	locale := h.locales.Match(c.GetHeader("Accept-Language"))
	target := "/discounts"
	if locale != h.locales.Default() {
		target = "/" + locale + "/discounts"
	}
	c.Header("Vary", "Accept-Language")
	c.Redirect(http.StatusFound, target)
}

// RenderError writes the generic error page. It is the middleware.PageErrorRenderer for page routes.
func (h *PageHandler) RenderError(c *gin.Context, status int) {
	locale := h.locale(c)
	text := h.table.Resolve(locale)
	title := text.Get(i18n.SectionErrors, i18n.KeyTitle)
	message := h.table.Localize(locale, i18n.SectionErrors+"."+i18n.KeyGeneric)

	doc := view.Document(
		locale,
		view.ComposeTitle(title, text.Get(i18n.SectionMain, i18n.KeyStoreName)),
		"",
		view.ErrorPage(status, title, message),
	)
	body, err := renderToBytes(c, doc)
	if err != nil {
		c.String(status, http.StatusText(status))
		return
	}
	c.Data(status, htmlContentType, body)
}

func (h *PageHandler) locale(c *gin.Context) string {
	if locale := middleware.GetLocale(c); locale != "" {
		return locale
	}
	return h.table.Default()
}

// render writes page inside the document shell. A nil page is the empty state: 200 with no body.
func (h *PageHandler) render(c *gin.Context, locale string, page view.Page) {
	if page == nil {
		c.Data(http.StatusOK, htmlContentType, nil)
		return
	}
	body, err := renderToBytes(c, view.FullPage(locale, page))
	if err != nil {
		_ = c.Error(errs.Wrap(err, "render page"))
		c.Abort()
		return
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

func renderToBytes(c *gin.Context, component templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(c.Request.Context(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
